// SPDX-License-Identifier: MIT

// Package fps: functional configuration for Sampler.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error). Run itself never panics on user data; it
//     returns sentinel errors from errors.go.
//   - Determinism is explicit: no option introduces randomness.
//   - Later options override earlier ones; the Init* options replace each
//     other's payload.

package fps

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvsample/norm"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMatchTolerance is the distance below which an initial coordinate
	// row is considered equal to a population point (InitPoints).
	DefaultMatchTolerance = 1e-5

	// DefaultWorkers is the number of goroutines relaxing candidates per pick.
	// 1 keeps the loop fully sequential.
	DefaultWorkers = 1

	// DefaultDistanceWorkers is passed to the distance kernel; 0 ⇒ GOMAXPROCS.
	DefaultDistanceWorkers = 0

	// DefaultVerbose silences progress logging.
	DefaultVerbose = 0
)

// DefaultNorm is the Euclidean norm.
var DefaultNorm = norm.L2

// ---------- Internal panic messages ----------

const (
	panicNormInvalid      = "fps: WithNorm: norm must be valid"
	panicToleranceInvalid = "fps: WithMatchTolerance: tol must be finite and > 0"
	panicWorkersInvalid   = "fps: WithWorkers: workers must be >= 1"
	panicVerboseInvalid   = "fps: WithVerbose: level must be >= 0"
	panicLoggerNil        = "fps: WithLogger(nil)"
	panicProgressNil      = "fps: WithProgress(nil)"
)

// Option mutates the sampler configuration.
type Option func(*config)

// config stores the effective configuration after applying Option setters.
type config struct {
	norm norm.Norm

	mode     InitMode
	indices  []int       // InitIndex payload
	points   [][]float64 // InitPoints payload
	matchTol float64

	workers     int
	distWorkers int // 0 ⇒ distance package default

	verbose  int
	logger   *slog.Logger
	progress func(Progress)
}

// WithNorm sets the norm used for centroid selection, point matching and the
// distance matrix. Panics on the zero-value norm.
func WithNorm(n norm.Norm) Option {
	if !n.Valid() {
		panic(panicNormInvalid)
	}

	return func(c *config) { c.norm = n }
}

// WithInitIndices selects InitIndex with the given population indices.
// Duplicates are collapsed; calling it with no indices yields an empty
// initial set, so the first pick is index 0 and size may equal N.
// Indices are validated by Run (ErrIndexOutOfRange), not here.
func WithInitIndices(idx ...int) Option {
	cp := append([]int{}, idx...)

	return func(c *config) {
		c.mode = InitIndex
		c.indices = cp
		c.points = nil
	}
}

// WithInitPoints selects InitPoints with the given coordinate rows.
// Each row is matched to the first population point within the match
// tolerance under the run norm.
func WithInitPoints(rows ...[]float64) Option {
	cp := make([][]float64, len(rows))
	for i, r := range rows {
		cp[i] = append([]float64{}, r...)
	}

	return func(c *config) {
		c.mode = InitPoints
		c.points = cp
		c.indices = nil
	}
}

// WithInitMode sets the mode without a payload. InitAuto clears any payload;
// InitIndex / InitPoints with no payload mean an empty initial set. Any other
// value is accepted here and reported by Run as ErrMode.
func WithInitMode(m InitMode) Option {
	return func(c *config) {
		c.mode = m
		if m == InitAuto {
			c.indices, c.points = nil, nil
		}
	}
}

// WithMatchTolerance sets the InitPoints match tolerance.
func WithMatchTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(c *config) { c.matchTol = tol }
}

// WithWorkers sets the number of goroutines that relax candidates per pick.
// Any value yields the same Result as the sequential loop.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.workers = k }
}

// WithDistanceWorkers bounds the goroutines used to build the distance matrix.
func WithDistanceWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(c *config) { c.distWorkers = k }
}

// WithVerbose sets the progress verbosity: 0 silent, 1 stage messages,
// 2 and above one message per pick. Messages go to the configured logger
// at Info level and are not machine-parseable.
func WithVerbose(level int) Option {
	if level < 0 {
		panic(panicVerboseInvalid)
	}

	return func(c *config) { c.verbose = level }
}

// WithLogger sets the structured logger used when verbosity > 0.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(c *config) { c.logger = l }
}

// WithProgress registers a callback invoked synchronously on every state
// transition and after every pick.
func WithProgress(fn func(Progress)) Option {
	if fn == nil {
		panic(panicProgressNil)
	}

	return func(c *config) { c.progress = fn }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) config {
	cfg := config{
		norm:        DefaultNorm,
		mode:        InitAuto,
		matchTol:    DefaultMatchTolerance,
		workers:     DefaultWorkers,
		distWorkers: DefaultDistanceWorkers,
		verbose:     DefaultVerbose,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}
