// SPDX-License-Identifier: MIT

// Package sampling: functional configuration for Uncertainty.
//
// Option constructors PANIC on meaningless inputs (programmer error);
// data-dependent problems are reported by Uncertainty as sentinel errors.

package sampling

import (
	"log/slog"
	"math"
)

const (
	// DefaultIterations is the number of train/validation rounds.
	DefaultIterations = 100

	// DefaultSplit is the validation share of every group: a fraction in
	// (0,1) of the whole labelled set, or an absolute row count when >= 1.
	DefaultSplit = 0.1

	// DefaultGroups treats the labelled set as one group.
	DefaultGroups = 1

	// DefaultSeed is mapped to the package's fixed RNG seed.
	DefaultSeed int64 = 0
)

const (
	panicIterationsInvalid = "sampling: WithIterations: n must be >= 1"
	panicSplitInvalid      = "sampling: WithSplit: split must be finite and > 0"
	panicGroupsInvalid     = "sampling: WithGroups: groups must be >= 1"
	panicVerboseInvalid    = "sampling: WithVerbose: level must be >= 0"
	panicLoggerNil         = "sampling: WithLogger(nil)"
)

// Option mutates the uncertainty sampler configuration.
type Option func(*config)

type config struct {
	iterations int
	split      float64
	groups     int
	seed       int64
	verbose    int
	logger     *slog.Logger
}

// WithIterations sets the number of train/validation rounds.
func WithIterations(n int) Option {
	if n < 1 {
		panic(panicIterationsInvalid)
	}

	return func(c *config) { c.iterations = n }
}

// WithSplit sets the validation split. A value in (0,1) is a fraction of
// all labelled rows; a value >= 1 is a total row count that must exceed the
// number of groups. Either way the count is shared evenly between groups.
func WithSplit(split float64) Option {
	if !(split > 0) || math.IsInf(split, 0) {
		panic(panicSplitInvalid)
	}

	return func(c *config) { c.split = split }
}

// WithGroups declares that the labelled rows form g consecutive groups of
// equal size. Validation rows are drawn at the same in-group positions for
// every group.
func WithGroups(g int) Option {
	if g < 1 {
		panic(panicGroupsInvalid)
	}

	return func(c *config) { c.groups = g }
}

// WithSeed sets the RNG seed for the validation draws (0 ⇒ fixed default).
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithVerbose enables one Info message per round when level > 0.
func WithVerbose(level int) Option {
	if level < 0 {
		panic(panicVerboseInvalid)
	}

	return func(c *config) { c.verbose = level }
}

// WithLogger sets the logger used when verbosity > 0. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(c *config) { c.logger = l }
}

func gatherOptions(opts ...Option) config {
	cfg := config{
		iterations: DefaultIterations,
		split:      DefaultSplit,
		groups:     DefaultGroups,
		seed:       DefaultSeed,
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
