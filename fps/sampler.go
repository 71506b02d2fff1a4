// SPDX-License-Identifier: MIT

package fps

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsample/distance"
	"github.com/katalvlaran/lvsample/matrix"
	"github.com/katalvlaran/lvsample/norm"
)

// Sampler runs Furthest Point Sampling with a fixed size and configuration.
// A Sampler is reusable across populations but not safe for concurrent Run
// calls; separate Samplers share no state.
type Sampler struct {
	size int
	cfg  config
	dist *matrix.Dense // distance matrix of the last successful run
}

// New returns a Sampler that adds size points per run.
//
// Errors:
//   - ErrInvalidSize when size < 1.
func New(size int, opts ...Option) (*Sampler, error) {
	if size < 1 {
		return nil, fmt.Errorf("New(%d): %w", size, ErrInvalidSize)
	}

	return &Sampler{size: size, cfg: gatherOptions(opts...)}, nil
}

// Sample is a one-shot convenience wrapper around New(size, opts...).Run.
func Sample(ctx context.Context, population [][]float64, size int, opts ...Option) (*Result, error) {
	s, err := New(size, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run(ctx, population)
}

// Size returns the number of points each run adds.
func (s *Sampler) Size() int { return s.size }

// Norm returns the norm shared by initialization and the distance matrix.
func (s *Sampler) Norm() norm.Norm { return s.cfg.norm }

// Distances returns the distance matrix built by the last successful Run, or
// nil. The matrix is owned by the Sampler and replaced by the next Run.
func (s *Sampler) Distances() *matrix.Dense { return s.dist }

// Run selects s.Size() points from population.
//
// Implementation:
//   - Stage 1 (Validate): population must be a non-empty, rectangular, finite
//     N×D set (ErrShape).
//   - Stage 2 (Init): resolve the initial set (ErrMode, ErrIndexOutOfRange,
//     ErrShape, ErrNoMatch), then check |initial| + size ≤ N (ErrCapacity).
//   - Stage 3 (Distances): build the N×N matrix under the run norm.
//   - Stage 4 (Select): size greedy picks.
//
// No distance-matrix work happens before Stage 2 succeeds. Context
// cancellation is honoured during Stage 3 and between picks.
func (s *Sampler) Run(ctx context.Context, population [][]float64) (*Result, error) {
	cfg := &s.cfg

	pop, err := matrix.FromRows(population)
	if err != nil {
		return nil, fmt.Errorf("Run: population: %w: %w", ErrShape, err)
	}
	n := pop.Rows()

	cfg.logAt(ctx, verboseStages, "fps: resolving initial set",
		"mode", cfg.mode.String(), "points", n, "features", pop.Cols(), "norm", cfg.norm.String())
	initial, err := resolveInitial(pop, cfg)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if len(initial)+s.size > n {
		return nil, fmt.Errorf("Run: |initial|=%d + size=%d > N=%d: %w", len(initial), s.size, n, ErrCapacity)
	}
	cfg.logAt(ctx, verboseStages, "fps: initial set resolved", "initial", initial)

	cfg.logAt(ctx, verboseStages, "fps: computing distance matrix", "points", n)
	var dopts []distance.Option
	if cfg.distWorkers > 0 {
		dopts = append(dopts, distance.WithWorkers(cfg.distWorkers))
	}
	dist, err := distance.PairwiseDense(ctx, pop, cfg.norm, dopts...)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	g := newGreedy(dist, initial, cfg.workers)
	res := &Result{
		Indices:      make([]int, 0, s.size),
		Points:       make([][]float64, 0, s.size),
		Initial:      initial,
		MinDistances: make([]float64, 0, s.size),
	}
	cfg.report(Progress{State: StateInitialized, Total: s.size, Index: -1})
	cfg.logAt(ctx, verboseStages, "fps: searching furthest points", "size", s.size)

	for k := 0; k < s.size; k++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		pick, err := g.next(ctx)
		if err != nil {
			return nil, err
		}
		row, _ := pop.RowCopy(pick.idx)
		res.Indices = append(res.Indices, pick.idx)
		res.Points = append(res.Points, row)
		res.MinDistances = append(res.MinDistances, pick.d)

		cfg.report(Progress{State: StateSelecting, Step: k + 1, Total: s.size, Index: pick.idx, MinDistance: pick.d})
		cfg.logAt(ctx, verbosePicks, "fps: picked", "step", k+1, "index", pick.idx, "min_distance", pick.d)
	}

	s.dist = dist
	cfg.report(Progress{State: StateDone, Step: s.size, Total: s.size, Index: -1})
	cfg.logAt(ctx, verboseStages, "fps: completed", "selected", g.selectedCount())

	return res, nil
}
