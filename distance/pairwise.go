// SPDX-License-Identifier: MIT

package distance

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsample/matrix"
	"github.com/katalvlaran/lvsample/norm"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidNorm is returned when the zero-value norm.Norm is passed.
// It wraps norm.ErrInvalidNorm.
var ErrInvalidNorm = fmt.Errorf("distance: %w", norm.ErrInvalidNorm)

// Pairwise validates rows as a rectangular, finite population and returns its
// N×N distance matrix under n.
//
// Errors:
//   - matrix.ErrBadShape for an empty population, zero-width or ragged rows.
//   - matrix.ErrNaNInf for a non-finite coordinate.
//   - ErrInvalidNorm for the zero-value norm.
//   - ctx.Err() when the context is cancelled mid-way.
func Pairwise(ctx context.Context, rows [][]float64, n norm.Norm, opts ...Option) (*matrix.Dense, error) {
	pop, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("Pairwise: %w", err)
	}

	return PairwiseDense(ctx, pop, n, opts...)
}

// PairwiseDense is Pairwise over an already validated population stored one
// point per row.
//
// Implementation:
//   - Stage 1: allocate the N×N output (zero diagonal by construction).
//   - Stage 2: worker w owns rows i ≡ w (mod workers); for each owned row it
//     computes every j > i once and writes both (i,j) and (j,i).
//   - Stage 3: wait; the first error (cancellation) wins.
//
// Determinism:
//   - Every cell is written by exactly one goroutine with the same
//     floating-point expression, so the result does not depend on workers.
//
// Complexity:
//   - Time O(N²·D/2), Space O(N²).
func PairwiseDense(ctx context.Context, pop *matrix.Dense, n norm.Norm, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(pop); err != nil {
		return nil, fmt.Errorf("PairwiseDense: %w", err)
	}
	if !n.Valid() {
		return nil, ErrInvalidNorm
	}
	cfg := gatherOptions(opts...)

	size := pop.Rows()
	out, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, fmt.Errorf("PairwiseDense: %w", err)
	}

	workers := cfg.workers
	if workers > size {
		workers = size
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < size; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				fillRow(pop, out, i, n)
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// fillRow writes out[i][j] and out[j][i] for every j > i.
// Indices are valid by construction, so Row errors cannot occur.
func fillRow(pop, out *matrix.Dense, i int, n norm.Norm) {
	pi, _ := pop.Row(i)
	oi, _ := out.Row(i)
	for j := i + 1; j < pop.Rows(); j++ {
		pj, _ := pop.Row(j)
		d := n.Distance(pi, pj)
		oi[j] = d
		oj, _ := out.Row(j)
		oj[i] = d
	}
}

// Row returns the distances from point i to every point of pop under n
// (len == pop.Rows(), entry i is zero).
//
// Errors:
//   - matrix.ErrOutOfRange when i is not a row of pop.
//   - ErrInvalidNorm for the zero-value norm.
func Row(pop *matrix.Dense, i int, n norm.Norm) ([]float64, error) {
	if err := matrix.ValidateNotNil(pop); err != nil {
		return nil, fmt.Errorf("Row: %w", err)
	}
	if !n.Valid() {
		return nil, ErrInvalidNorm
	}
	pi, err := pop.Row(i)
	if err != nil {
		return nil, fmt.Errorf("Row: %w", err)
	}
	out := make([]float64, pop.Rows())
	for j := range out {
		if j == i {
			continue
		}
		pj, _ := pop.Row(j)
		out[j] = n.Distance(pi, pj)
	}

	return out, nil
}

// ToPoint returns the distance from every row of pop to the point q under n.
// q must have pop.Cols() components.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(q) != pop.Cols().
func ToPoint(pop *matrix.Dense, q []float64, n norm.Norm) ([]float64, error) {
	if err := matrix.ValidateNotNil(pop); err != nil {
		return nil, fmt.Errorf("ToPoint: %w", err)
	}
	if !n.Valid() {
		return nil, ErrInvalidNorm
	}
	if err := matrix.ValidateVecLen(q, pop.Cols()); err != nil {
		return nil, fmt.Errorf("ToPoint: %w", err)
	}
	out := make([]float64, pop.Rows())
	for i := range out {
		pi, _ := pop.Row(i)
		out[i] = n.Distance(pi, q)
	}

	return out, nil
}
