// SPDX-License-Identifier: MIT

// Package fps - initial selected set resolution.
//
// Contract:
//   - InitAuto:   argmin_i ||p_i − centroid||, ties keep the earlier index (strict <).
//   - InitIndex:  every index in [0, N); duplicates collapse.
//   - InitPoints: every row has D components; each maps to the FIRST population
//     index whose distance is < matchTol; duplicates collapse.
//   - The returned set is ascending and duplicate-free.
//   - All distances use cfg.norm, the same norm that builds the distance matrix.
//
// Complexity:
//   - InitAuto O(N·D); InitIndex O(k log k); InitPoints O(k·N·D).

package fps

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvsample/distance"
	"github.com/katalvlaran/lvsample/matrix"
)

// resolveInitial returns the initial selected set for pop under cfg.
func resolveInitial(pop *matrix.Dense, cfg *config) ([]int, error) {
	switch cfg.mode {
	case InitAuto:
		idx, err := closestToCentroid(pop, cfg)
		if err != nil {
			return nil, err
		}
		return []int{idx}, nil
	case InitIndex:
		return initFromIndices(pop.Rows(), cfg.indices)
	case InitPoints:
		return initFromPoints(pop, cfg)
	default:
		return nil, fmt.Errorf("resolveInitial: %s: %w", cfg.mode, ErrMode)
	}
}

// closestToCentroid returns the population index nearest the per-feature mean.
func closestToCentroid(pop *matrix.Dense, cfg *config) (int, error) {
	centroid, err := matrix.ColumnMeans(pop)
	if err != nil {
		return 0, fmt.Errorf("closestToCentroid: %w", err)
	}
	dists, err := distance.ToPoint(pop, centroid, cfg.norm)
	if err != nil {
		return 0, fmt.Errorf("closestToCentroid: %w", err)
	}

	best, bestD := 0, math.Inf(1)
	for i, d := range dists {
		if d < bestD {
			best, bestD = i, d
		}
	}

	return best, nil
}

// initFromIndices range-checks idx against [0, n) and returns the sorted unique set.
func initFromIndices(n int, idx []int) ([]int, error) {
	for k, i := range idx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("initFromIndices: idx[%d]=%d not in [0,%d): %w", k, i, n, ErrIndexOutOfRange)
		}
	}
	out := slices.Clone(idx)
	slices.Sort(out)

	return slices.Compact(out), nil
}

// initFromPoints maps every coordinate row back to a population index.
func initFromPoints(pop *matrix.Dense, cfg *config) ([]int, error) {
	out := make([]int, 0, len(cfg.points))
	for k, row := range cfg.points {
		if len(row) != pop.Cols() {
			return nil, fmt.Errorf("initFromPoints: row %d has %d features, population has %d: %w",
				k, len(row), pop.Cols(), ErrShape)
		}
		dists, err := distance.ToPoint(pop, row, cfg.norm)
		if err != nil {
			return nil, fmt.Errorf("initFromPoints: row %d: %w", k, err)
		}
		match := -1
		for i, d := range dists {
			if d < cfg.matchTol {
				match = i
				break
			}
		}
		if match < 0 {
			return nil, fmt.Errorf("initFromPoints: row %d %v (tol %g): %w", k, row, cfg.matchTol, ErrNoMatch)
		}
		out = append(out, match)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}
