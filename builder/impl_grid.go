// SPDX-License-Identifier: MIT
// Package: lvsample/builder
//
// impl_grid.go - Grid(side, dim): the regular lattice {0..side-1}^dim · scale.
//
// Determinism:
//   • Row-major order: the last coordinate varies fastest.
//   • No randomness.
//
// Complexity: O(side^dim · dim).

package builder

import "math"

const (
	methodGrid    = "Grid"
	minGridSide   = 1
	minDim        = 1
	maxGridPoints = 1 << 24
)

// Grid returns a Constructor that appends side^dim lattice points.
func Grid(side, dim int) Constructor {
	return func(p *Population, cfg builderConfig) error {
		if side < minGridSide || dim < minDim {
			return builderErrorf(methodGrid, ErrTooFewPoints, "side=%d dim=%d", side, dim)
		}
		total := math.Pow(float64(side), float64(dim))
		if total > maxGridPoints {
			return builderErrorf(methodGrid, ErrConstructFailed, "%g points exceeds %d", total, maxGridPoints)
		}

		n := int(total)
		rows := make([][]float64, n)
		digits := make([]int, dim)
		for k := 0; k < n; k++ {
			row := make([]float64, dim)
			for j, d := range digits {
				row[j] = float64(d) * cfg.scale
			}
			rows[k] = row
			// increment the mixed-radix counter, last digit fastest
			for j := dim - 1; j >= 0; j-- {
				digits[j]++
				if digits[j] < side {
					break
				}
				digits[j] = 0
			}
		}

		return p.add(methodGrid, dim, rows)
	}
}
