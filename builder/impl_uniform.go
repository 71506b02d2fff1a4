// SPDX-License-Identifier: MIT
// Package: lvsample/builder
//
// impl_uniform.go - Uniform(n, dim): n points uniform in [0, scale)^dim.
//
// Determinism: coordinates are drawn from cfg.rng in row-major order.
// Complexity: O(n·dim).

package builder

const methodUniform = "Uniform"

// Uniform returns a Constructor that appends n uniformly distributed points.
// Requires cfg.rng (ErrNeedRandSource).
func Uniform(n, dim int) Constructor {
	return func(p *Population, cfg builderConfig) error {
		if n < 1 || dim < minDim {
			return builderErrorf(methodUniform, ErrTooFewPoints, "n=%d dim=%d", n, dim)
		}
		if cfg.rng == nil {
			return builderErrorf(methodUniform, ErrNeedRandSource, "use WithSeed or WithRand")
		}

		rows := make([][]float64, n)
		for i := range rows {
			row := make([]float64, dim)
			for j := range row {
				row[j] = cfg.rng.Float64() * cfg.scale
			}
			rows[i] = row
		}

		return p.add(methodUniform, dim, rows)
	}
}
