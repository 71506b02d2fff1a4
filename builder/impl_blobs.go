// SPDX-License-Identifier: MIT
// Package: lvsample/builder
//
// impl_blobs.go - Blobs(n, dim, centers): isotropic Gaussian clusters.
//
// Contract:
//   • centres are drawn first, uniform in [0, scale)^dim;
//   • point i belongs to cluster i mod centers;
//   • spread sigma = cfg.noise, or defaultBlobSigma·scale when noise is 0.
//
// Complexity: O((n+centers)·dim).

package builder

const methodBlobs = "Blobs"

// Blobs returns a Constructor that appends n points around `centers` random
// centres. Requires cfg.rng (ErrNeedRandSource).
func Blobs(n, dim, centers int) Constructor {
	return func(p *Population, cfg builderConfig) error {
		if n < 1 || dim < minDim || centers < 1 {
			return builderErrorf(methodBlobs, ErrTooFewPoints, "n=%d dim=%d centers=%d", n, dim, centers)
		}
		if cfg.rng == nil {
			return builderErrorf(methodBlobs, ErrNeedRandSource, "use WithSeed or WithRand")
		}

		sigma := cfg.noise
		if sigma == 0 {
			sigma = defaultBlobSigma * cfg.scale
		}
		mu := make([][]float64, centers)
		for c := range mu {
			mu[c] = make([]float64, dim)
			for j := range mu[c] {
				mu[c][j] = cfg.rng.Float64() * cfg.scale
			}
		}

		rows := make([][]float64, n)
		for i := range rows {
			c := mu[i%centers]
			row := make([]float64, dim)
			for j := range row {
				row[j] = c[j] + cfg.rng.NormFloat64()*sigma
			}
			rows[i] = row
		}

		return p.add(methodBlobs, dim, rows)
	}
}
