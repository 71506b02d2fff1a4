// SPDX-License-Identifier: MIT
// Package: lvsample/builder
//
// impl_ring.go - Ring(n): n points evenly spaced on the circle of radius
// scale centred at the origin, starting at angle 0, counter-clockwise.
//
// With WithNoise(sigma > 0) each coordinate is jittered by N(0, sigma²),
// which requires cfg.rng; without noise the ring is fully deterministic.
//
// Complexity: O(n).

package builder

import "math"

const (
	methodRing = "Ring"
	ringDim    = 2
)

// Ring returns a Constructor that appends n points on a circle in 2-D.
func Ring(n int) Constructor {
	return func(p *Population, cfg builderConfig) error {
		if n < 1 {
			return builderErrorf(methodRing, ErrTooFewPoints, "n=%d", n)
		}
		if cfg.noise > 0 && cfg.rng == nil {
			return builderErrorf(methodRing, ErrNeedRandSource, "noise requires WithSeed or WithRand")
		}

		rows := make([][]float64, n)
		step := 2 * math.Pi / float64(n)
		for k := range rows {
			theta := step * float64(k)
			x, y := cfg.scale*math.Cos(theta), cfg.scale*math.Sin(theta)
			if cfg.noise > 0 {
				x += cfg.rng.NormFloat64() * cfg.noise
				y += cfg.rng.NormFloat64() * cfg.noise
			}
			rows[k] = []float64{x, y}
		}

		return p.add(methodRing, ringDim, rows)
	}
}
