// SPDX-License-Identifier: MIT
// Package: lvsample/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng   = nil  (pure/deterministic unless seeded)
//   • scale = 1.0  (grid spacing, uniform box side, ring radius)
//   • noise = 0.0  (Gaussian jitter; Blobs falls back to defaultBlobSigma)

package builder

import "math/rand"

type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	scale float64 // > 0
	noise float64 // >= 0
}

const (
	defaultScale     = 1.0
	defaultNoise     = 0.0
	defaultBlobSigma = 0.05 // relative to scale, used when noise == 0
)

// newBuilderConfig applies opts over the defaults; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale: defaultScale,
		noise: defaultNoise,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
