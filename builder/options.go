// SPDX-License-Identifier: MIT
// Package: lvsample/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithScale sets the spatial scale: grid spacing, uniform box side, blob
// centre box side and ring radius. Panics if s <= 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) {
		panic("builder: WithScale(s<=0)")
	}

	return func(c *builderConfig) { c.scale = s }
}

// WithNoise sets the Gaussian jitter sigma (>= 0, absolute units) added by
// Ring and used as the cluster spread by Blobs. Panics if sigma < 0.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}

	return func(c *builderConfig) { c.noise = sigma }
}
