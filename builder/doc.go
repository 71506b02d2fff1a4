// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic populations (point sets)
// for tests, benchmarks and the lvsample CLI.
//
// The package offers:
//
//   - One orchestrator: BuildPopulation(opts, cons...) resolves the options
//     once and runs the constructors in order; each appends rows.
//   - Constructors:
//     – Grid(side, dim):        side^dim lattice points, row-major.
//     – Uniform(n, dim):        n points uniform in [0, scale)^dim.
//     – Blobs(n, dim, centers): n points around `centers` Gaussian centres.
//     – Ring(n):                n points evenly spaced on a circle in 2-D.
//   - Options: WithSeed / WithRand (stochastic constructors), WithScale,
//     WithNoise.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical rows.
//   - All rows of one population share the same dimension
//     (ErrDimensionMismatch otherwise).
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors and never panic.
package builder
