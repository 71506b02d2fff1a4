// Package sampling provides the baseline samplers that sit next to furthest
// point sampling (package fps):
//
//   - Random / RandomPoints: uniform choice of distinct population indices
//     driven by an explicit seed.
//   - Uncertainty: repeated group-aware train/validation splits of a labelled
//     set, training a caller-supplied Model each round, then picking the
//     population points whose predictions disagree most across rounds.
//
// Determinism:
//
//	Every random draw comes from a *rand.Rand built from the caller's seed
//	(seed 0 maps to a fixed default). No package-level random state is read
//	or written, so concurrent runs with different seeds are independent.
package sampling
