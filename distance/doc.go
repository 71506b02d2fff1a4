// Package distance computes dense pairwise distance matrices of point
// populations under a configurable norm.
//
// 🚀 What is a distance matrix?
//
//	For a population of N points p_0..p_{N-1}, the N×N matrix M holds
//	M[i][j] = ||p_i − p_j|| under the chosen norm.  It is symmetric with a
//	zero diagonal, and it is the random-access backbone of furthest point
//	sampling (see package fps).
//
// ✨ Key features:
//   - any p-norm (p ≥ 1) or the infinity norm, via package norm
//   - upper triangle computed once and mirrored (≈2× saving)
//   - rows fanned out to a bounded worker pool (errgroup); results are
//     bitwise identical for every worker count
//   - context cancellation checked between rows
//
// Performance:
//
//   - Time:   O(N²·D / workers)
//   - Memory: O(N²)
package distance
