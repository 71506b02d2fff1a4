// Package fps implements Furthest Point Sampling: greedy max-min selection of
// a well-spread subset of a point population.
//
// 🚀 What is FPS?
//
//	Starting from an initial selected set, FPS repeatedly adds the population
//	point whose distance to its nearest already-selected point is largest.
//	The result is a small sample that covers the population evenly, which is
//	what a downstream model wants for training or evaluation.
//
// ✨ Key features:
//   - any p-norm or the infinity norm (package norm), one norm per run
//   - three initialization policies: auto-centroid, explicit indices,
//     explicit coordinates matched back to the population
//   - incremental nearest-selected cache: O(N) work per pick instead of
//     O(N·|selected|)
//   - deterministic tie-break (smallest index) in both the sequential and the
//     parallel candidate scan
//   - eager validation: shape, range, match, capacity and mode errors are
//     reported before any distance work starts
//
// ⚙️ Usage:
//
//	s, err := fps.New(10,
//	  fps.WithNorm(norm.L2),
//	  fps.WithInitIndices(0),
//	)
//	res, err := s.Run(ctx, population)
//	// res.Indices: the 10 new picks in selection order
//
// Algorithm outline:
//  1. Resolve the initial set (InitAuto / InitIndex / InitPoints).
//  2. Check |initial| + size ≤ N.
//  3. Build the N×N distance matrix (package distance).
//  4. minDist[i] = min over initial s of D[i][s]  (+Inf when initial is empty).
//  5. Repeat size times: pick i* = argmax minDist over unselected i (smallest
//     index on ties), record it, relax minDist[i] = min(minDist[i], D[i][i*]).
//
// Performance:
//
//   - Time:   O(N²·D) for the matrix + O(size·N) for the loop
//   - Memory: O(N²)
package fps
