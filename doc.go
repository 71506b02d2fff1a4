// Package lvsample selects representative subsets of point populations.
//
// 🚀 What is lvsample?
//
//	A small, deterministic library (plus CLI) built around Furthest Point
//	Sampling (FPS): starting from an initial set, repeatedly pick the point
//	whose distance to everything already chosen is largest.
//		• fps:      the greedy max-min sampler (auto / index / point init)
//		• distance: parallel pairwise distance matrices under any p-norm
//		• norm:     integer p-norms and the infinity norm
//		• matrix:   the dense row-major matrix used throughout
//		• sampling: random and model-uncertainty baselines
//		• scatter:  grouped reductions (sum, prod, mean, amin, amax)
//		• builder:  synthetic populations (grid, uniform, blobs, ring)
//		• dataset:  CSV / JSON I/O with gzip, zstd and lz4 streams
//
// ✨ Guarantees
//
//   - Determinism: ties break toward the smallest index; worker counts never
//     change a result.
//   - One norm per run: initialization and the distance matrix agree.
//   - Validation before work: capacity and index checks run before any
//     O(N²) distance computation.
//
// Quick example:
//
//	res, err := fps.Sample(ctx, population, 10, fps.WithNorm(norm.Inf))
//
// Command line:
//
//	go install github.com/katalvlaran/lvsample/cmd/lvsample@latest
//	lvsample generate --kind blobs -n 1000 --dim 3 -o pop.csv.zst
//	lvsample fps --size 20 pop.csv.zst
package lvsample
