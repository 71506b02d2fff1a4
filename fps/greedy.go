// SPDX-License-Identifier: MIT

// Package fps - the greedy max-min selection loop.
//
// State kept across picks:
//   - remaining: roaring bitmap of unselected indices; iterated in ascending
//     order, which makes the strict-> scan pick the smallest index on ties.
//   - selected:  roaring bitmap of the initial set plus every pick.
//   - minDist:   minDist[i] = min over selected s of D[i][s], +Inf while the
//     selected set is empty. Only entries of remaining indices are maintained.
//
// Each pick relaxes minDist against the previous pick's row only and reduces
// to the argmax in the same pass, so one pick costs O(|remaining|).

package fps

import (
	"context"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/lvsample/matrix"
	"golang.org/x/sync/errgroup"
)

// greedy carries the loop state of one run. It is not safe for concurrent use;
// the parallel scan only reads the bitmaps and writes disjoint minDist ranges.
type greedy struct {
	dist      *matrix.Dense
	n         int
	selected  *roaring.Bitmap
	remaining *roaring.Bitmap
	minDist   []float64
	last      int // previous pick, -1 before the first one
	workers   int
}

// candidate is a (index, minDist) pair; idx == -1 marks "none".
type candidate struct {
	idx int
	d   float64
}

// newGreedy seeds the loop state with the initial set.
// Complexity: O(N·|initial|).
func newGreedy(dist *matrix.Dense, initial []int, workers int) *greedy {
	n := dist.Rows()
	g := &greedy{
		dist:      dist,
		n:         n,
		selected:  roaring.New(),
		remaining: roaring.New(),
		minDist:   make([]float64, n),
		last:      -1,
		workers:   workers,
	}
	g.remaining.AddRange(0, uint64(n))
	for i := range g.minDist {
		g.minDist[i] = math.Inf(1)
	}
	for _, s := range initial {
		g.selected.Add(uint32(s))
		g.remaining.Remove(uint32(s))
	}
	for _, s := range initial {
		row, _ := dist.Row(s)
		for i, d := range row {
			if d < g.minDist[i] {
				g.minDist[i] = d
			}
		}
	}

	return g
}

// selectedCount returns |SelectedSet|.
func (g *greedy) selectedCount() int { return int(g.selected.GetCardinality()) }

// next makes one pick and returns it with its max-min distance.
// The caller guarantees at least one remaining candidate (capacity check).
func (g *greedy) next(ctx context.Context) (candidate, error) {
	var lastRow []float64
	if g.last >= 0 {
		lastRow, _ = g.dist.Row(g.last)
	}

	var best candidate
	if g.workers > 1 {
		var err error
		if best, err = g.scanParallel(ctx, lastRow); err != nil {
			return candidate{idx: -1}, err
		}
	} else {
		best = g.scanRange(lastRow, 0, g.n)
	}

	g.remaining.Remove(uint32(best.idx))
	g.selected.Add(uint32(best.idx))
	g.last = best.idx

	return best, nil
}

// scanRange relaxes and reduces the remaining indices in [lo, hi).
// Ties keep the smallest index because the scan is ascending and the
// comparison is strict.
func (g *greedy) scanRange(lastRow []float64, lo, hi int) candidate {
	best := candidate{idx: -1, d: math.Inf(-1)}
	it := g.remaining.Iterator()
	it.AdvanceIfNeeded(uint32(lo))
	for it.HasNext() {
		if int(it.PeekNext()) >= hi {
			break
		}
		i := int(it.Next())
		if lastRow != nil && lastRow[i] < g.minDist[i] {
			g.minDist[i] = lastRow[i]
		}
		if g.minDist[i] > best.d {
			best = candidate{idx: i, d: g.minDist[i]}
		}
	}

	return best
}

// scanParallel splits [0, n) into contiguous chunks, scans them concurrently,
// then reduces the chunk winners in chunk order with the same strict
// comparison, which reproduces the sequential winner exactly.
func (g *greedy) scanParallel(ctx context.Context, lastRow []float64) (candidate, error) {
	chunks := g.workers
	if chunks > g.n {
		chunks = g.n
	}
	step := (g.n + chunks - 1) / chunks
	winners := make([]candidate, chunks)

	eg, ectx := errgroup.WithContext(ctx)
	for c := 0; c < chunks; c++ {
		c := c
		lo := c * step
		hi := min(lo+step, g.n)
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			winners[c] = g.scanRange(lastRow, lo, hi)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return candidate{idx: -1}, err
	}

	best := candidate{idx: -1, d: math.Inf(-1)}
	for _, w := range winners {
		if w.idx >= 0 && w.d > best.d {
			best = w
		}
	}

	return best, nil
}
