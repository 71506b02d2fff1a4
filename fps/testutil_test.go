// SPDX-License-Identifier: MIT
package fps_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsample/norm"
)

// square4 is the four-point fixture: a tight corner cluster plus one outlier.
var square4 = [][]float64{{0, 0}, {1, 0}, {0, 1}, {10, 10}}

// randomPopulation returns n deterministic points in [0,1)^d.
func randomPopulation(n, d int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, d)
		for j := range out[i] {
			out[i][j] = rng.Float64()
		}
	}
	return out
}

// latticePopulation returns a side×side integer grid; it is full of exact ties.
func latticePopulation(side int) [][]float64 {
	out := make([][]float64, 0, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			out = append(out, []float64{float64(x), float64(y)})
		}
	}
	return out
}

// bruteMinDist returns min over sel of ||pop[i]-pop[s]||, +Inf for empty sel.
func bruteMinDist(pop [][]float64, i int, sel []int, n norm.Norm) float64 {
	best := math.Inf(1)
	for _, s := range sel {
		if d := n.Distance(pop[i], pop[s]); d < best {
			best = d
		}
	}
	return best
}

// assertDistinctOutside checks that picks are unique and disjoint from initial.
func assertDistinctOutside(t *testing.T, picks, initial []int, n int) {
	t.Helper()
	seen := make(map[int]bool, len(picks)+len(initial))
	for _, s := range initial {
		seen[s] = true
	}
	for _, p := range picks {
		if p < 0 || p >= n {
			t.Fatalf("pick %d out of range [0,%d)", p, n)
		}
		if seen[p] {
			t.Fatalf("pick %d repeated or part of the initial set", p)
		}
		seen[p] = true
	}
}
