package sampling_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvsample/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_DistinctInRange(t *testing.T) {
	idx, err := sampling.Random(50, 20, 7)
	require.NoError(t, err)
	require.Len(t, idx, 20)

	seen := map[int]bool{}
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 50)
		assert.False(t, seen[i], "duplicate index %d", i)
		seen[i] = true
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := sampling.Random(100, 10, 42)
	require.NoError(t, err)
	b, err := sampling.Random(100, 10, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRandom_FullPermutation(t *testing.T) {
	idx, err := sampling.Random(9, 9, 3)
	require.NoError(t, err)
	got := slices.Clone(idx)
	slices.Sort(got)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, got)
}

func TestRandom_InvalidSize(t *testing.T) {
	for _, tc := range []struct{ n, size int }{{5, 0}, {5, 6}, {0, 1}, {5, -1}} {
		_, err := sampling.Random(tc.n, tc.size, 1)
		assert.ErrorIs(t, err, sampling.ErrInvalidSize, "n=%d size=%d", tc.n, tc.size)
	}
}

func TestRandomPoints_CopiesRows(t *testing.T) {
	pop := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	sel, err := sampling.RandomPoints(pop, 2, 11)
	require.NoError(t, err)
	require.Len(t, sel.Points, 2)
	for k, i := range sel.Indices {
		assert.Equal(t, pop[i], sel.Points[k])
	}
	sel.Points[0][0] = -1
	assert.NotEqual(t, -1.0, pop[sel.Indices[0]][0])
}
