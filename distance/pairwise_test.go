// SPDX-License-Identifier: MIT
package distance_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsample/distance"
	"github.com/katalvlaran/lvsample/matrix"
	"github.com/katalvlaran/lvsample/norm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomRows returns n deterministic points in [-10,10)^d.
func randomRows(n, d int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, d)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}
	return rows
}

// TestPairwise_Contract checks symmetry, zero diagonal, non-negativity and
// agreement with norm.Distance for every supported norm family.
func TestPairwise_Contract(t *testing.T) {
	rows := randomRows(23, 4, 7)
	for _, n := range []norm.Norm{norm.L1, norm.L2, norm.MustP(3), norm.Inf} {
		t.Run(n.String(), func(t *testing.T) {
			m, err := distance.Pairwise(context.Background(), rows, n)
			require.NoError(t, err)
			require.NoError(t, matrix.ValidateDistance(m, 0))

			for i := range rows {
				for j := range rows {
					v, err := m.At(i, j)
					require.NoError(t, err)
					assert.Equal(t, n.Distance(rows[i], rows[j]), v)
				}
			}
		})
	}
}

// TestPairwise_WorkersDeterministic ensures any worker count yields the same bits.
func TestPairwise_WorkersDeterministic(t *testing.T) {
	rows := randomRows(57, 3, 11)
	base, err := distance.Pairwise(context.Background(), rows, norm.L2, distance.WithWorkers(1))
	require.NoError(t, err)

	for _, w := range []int{2, 3, 8, 100} {
		got, err := distance.Pairwise(context.Background(), rows, norm.L2, distance.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, base.ToRows(), got.ToRows(), "workers=%d", w)
	}
}

func TestPairwise_InfNorm(t *testing.T) {
	m, err := distance.Pairwise(context.Background(), [][]float64{{0, 0}, {3, -4}}, norm.Inf)
	require.NoError(t, err)
	v, _ := m.At(0, 1)
	assert.Equal(t, 4.0, v)
}

func TestPairwise_SinglePoint(t *testing.T) {
	m, err := distance.Pairwise(context.Background(), [][]float64{{5}}, norm.L2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, m.ToRows())
}

func TestPairwise_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := distance.Pairwise(ctx, nil, norm.L2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = distance.Pairwise(ctx, [][]float64{{1, 2}, {3}}, norm.L2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = distance.Pairwise(ctx, [][]float64{{math.NaN()}}, norm.L2)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = distance.Pairwise(ctx, [][]float64{{1}}, norm.Norm{})
	require.ErrorIs(t, err, norm.ErrInvalidNorm)

	_, err = distance.PairwiseDense(ctx, nil, norm.L2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestPairwise_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := distance.Pairwise(ctx, randomRows(10, 2, 1), norm.L2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRowAndToPoint(t *testing.T) {
	rows := [][]float64{{0, 0}, {3, 4}, {6, 8}}
	pop, err := matrix.FromRows(rows)
	require.NoError(t, err)

	r, err := distance.Row(pop, 1, norm.L2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 5}, r)

	_, err = distance.Row(pop, 3, norm.L2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	q, err := distance.ToPoint(pop, []float64{0, 0}, norm.L1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 7, 14}, q)

	_, err = distance.ToPoint(pop, []float64{0}, norm.L1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestWithWorkersPanics(t *testing.T) {
	assert.Panics(t, func() { distance.WithWorkers(0) })
}
