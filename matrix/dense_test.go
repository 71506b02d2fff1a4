// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsample/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf keeps non-finite values out of the buffer.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v) // untouched
}

// TestRowViewSharesStorage checks that Row is a capacity-limited view.
func TestRowViewSharesStorage(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 3)
	require.Equal(t, 3, cap(row))

	row[2] = 7
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	cp, err := m.RowCopy(1)
	require.NoError(t, err)
	cp[0] = 99
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestFromRows covers the happy path and each rejection class.
func TestFromRows(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
		require.NoError(t, err)
		require.Equal(t, 3, m.Rows())
		require.Equal(t, 2, m.Cols())
		require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToRows())
	})

	tests := []struct {
		name string
		in   [][]float64
		want error
	}{
		{"empty", nil, matrix.ErrBadShape},
		{"zero width", [][]float64{{}}, matrix.ErrBadShape},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromRows(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestCloneIsDeep ensures that the clone does not alias the source buffer.
func TestCloneIsDeep(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 10))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestString pins the debugging format.
func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2.5}, {0, -1}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[0, -1]\n", m.String())
}
