package sampling_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/katalvlaran/lvsample/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUncertainty_ConstantModelTiesKeepIndexOrder(t *testing.T) {
	X, y := noisyLine(10)
	pop := [][]float64{{0}, {1}, {2}, {3}, {4}}
	m := &constModel{}

	res, err := sampling.Uncertainty(context.Background(), m, X, y, pop, 2, sampling.WithIterations(5))
	require.NoError(t, err)

	assert.Equal(t, 5, m.fits)
	assert.Equal(t, []int{9, 9, 9, 9, 9}, m.trainLen)
	assert.Len(t, res.TrainRMSE, 5)
	assert.Len(t, res.ValidRMSE, 5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{3, 4}, res.Indices)
	for i := 1; i < len(pop); i++ {
		assert.Equal(t, res.Uncertainty[0], res.Uncertainty[i])
		assert.Equal(t, res.PredictMean[0], res.PredictMean[i])
	}
}

func TestUncertainty_ExtrapolationIsMostUncertain(t *testing.T) {
	X, y := noisyLine(20)
	pop := [][]float64{{-50}, {0}, {10}, {60}}

	res, err := sampling.Uncertainty(context.Background(), &lineModel{}, X, y, pop, 2,
		sampling.WithIterations(30), sampling.WithSeed(5), sampling.WithSplit(0.2))
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 3}, res.Indices)
	assert.Equal(t, res.Order[len(res.Order)-1], res.Indices[len(res.Indices)-1])
	assert.Less(t, res.Uncertainty[2], res.Uncertainty[0])
	assert.Less(t, res.Uncertainty[2], res.Uncertainty[3])
	for k := 1; k < len(res.Order); k++ {
		assert.LessOrEqual(t, res.Uncertainty[res.Order[k-1]], res.Uncertainty[res.Order[k]])
	}
	assert.InDelta(t, 10.0, res.PredictMean[2], 0.5)
}

func TestUncertainty_Deterministic(t *testing.T) {
	X, y := noisyLine(20)
	pop := [][]float64{{-5}, {3}, {25}}
	opts := []sampling.Option{sampling.WithIterations(10), sampling.WithSeed(99)}

	a, err := sampling.Uncertainty(context.Background(), &lineModel{}, X, y, pop, 1, opts...)
	require.NoError(t, err)
	b, err := sampling.Uncertainty(context.Background(), &lineModel{}, X, y, pop, 1, opts...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUncertainty_GroupsShareValidationPositions(t *testing.T) {
	// 3 groups of 4 rows; row = [group, position].
	var X [][]float64
	var y []float64
	for g := 0; g < 3; g++ {
		for p := 0; p < 4; p++ {
			X = append(X, []float64{float64(g), float64(p)})
			y = append(y, float64(g*4+p))
		}
	}
	m := &constModel{}
	_, err := sampling.Uncertainty(context.Background(), m, X, y, X, 1,
		sampling.WithGroups(3), sampling.WithSplit(0.25), sampling.WithIterations(8), sampling.WithSeed(2))
	require.NoError(t, err)

	for round, xtr := range m.trainX {
		require.Len(t, xtr, 9, "round %d", round)
		present := make([]map[int]bool, 3)
		for g := range present {
			present[g] = map[int]bool{}
		}
		for _, row := range xtr {
			present[int(row[0])][int(row[1])] = true
		}
		assert.Equal(t, present[0], present[1], "round %d", round)
		assert.Equal(t, present[0], present[2], "round %d", round)
		assert.Len(t, present[0], 3)
	}
}

func TestUncertainty_Errors(t *testing.T) {
	ctx := context.Background()
	X, y := noisyLine(10)
	pop := [][]float64{{1}, {2}}

	_, err := sampling.Uncertainty(ctx, nil, X, y, pop, 1)
	assert.ErrorIs(t, err, sampling.ErrNilModel)

	_, err = sampling.Uncertainty(ctx, &constModel{}, X, y[:9], pop, 1)
	assert.ErrorIs(t, err, sampling.ErrLengthMismatch)

	_, err = sampling.Uncertainty(ctx, &constModel{}, X, y, pop, 0)
	assert.ErrorIs(t, err, sampling.ErrInvalidSize)
	_, err = sampling.Uncertainty(ctx, &constModel{}, X, y, pop, 3)
	assert.ErrorIs(t, err, sampling.ErrInvalidSize)
	_, err = sampling.Uncertainty(ctx, &constModel{}, X, y, make([][]float64, 20), 10)
	assert.ErrorIs(t, err, sampling.ErrInvalidSize)

	_, err = sampling.Uncertainty(ctx, &constModel{}, X, y, pop, 1, sampling.WithGroups(3))
	assert.ErrorIs(t, err, sampling.ErrGroupDivisibility)

	_, err = sampling.Uncertainty(ctx, &constModel{}, X, y, pop, 1, sampling.WithSplit(0.01))
	assert.ErrorIs(t, err, sampling.ErrSplitSize)
	_, err = sampling.Uncertainty(ctx, &constModel{}, X, y, pop, 1, sampling.WithSplit(2), sampling.WithGroups(2))
	assert.ErrorIs(t, err, sampling.ErrSplitSize)
	_, err = sampling.Uncertainty(ctx, &constModel{}, X, y, pop, 1, sampling.WithSplit(10))
	assert.ErrorIs(t, err, sampling.ErrSplitSize)

	_, err = sampling.Uncertainty(ctx, failingModel{}, X, y, pop, 1)
	assert.ErrorIs(t, err, errBoom)

	_, err = sampling.Uncertainty(ctx, &shortModel{}, X, y, pop, 1)
	assert.ErrorIs(t, err, sampling.ErrLengthMismatch)
}

func TestUncertainty_AbsoluteSplit(t *testing.T) {
	X, y := noisyLine(12)
	m := &constModel{}
	_, err := sampling.Uncertainty(context.Background(), m, X, y, X, 1,
		sampling.WithSplit(4), sampling.WithGroups(2), sampling.WithIterations(2))
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8}, m.trainLen)
}

func TestUncertainty_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	X, y := noisyLine(10)
	_, err := sampling.Uncertainty(ctx, &constModel{}, X, y, X, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUncertainty_VerboseLogsRounds(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	X, y := noisyLine(10)
	_, err := sampling.Uncertainty(context.Background(), &constModel{}, X, y, X, 1,
		sampling.WithIterations(3), sampling.WithVerbose(1), sampling.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("uncertainty: round")))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { sampling.WithIterations(0) })
	assert.Panics(t, func() { sampling.WithSplit(0) })
	assert.Panics(t, func() { sampling.WithGroups(0) })
	assert.Panics(t, func() { sampling.WithVerbose(-1) })
	assert.Panics(t, func() { sampling.WithLogger(nil) })
}
