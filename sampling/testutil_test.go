package sampling_test

import (
	"context"
	"errors"
)

// constModel predicts the training mean everywhere.
type constModel struct {
	mean     float64
	fits     int
	trainLen []int
	trainX   [][][]float64
}

func (m *constModel) Fit(_ context.Context, X [][]float64, y []float64) error {
	m.fits++
	m.trainLen = append(m.trainLen, len(X))
	m.trainX = append(m.trainX, X)
	var s float64
	for _, v := range y {
		s += v
	}
	m.mean = s / float64(len(y))
	return nil
}

func (m *constModel) Predict(_ context.Context, X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i := range out {
		out[i] = m.mean
	}
	return out, nil
}

// lineModel is ordinary least squares on the first feature.
type lineModel struct{ a, b float64 }

func (m *lineModel) Fit(_ context.Context, X [][]float64, y []float64) error {
	var sx, sy float64
	for i := range X {
		sx += X[i][0]
		sy += y[i]
	}
	n := float64(len(X))
	mx, my := sx/n, sy/n
	var sxy, sxx float64
	for i := range X {
		dx := X[i][0] - mx
		sxy += dx * (y[i] - my)
		sxx += dx * dx
	}
	m.b = sxy / sxx
	m.a = my - m.b*mx
	return nil
}

func (m *lineModel) Predict(_ context.Context, X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = m.a + m.b*X[i][0]
	}
	return out, nil
}

var errBoom = errors.New("boom")

type failingModel struct{}

func (failingModel) Fit(context.Context, [][]float64, []float64) error { return errBoom }
func (failingModel) Predict(context.Context, [][]float64) ([]float64, error) {
	return nil, errBoom
}

// shortModel returns one prediction too few.
type shortModel struct{ constModel }

func (m *shortModel) Predict(ctx context.Context, X [][]float64) ([]float64, error) {
	out, _ := m.constModel.Predict(ctx, X)
	return out[:len(out)-1], nil
}

// noisyLine returns n labelled points x=i, y=i±0.5 (alternating).
func noisyLine(n int) ([][]float64, []float64) {
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X[i] = []float64{float64(i)}
		y[i] = float64(i) + 0.5
		if i%2 == 1 {
			y[i] = float64(i) - 0.5
		}
	}
	return X, y
}
