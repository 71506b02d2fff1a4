// SPDX-License-Identifier: MIT

// Package sampling - uncertainty sampling.
//
// Algorithm (per round r = 1..iterations):
//  1. Draw nSplit distinct in-group positions from a per-round RNG stream.
//  2. The rows at those positions in every group form the validation set;
//     all other rows, in their original order, form the training set.
//  3. Fit the model, record train / validation RMSE, predict the population.
//
// After the last round every population point has `iterations` predictions.
// Their mean and population standard deviation (ddof 0) are aggregated with
// scatter.Reduce; points are ordered by ascending deviation (stable, so ties
// keep index order) and the last `size` of that order are selected.

package sampling

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/lvsample/scatter"
)

// Model is a regressor retrained on every round. Implementations must be
// deterministic for identical inputs if reproducible results are required.
type Model interface {
	// Fit trains the model on X (one row per sample) and targets y.
	Fit(ctx context.Context, X [][]float64, y []float64) error
	// Predict returns one prediction per row of X.
	Predict(ctx context.Context, X [][]float64) ([]float64, error)
}

// UncertaintyResult is the outcome of Uncertainty.
type UncertaintyResult struct {
	// Indices are the selected population indices, least to most uncertain.
	Indices []int
	// Order is the stable ascending argsort of Uncertainty.
	Order []int
	// PredictMean and Uncertainty hold the per-point mean and standard
	// deviation of the predictions across rounds.
	PredictMean []float64
	Uncertainty []float64
	// TrainRMSE and ValidRMSE hold one entry per round.
	TrainRMSE []float64
	ValidRMSE []float64
}

// Uncertainty selects the size population points whose predictions vary most
// when model is retrained on random train/validation splits of (X, y).
//
// Errors:
//   - ErrNilModel when model is nil.
//   - ErrLengthMismatch when len(X) != len(y) or Predict returns the wrong count.
//   - ErrInvalidSize when size < 1, size >= len(X) or size > len(population).
//   - ErrGroupDivisibility when len(X) is not a multiple of the group count.
//   - ErrSplitSize when the split leaves no validation or no training rows
//     in a group.
//   - Model errors and ctx.Err() are returned wrapped.
func Uncertainty(
	ctx context.Context,
	model Model,
	X [][]float64,
	y []float64,
	population [][]float64,
	size int,
	opts ...Option,
) (*UncertaintyResult, error) {
	if model == nil {
		return nil, fmt.Errorf("Uncertainty: %w", ErrNilModel)
	}
	n := len(X)
	if n != len(y) {
		return nil, fmt.Errorf("Uncertainty: len(X)=%d len(y)=%d: %w", n, len(y), ErrLengthMismatch)
	}
	if size < 1 || size >= n || size > len(population) {
		return nil, fmt.Errorf("Uncertainty: size=%d labelled=%d population=%d: %w",
			size, n, len(population), ErrInvalidSize)
	}
	cfg := gatherOptions(opts...)
	nIn, nSplit, err := splitSizes(n, cfg.groups, cfg.split)
	if err != nil {
		return nil, fmt.Errorf("Uncertainty: %w", err)
	}

	p := len(population)
	res := &UncertaintyResult{
		TrainRMSE: make([]float64, 0, cfg.iterations),
		ValidRMSE: make([]float64, 0, cfg.iterations),
	}
	values := make([]float64, 0, p*cfg.iterations)
	buckets := make([]int, 0, p*cfg.iterations)

	master := rngFromSeed(cfg.seed)
	for it := 0; it < cfg.iterations; it++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		valid := chooseWithoutReplacement(nIn, nSplit, deriveRNG(master, uint64(it)))
		xtr, ytr, xva, yva := splitGroups(X, y, cfg.groups, nIn, valid)

		if err = model.Fit(ctx, xtr, ytr); err != nil {
			return nil, fmt.Errorf("Uncertainty: round %d: fit: %w", it, err)
		}
		trainRMSE, err := predictRMSE(ctx, model, xtr, ytr)
		if err != nil {
			return nil, fmt.Errorf("Uncertainty: round %d: train: %w", it, err)
		}
		validRMSE, err := predictRMSE(ctx, model, xva, yva)
		if err != nil {
			return nil, fmt.Errorf("Uncertainty: round %d: validation: %w", it, err)
		}
		pred, err := predictN(ctx, model, population)
		if err != nil {
			return nil, fmt.Errorf("Uncertainty: round %d: population: %w", it, err)
		}
		res.TrainRMSE = append(res.TrainRMSE, trainRMSE)
		res.ValidRMSE = append(res.ValidRMSE, validRMSE)
		for i, v := range pred {
			values = append(values, v)
			buckets = append(buckets, i)
		}

		if cfg.verbose > 0 {
			cfg.logger.Log(ctx, slog.LevelInfo, "uncertainty: round",
				"round", it+1, "of", cfg.iterations, "train_rmse", trainRMSE, "valid_rmse", validRMSE)
		}
	}

	if res.PredictMean, err = scatter.Reduce(values, buckets, scatter.Mean); err != nil {
		return nil, fmt.Errorf("Uncertainty: mean: %w", err)
	}
	sq := make([]float64, len(values))
	for k, v := range values {
		d := v - res.PredictMean[buckets[k]]
		sq[k] = d * d
	}
	variance, err := scatter.Reduce(sq, buckets, scatter.Mean)
	if err != nil {
		return nil, fmt.Errorf("Uncertainty: variance: %w", err)
	}
	res.Uncertainty = make([]float64, p)
	for i, v := range variance {
		res.Uncertainty[i] = math.Sqrt(v)
	}

	res.Order = make([]int, p)
	for i := range res.Order {
		res.Order[i] = i
	}
	slices.SortStableFunc(res.Order, func(a, b int) int {
		return cmp.Compare(res.Uncertainty[a], res.Uncertainty[b])
	})
	res.Indices = slices.Clone(res.Order[p-size:])

	return res, nil
}

// splitSizes returns the group length and the per-group validation count.
func splitSizes(n, groups int, split float64) (nIn, nSplit int, err error) {
	if n%groups != 0 {
		return 0, 0, fmt.Errorf("splitSizes: n=%d groups=%d: %w", n, groups, ErrGroupDivisibility)
	}
	nIn = n / groups
	switch {
	case split < 1:
		nSplit = int(math.Round(split*float64(n))) / groups
	case split > float64(groups):
		nSplit = int(split) / groups
	default:
		return 0, 0, fmt.Errorf("splitSizes: split=%g must exceed groups=%d: %w", split, groups, ErrSplitSize)
	}
	if nSplit < 1 || nSplit >= nIn {
		return 0, 0, fmt.Errorf("splitSizes: %d validation rows per group of %d: %w", nSplit, nIn, ErrSplitSize)
	}

	return nIn, nSplit, nil
}

// splitGroups partitions (X, y) into training and validation rows. The
// validation positions apply to every group; row order is preserved.
func splitGroups(X [][]float64, y []float64, groups, nIn int, valid []int) (xtr [][]float64, ytr []float64, xva [][]float64, yva []float64) {
	isValid := make([]bool, nIn)
	for _, v := range valid {
		isValid[v] = true
	}
	nva := len(valid) * groups
	xtr, ytr = make([][]float64, 0, len(X)-nva), make([]float64, 0, len(X)-nva)
	xva, yva = make([][]float64, 0, nva), make([]float64, 0, nva)
	for g := 0; g < groups; g++ {
		for pos := 0; pos < nIn; pos++ {
			i := g*nIn + pos
			if isValid[pos] {
				xva, yva = append(xva, X[i]), append(yva, y[i])
			} else {
				xtr, ytr = append(xtr, X[i]), append(ytr, y[i])
			}
		}
	}

	return xtr, ytr, xva, yva
}

func predictN(ctx context.Context, m Model, X [][]float64) ([]float64, error) {
	pred, err := m.Predict(ctx, X)
	if err != nil {
		return nil, err
	}
	if len(pred) != len(X) {
		return nil, fmt.Errorf("predict: %d predictions for %d rows: %w", len(pred), len(X), ErrLengthMismatch)
	}

	return pred, nil
}

func predictRMSE(ctx context.Context, m Model, X [][]float64, y []float64) (float64, error) {
	pred, err := predictN(ctx, m, X)
	if err != nil {
		return 0, err
	}

	return rmse(pred, y), nil
}

// rmse assumes len(a) == len(b) > 0.
func rmse(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s / float64(len(a)))
}
