// SPDX-License-Identifier: MIT
// Package: lvsample/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates a size parameter (n, side, dim, centers) below
// the constructor's minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDimensionMismatch indicates constructors disagreeing on the point dimension.
var ErrDimensionMismatch = errors.New("builder: dimension mismatch")

// ErrConstructFailed indicates a nil constructor or an unusable result.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name and a formatted detail,
// keeping err available to errors.Is.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
