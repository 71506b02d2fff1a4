// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every function returns these sentinels (possibly wrapped with
// method context via %w) and tests match them with errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the detection site; callers still
// branch with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> NaN/Inf -> structural (symmetry, diagonal).

var (
	// ErrBadShape is returned when a shape is invalid: non-positive dimensions,
	// an empty row set, or ragged rows in FromRows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the supplied tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal entry exceeded the tolerance
	// where a zero diagonal is required (distance matrices).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNegative signals a negative entry where only non-negative values are legal.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
