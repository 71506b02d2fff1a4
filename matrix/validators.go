// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep callers minimal by delegating shape/nil/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry and diagonal checks run O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| <= tol for every i<j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare from the composite prefix.
//   - ErrAsymmetry with the first offending coordinates (row-major scan order).
//
// Complexity: O(n²/2).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, err := m.At(i, j)
			if err != nil {
				return err
			}
			b, err := m.At(j, i)
			if err != nil {
				return err
			}
			if math.Abs(a-b) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistance checks the structural contract of a distance matrix:
// square, zero diagonal (within tol), non-negative, symmetric (within tol).
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		d, err := m.At(i, i)
		if err != nil {
			return err
		}
		if math.Abs(d) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, i), ErrNonZeroDiagonal)
		}
		for j = 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNegative)
			}
		}
	}

	return ValidateSymmetric(m, tol)
}
