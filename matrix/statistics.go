// SPDX-License-Identifier: MIT

// Package matrix - column statistics over row-major data.
//
// Purpose:
//   - Provide the per-feature arithmetic mean (centroid) of a point set stored
//     one point per row.
//
// Determinism:
//   - Fixed i→j traversal; the same input always yields bitwise-identical means.

package matrix

import "fmt"

const opColumnMeans = "ColumnMeans"

// ColumnMeans returns the per-column arithmetic mean of X (len == X.Cols()).
//
// Implementation:
//   - Stage 1: validate X (non-nil).
//   - Stage 2: accumulate column sums (Dense fast-path on the flat buffer; At fallback).
//   - Stage 3: scale by 1/r.
//
// Errors:
//   - ErrNilMatrix from validation.
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return means, nil
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err := X.At(i, j)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}
