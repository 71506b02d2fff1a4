// Package matrix provides the dense row-major float64 matrix shared by the
// distance and sampling packages, plus the validators and column statistics
// they rely on.
//
// The matrix package provides:
//
//   - Dense: an r×c matrix on one contiguous buffer; FromRows builds one
//     from a point set (one point per row) and rejects ragged or
//     non-finite input.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateVecLen,
//     ValidateSymmetric and ValidateDistance (square, zero diagonal,
//     non-negative, symmetric).
//   - ColumnMeans: the per-feature centroid of a point set.
//
// Errors are package-level sentinels (errors.go) wrapped with operation
// context; branch with errors.Is.
package matrix
