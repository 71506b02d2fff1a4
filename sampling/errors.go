// SPDX-License-Identifier: MIT

package sampling

import "errors"

var (
	// ErrInvalidSize indicates a sample size outside the admissible range.
	ErrInvalidSize = errors.New("sampling: invalid sample size")

	// ErrLengthMismatch indicates inconsistent lengths (X vs y, or a Model
	// returning the wrong number of predictions).
	ErrLengthMismatch = errors.New("sampling: length mismatch")

	// ErrGroupDivisibility indicates that the labelled set cannot be split
	// into equally sized groups.
	ErrGroupDivisibility = errors.New("sampling: samples not divisible by groups")

	// ErrSplitSize indicates a validation split that leaves no validation or
	// no training rows per group.
	ErrSplitSize = errors.New("sampling: invalid validation split size")

	// ErrNilModel indicates a nil Model.
	ErrNilModel = errors.New("sampling: model is nil")
)
