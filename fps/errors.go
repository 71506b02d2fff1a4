// SPDX-License-Identifier: MIT
// Package fps: sentinel error set.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Context is attached at the detection site with %w.
//   - Population validation failures wrap BOTH ErrShape and the underlying
//     matrix sentinel (matrix.ErrBadShape / matrix.ErrNaNInf).
//   - Every error is raised before the distance matrix is built.

package fps

import "errors"

var (
	// ErrShape indicates a malformed population (empty, ragged, non-finite) or
	// initial coordinate rows whose width differs from the population's.
	ErrShape = errors.New("fps: shape mismatch")

	// ErrIndexOutOfRange indicates an initial index outside [0, N).
	ErrIndexOutOfRange = errors.New("fps: initial index out of range")

	// ErrNoMatch indicates an initial coordinate row that matches no population
	// point within the match tolerance.
	ErrNoMatch = errors.New("fps: initial point matches no population point")

	// ErrCapacity indicates |initial| + size > N.
	ErrCapacity = errors.New("fps: initial set plus sample size exceeds population")

	// ErrMode indicates an initialization mode other than InitAuto, InitIndex, InitPoints.
	ErrMode = errors.New("fps: unknown initialization mode")

	// ErrInvalidSize indicates a requested sample size below one.
	ErrInvalidSize = errors.New("fps: sample size must be >= 1")
)
