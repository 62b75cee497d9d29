// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every exported method returns these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)) and tests match them via errors.Is.
// No method panics on caller-supplied indices or values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines are easy to grep.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> index -> NaN/Inf -> structural violations (symmetry, diagonal, mask).

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At and SetSymmetric MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square grid was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates two grids that must share a shape do not.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a grid expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a non-zero entry on a diagonal required to be zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrMaskViolation signals a non-zero value in a cell whose mask entry is zero.
	ErrMaskViolation = errors.New("matrix: value outside mask")
)
