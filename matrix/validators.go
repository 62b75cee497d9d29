// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for the structural checks the ledgers rely on.
//   - Return sentinel errors wrapped with the validator tag so errors.Is keeps working.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry and mask checks scan the strict upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| ≤ tol for all i<j.
// A negative tolerance is taken by absolute value; NaN/Inf tolerance is ErrNaNInf.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks m[i,i] == 0 for every i.
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	var i int
	for i = 0; i < m.r; i++ {
		if m.data[i*m.c+i] != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d)", i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateMask checks that every non-zero cell of values sits on a non-zero
// cell of mask. Both grids must share a shape.
// Complexity: O(r*c).
func ValidateMask(values, mask *Dense) error {
	if err := ValidateSameShape(values, mask); err != nil {
		return validatorErrorf("ValidateMask", err)
	}
	var k int
	for k = range values.data {
		if values.data[k] != 0 && mask.data[k] == 0 {
			return validatorErrorf(fmt.Sprintf("ValidateMask(%d,%d)", k/values.c, k%values.c), ErrMaskViolation)
		}
	}

	return nil
}
