// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/length checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (e.g. dims → buffer length → square).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateDims checks that rows and cols are both positive.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateBuffer checks a row-major buffer against its declared shape.
//
// Implementation:
//   - Stage 1: ValidateDims(rows, cols).
//   - Stage 2: len(buf) == rows*cols, else ErrDimensionMismatch.
//
// Complexity: O(1).
// AI-Hints: Call first in every kernel that accepts (buf, rows, cols).
func ValidateBuffer(buf []float64, rows, cols int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return validatorErrorf("ValidateBuffer", err)
	}
	if len(buf) != rows*cols {
		return validatorErrorf(fmt.Sprintf("ValidateBuffer: len %d != %dx%d", len(buf), rows, cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareBuffer is ValidateBuffer followed by rows == cols.
// Errors: ErrInvalidDimensions, ErrDimensionMismatch, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareBuffer(buf []float64, rows, cols int) error {
	if err := ValidateBuffer(buf, rows, cols); err != nil {
		return err
	}
	if rows != cols {
		return validatorErrorf(fmt.Sprintf("ValidateSquareBuffer: %dx%d", rows, cols), ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil slice is treated as length zero.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d != %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen ensures two vectors have identical length.
func ValidateSameLen(a, b []float64) error {
	if len(a) != len(b) {
		return validatorErrorf(fmt.Sprintf("ValidateSameLen: %d != %d", len(a), len(b)), ErrDimensionMismatch)
	}

	return nil
}

// ValidateRegular checks that a nested matrix is non-empty and every row has
// the length of the first one. It returns the common column count.
//
// Errors:
//   - ErrBadShape  (no rows, or zero-length rows).
//   - ErrIrregular (row i differs in length from row 0).
//
// Complexity: O(rows).
func ValidateRegular(A [][]float64) (int, error) {
	if len(A) == 0 {
		return 0, validatorErrorf("ValidateRegular: no rows", ErrBadShape)
	}
	cols := len(A[0])
	if cols == 0 {
		return 0, validatorErrorf("ValidateRegular: no columns", ErrBadShape)
	}
	for i := 1; i < len(A); i++ {
		if len(A[i]) != cols {
			return 0, validatorErrorf(fmt.Sprintf("ValidateRegular: row %d has %d entries, want %d", i, len(A[i]), cols), ErrIrregular)
		}
	}

	return cols, nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Complexity: O(len(x)).
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: index %d", i), ErrNaNInf)
		}
	}

	return nil
}
