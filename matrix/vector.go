// SPDX-License-Identifier: MIT

// Package matrix - element-wise vector and nested-matrix arithmetic.
//
// Every function returns a fresh slice; inputs are never mutated. Vector-vector
// operations require identical lengths (ErrDimensionMismatch otherwise); scalar
// operations broadcast. Flat kernels delegate to gonum/floats.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	opVecAdd    = "Add"
	opVecSub    = "Sub"
	opVecDivide = "Divide"
	opNestedAdd = "AddNested"
	opNestedSub = "SubNested"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a + b.
// Errors: ErrDimensionMismatch when len(a) != len(b).
// Complexity: O(n).
func Add(a, b []float64) ([]float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opVecAdd, err)
	}

	return floats.AddTo(make([]float64, len(a)), a, b), nil
}

// Sub returns a - b.
// Errors: ErrDimensionMismatch when len(a) != len(b).
func Sub(a, b []float64) ([]float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}

	return floats.SubTo(make([]float64, len(a)), a, b), nil
}

// Negate returns -v.
func Negate(v []float64) []float64 {
	return Scale(v, -1)
}

// Scale returns s*v.
func Scale(v []float64, s float64) []float64 {
	return floats.ScaleTo(make([]float64, len(v)), s, v)
}

// Divide returns v/s. A zero divisor is rejected rather than producing ±Inf.
// Errors: ErrDivideByZero.
func Divide(v []float64, s float64) ([]float64, error) {
	if s == 0 {
		return nil, matrixErrorf(opVecDivide, ErrDivideByZero)
	}

	return Scale(v, 1/s), nil
}

// AddScalar returns v + s (broadcast).
func AddScalar(v []float64, s float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	floats.AddConst(s, out)

	return out
}

// SubScalar returns v - s (broadcast).
func SubScalar(v []float64, s float64) []float64 {
	return AddScalar(v, -s)
}

// AddNested returns A + B for nested matrices of identical shape.
//
// Implementation:
//   - Stage 1: row counts must match; each row pair must have equal length.
//   - Stage 2: row-wise Add.
//
// Errors:
//   - ErrDimensionMismatch (row count or row length differs).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddNested(A, B [][]float64) ([][]float64, error) {
	return nestedBinary(A, B, Add, opNestedAdd)
}

// SubNested returns A - B for nested matrices of identical shape.
func SubNested(A, B [][]float64) ([][]float64, error) {
	return nestedBinary(A, B, Sub, opNestedSub)
}

// NegateNested returns -A.
func NegateNested(A [][]float64) [][]float64 {
	out := make([][]float64, len(A))
	for i, row := range A {
		out[i] = Negate(row)
	}

	return out
}

// nestedBinary applies a row-wise binary kernel after checking the row count.
func nestedBinary(A, B [][]float64, kernel func(a, b []float64) ([]float64, error), opTag string) ([][]float64, error) {
	if len(A) != len(B) {
		return nil, matrixErrorf(opTag, fmt.Errorf("rows %d != %d: %w", len(A), len(B), ErrDimensionMismatch))
	}
	out := make([][]float64, len(A))
	var err error
	for i := range A {
		if out[i], err = kernel(A[i], B[i]); err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return out, nil
}
