// SPDX-License-Identifier: MIT

// Package ops - dense linear solves with rank reporting.
//
// Contract of SolveLinearSystem: len(a) == rows*cols and len(b) == cols (the
// number of unknowns). Only square systems are accepted there; rectangular
// least-squares problems use LeastSquares, where len(b) == rows.

package ops

import (
	"fmt"

	"github.com/katalvlaran/vectortools/matrix"
)

const (
	opSolveLinearSystem = "SolveLinearSystem"
	opLeastSquares      = "LeastSquares"
)

// SolveLinearSystem solves A·x = b and reports the numeric rank of A.
//
// Implementation:
//   - Stage 1: ValidateBuffer(a, rows, cols); len(b) == cols; rows == cols.
//   - Stage 2: Factorize (column-pivoted QR) and Solve.
//
// Behavior highlights:
//   - A rank-deficient A is not an error here: x is the basic solution over the
//     first rank pivoted columns and the caller decides using the returned rank.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNonSquare.
//
// Complexity: O(n³).
func SolveLinearSystem(a, b []float64, rows, cols int, opts ...Option) (x []float64, rank int, err error) {
	x, f, err := SolveLinearSystemWith(a, b, rows, cols, opts...)
	if err != nil {
		return nil, 0, err
	}

	return x, f.Rank(), nil
}

// SolveLinearSystemWith is SolveLinearSystem that also returns the factorization,
// so further right-hand sides can be solved with (*QR).Solve without refactoring.
func SolveLinearSystemWith(a, b []float64, rows, cols int, opts ...Option) ([]float64, *QR, error) {
	if err := matrix.ValidateBuffer(a, rows, cols); err != nil {
		return nil, nil, opsErrorf(opSolveLinearSystem, err)
	}
	if err := matrix.ValidateVecLen(b, cols); err != nil {
		return nil, nil, opsErrorf(opSolveLinearSystem, err)
	}
	if rows != cols {
		return nil, nil, opsErrorf(opSolveLinearSystem, fmt.Errorf("%dx%d: %w", rows, cols, matrix.ErrNonSquare))
	}
	f, err := Factorize(a, rows, cols, opts...)
	if err != nil {
		return nil, nil, opsErrorf(opSolveLinearSystem, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, nil, opsErrorf(opSolveLinearSystem, err)
	}

	return x, f, nil
}

// SolveLinearSystemNested accepts A as a nested matrix.
func SolveLinearSystemNested(A [][]float64, b []float64, opts ...Option) ([]float64, int, error) {
	a, err := matrix.Flatten(A)
	if err != nil {
		return nil, 0, opsErrorf(opSolveLinearSystem, err)
	}

	return SolveLinearSystem(a, b, len(A), len(A[0]), opts...)
}

// LeastSquares returns the basic least-squares solution of min ‖A·x − b‖ for a
// rows×cols A (any shape) together with its numeric rank. Here len(b) == rows.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch.
//
// Complexity: O(rows·cols·min(rows, cols)).
func LeastSquares(a, b []float64, rows, cols int, opts ...Option) ([]float64, int, error) {
	f, err := Factorize(a, rows, cols, opts...)
	if err != nil {
		return nil, 0, opsErrorf(opLeastSquares, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, 0, opsErrorf(opLeastSquares, err)
	}

	return x, f.Rank(), nil
}
