// SPDX-License-Identifier: MIT

// Package ops - general matrix multiply on row-major buffers.
//
// C = op(A)·op(B) where op(X) is X or Xᵀ per flag. The buffers are handed to
// gonum's BLAS Dgemm as row-major views (leading dimension = stored column count),
// so a transpose never materializes a copy.

package ops

import (
	"fmt"

	"github.com/katalvlaran/vectortools/matrix"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

const (
	opMatrixMultiply = "MatrixMultiply"
	opMatMul         = "MatMul"
)

// MatrixMultiply returns op(A)·op(B) as a fresh row-major buffer.
//
// Implementation:
//   - Stage 1: ValidateBuffer for both operands against their declared shapes.
//   - Stage 2: derive effective shapes: op(A) is m×k, op(B) is k'×n; require k == k'.
//   - Stage 3: a single Dgemm call with alpha=1, beta=0 into an m×n buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (buffer length or k != k').
//
// Complexity:
//   - Time O(m·n·k), Space O(m·n).
func MatrixMultiply(a, b []float64, aRows, aCols, bRows, bCols int, aTrans, bTrans bool) ([]float64, error) {
	if err := matrix.ValidateBuffer(a, aRows, aCols); err != nil {
		return nil, opsErrorf(opMatrixMultiply, err)
	}
	if err := matrix.ValidateBuffer(b, bRows, bCols); err != nil {
		return nil, opsErrorf(opMatrixMultiply, err)
	}

	m, k, tA := aRows, aCols, blas.NoTrans
	if aTrans {
		m, k, tA = aCols, aRows, blas.Trans
	}
	kb, n, tB := bRows, bCols, blas.NoTrans
	if bTrans {
		kb, n, tB = bCols, bRows, blas.Trans
	}
	if k != kb {
		return nil, opsErrorf(opMatrixMultiply, fmt.Errorf("inner dimensions %d != %d: %w", k, kb, matrix.ErrDimensionMismatch))
	}

	c := make([]float64, m*n)
	blas64.Implementation().Dgemm(tA, tB, m, n, k, 1, a, aCols, b, bCols, 0, c, n)

	return c, nil
}

// MatMul returns A·B for nested matrices.
func MatMul(A, B [][]float64) ([][]float64, error) {
	return nestedMultiply(A, B, false, false)
}

// MatMulT returns A·Bᵀ for nested matrices.
func MatMulT(A, B [][]float64) ([][]float64, error) {
	return nestedMultiply(A, B, false, true)
}

// TMatMul returns Aᵀ·B for nested matrices.
func TMatMul(A, B [][]float64) ([][]float64, error) {
	return nestedMultiply(A, B, true, false)
}

// TMatMulT returns Aᵀ·Bᵀ for nested matrices.
func TMatMulT(A, B [][]float64) ([][]float64, error) {
	return nestedMultiply(A, B, true, true)
}

// nestedMultiply flattens both operands (regularity enforced), multiplies and inflates.
func nestedMultiply(A, B [][]float64, aTrans, bTrans bool) ([][]float64, error) {
	a, err := matrix.Flatten(A)
	if err != nil {
		return nil, opsErrorf(opMatMul, err)
	}
	b, err := matrix.Flatten(B)
	if err != nil {
		return nil, opsErrorf(opMatMul, err)
	}
	aRows, aCols := len(A), len(A[0])
	bRows, bCols := len(B), len(B[0])
	c, err := MatrixMultiply(a, b, aRows, aCols, bRows, bCols, aTrans, bTrans)
	if err != nil {
		return nil, opsErrorf(opMatMul, err)
	}
	rows, cols := aRows, bCols
	if aTrans {
		rows = aCols
	}
	if bTrans {
		cols = bRows
	}

	return matrix.Inflate(c, rows, cols)
}
