// SPDX-License-Identifier: MIT

// Package ops - matrix inverse through the rank-revealing QR.
//
// A⁻¹ = P·R⁻¹·Qᵀ is obtained by solving A·X = I against every column of the
// identity at once; a rank below n is reported as ErrSingular instead of
// producing Inf/NaN entries.

package ops

import (
	"fmt"

	"github.com/katalvlaran/vectortools/matrix"
)

const opInverse = "Inverse"

// Inverse returns A⁻¹ of a square row-major buffer.
//
// Implementation:
//   - Stage 1 (Validate): ValidateSquareBuffer(a, rows, cols).
//   - Stage 2 (Decompose): A·P = Q·R via Factorize (threshold from opts).
//   - Stage 3 (Check): rank < n → ErrSingular.
//   - Stage 4 (Execute): X = P·R⁻¹·(Qᵀ·I) via Dormqr and Dtrtrs with n right-hand sides.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNonSquare, ErrNaNInf, ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(a []float64, rows, cols int, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquareBuffer(a, rows, cols); err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	n := rows
	f, err := Factorize(a, n, n, opts...)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	if f.Rank() < n {
		return nil, opsErrorf(opInverse, fmt.Errorf("rank %d < %d: %w", f.Rank(), n, matrix.ErrSingular))
	}

	eye, err := matrix.Eye(n)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	inv, err := f.solve(eye, n)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	return inv, nil
}

// InverseNested is Inverse for a nested square matrix.
func InverseNested(A [][]float64, opts ...Option) ([][]float64, error) {
	a, err := matrix.Flatten(A)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	rows := len(A)
	inv, err := Inverse(a, rows, len(A[0]), opts...)
	if err != nil {
		return nil, err
	}

	return matrix.Inflate(inv, rows, rows)
}

// InverseDense is Inverse for any matrix.Matrix, returning a *matrix.Dense.
func InverseDense(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	a, err := matrix.RowMajorOf(m)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}
	inv, err := Inverse(a, m.Rows(), m.Cols(), opts...)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(m.Rows(), m.Cols(), inv)
}
