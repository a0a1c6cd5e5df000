// SPDX-License-Identifier: MIT

// Package ops - polar decomposition built on MatrixSqrt.
//
//   - Right form (left == false): A = R·U, U = sqrt(AᵀA) is cols×cols, R = A·U⁻¹.
//   - Left form  (left == true):  A = U·R, U = sqrt(AAᵀ) is rows×rows, R = U⁻¹·A.
//
// R is orthogonal by construction when A has full rank; this is not enforced.

package ops

import (
	"github.com/katalvlaran/vectortools/matrix"
)

const (
	opPolarDecomposition = "PolarDecomposition"
	opPolar              = "Polar"
)

// PolarDecomposition factors a rows×cols row-major A into a rotation R and a
// symmetric stretch U.
//
// Implementation:
//   - Stage 1: ValidateBuffer(a, rows, cols) and ValidateFinite(a).
//   - Stage 2: S = AᵀA (right) or AAᵀ (left) via MatrixMultiply with transpose flags.
//   - Stage 3: U = MatrixSqrt(S); U⁻¹ = Inverse(U).
//   - Stage 4: R = A·U⁻¹ (right) or U⁻¹·A (left).
//
// Errors:
//   - shape errors, ErrNaNInf; any MatrixSqrt error (*SolveError); ErrSingular when U is singular.
//
// Complexity: dominated by MatrixSqrt on a d×d product, d = cols (right) or rows (left).
func PolarDecomposition(a []float64, rows, cols int, left bool, opts ...Option) (r, u []float64, err error) {
	if err = matrix.ValidateBuffer(a, rows, cols); err != nil {
		return nil, nil, opsErrorf(opPolarDecomposition, err)
	}
	if err = matrix.ValidateFinite(a); err != nil {
		return nil, nil, opsErrorf(opPolarDecomposition, err)
	}

	dim := cols
	if left {
		dim = rows
	}
	var s []float64
	if left {
		s, err = MatrixMultiply(a, a, rows, cols, rows, cols, false, true)
	} else {
		s, err = MatrixMultiply(a, a, rows, cols, rows, cols, true, false)
	}
	if err != nil {
		return nil, nil, opsErrorf(opPolarDecomposition, err)
	}

	if u, err = MatrixSqrt(s, dim, opts...); err != nil {
		return nil, nil, opsErrorf(opPolarDecomposition, err)
	}
	uInv, err := Inverse(u, dim, dim, opts...)
	if err != nil {
		return nil, nil, opsErrorf(opPolarDecomposition, err)
	}

	if left {
		r, err = MatrixMultiply(uInv, a, dim, dim, rows, cols, false, false)
	} else {
		r, err = MatrixMultiply(a, uInv, rows, cols, dim, dim, false, false)
	}
	if err != nil {
		return nil, nil, opsErrorf(opPolarDecomposition, err)
	}

	return r, u, nil
}

// Polar is PolarDecomposition for any matrix.Matrix.
func Polar(m matrix.Matrix, left bool, opts ...Option) (r, u *matrix.Dense, err error) {
	a, err := matrix.RowMajorOf(m)
	if err != nil {
		return nil, nil, opsErrorf(opPolar, err)
	}
	rows, cols := m.Rows(), m.Cols()
	rBuf, uBuf, err := PolarDecomposition(a, rows, cols, left, opts...)
	if err != nil {
		return nil, nil, err
	}
	dim := cols
	if left {
		dim = rows
	}
	if r, err = matrix.NewDenseFrom(rows, cols, rBuf); err != nil {
		return nil, nil, opsErrorf(opPolar, err)
	}
	if u, err = matrix.NewDenseFrom(dim, dim, uBuf); err != nil {
		return nil, nil, opsErrorf(opPolar, err)
	}

	return r, u, nil
}
