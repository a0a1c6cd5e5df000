// SPDX-License-Identifier: MIT

// Package ops - LU decomposition with partial pivoting (LAPACK Dgetrf) and the determinant.

package ops

import (
	"fmt"

	"github.com/katalvlaran/vectortools/matrix"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

const (
	opLU                  = "LU"
	opDeterminant         = "Determinant"
	opDeterminantGradient = "DeterminantGradient"
)

// luFactors holds P·A = L·U as returned by LAPACK Dgetrf: the strict lower
// triangle of lu is L (unit diagonal implied), the upper triangle including
// the diagonal is U. ipiv[i] is the row swapped with row i at step i.
type luFactors struct {
	n    int
	lu   []float64
	ipiv []int
}

// luDecompose factors a copy of a with lapack64.Getrf (partial pivoting).
// Singular inputs still factor; U then has a zero on its diagonal.
// Complexity: O(n³) time, O(n²) space.
func luDecompose(a []float64, n int) *luFactors {
	f := &luFactors{n: n, lu: make([]float64, n*n), ipiv: make([]int, n)}
	copy(f.lu, a)
	lapack64.Getrf(blas64.General{Rows: n, Cols: n, Stride: n, Data: f.lu}, f.ipiv)

	return f
}

// det returns (-1)^swaps · Π U_ii.
func (f *luFactors) det() float64 {
	d := 1.0
	for i := 0; i < f.n; i++ {
		d *= f.lu[i*f.n+i]
		if f.ipiv[i] != i {
			d = -d
		}
	}

	return d
}

// perm replays the row interchanges: row i of P·A is row perm[i] of A.
func (f *luFactors) perm() []int {
	p := make([]int, f.n)
	for i := range p {
		p[i] = i
	}
	for i, r := range f.ipiv {
		p[i], p[r] = p[r], p[i]
	}

	return p
}

// LU performs the decomposition P·A = L·U of a square matrix with partial pivoting.
// It returns L (unit lower triangular), U (upper triangular) and the row
// permutation perm, where row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n³) time, O(n²) memory.
func LU(m matrix.Matrix) (L, U *matrix.Dense, perm []int, err error) {
	a, err := matrix.RowMajorOf(m)
	if err != nil {
		return nil, nil, nil, opsErrorf(opLU, err)
	}
	n := m.Rows()
	if n != m.Cols() {
		return nil, nil, nil, opsErrorf(opLU, fmt.Errorf("%dx%d: %w", n, m.Cols(), matrix.ErrNonSquare))
	}

	f := luDecompose(a, n)
	l := make([]float64, n*n)
	u := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		l[i*n+i] = 1
		for j = 0; j < n; j++ {
			if j < i {
				l[i*n+j] = f.lu[i*n+j]
			} else {
				u[i*n+j] = f.lu[i*n+j]
			}
		}
	}
	if L, err = matrix.NewDenseFrom(n, n, l, matrix.WithNoValidateNaNInf()); err != nil {
		return nil, nil, nil, opsErrorf(opLU, err)
	}
	if U, err = matrix.NewDenseFrom(n, n, u, matrix.WithNoValidateNaNInf()); err != nil {
		return nil, nil, nil, opsErrorf(opLU, err)
	}

	return L, U, f.perm(), nil
}

// Determinant returns det(A) of a square row-major buffer.
//
// Implementation:
//   - Stage 1: ValidateSquareBuffer(a, rows, cols).
//   - Stage 2: lapack64.Getrf; det = (-1)^swaps · Π U_ii.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNonSquare.
//
// Complexity: O(n³).
func Determinant(a []float64, rows, cols int) (float64, error) {
	if err := matrix.ValidateSquareBuffer(a, rows, cols); err != nil {
		return 0, opsErrorf(opDeterminant, err)
	}

	return luDecompose(a, rows).det(), nil
}

// DeterminantGradient returns ∂det(A)/∂A = det(A)·A⁻ᵀ as a row-major buffer.
//
// Errors:
//   - shape errors as Determinant; ErrSingular when A is not invertible.
//
// Complexity: O(n³).
func DeterminantGradient(a []float64, rows, cols int, opts ...Option) ([]float64, error) {
	det, err := Determinant(a, rows, cols)
	if err != nil {
		return nil, opsErrorf(opDeterminantGradient, err)
	}
	inv, err := Inverse(a, rows, cols, opts...)
	if err != nil {
		return nil, opsErrorf(opDeterminantGradient, err)
	}
	n := rows
	out := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[i*n+j] = det * inv[j*n+i] // transpose
		}
	}

	return out, nil
}
