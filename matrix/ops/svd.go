// SPDX-License-Identifier: MIT

// Package ops - full singular value decomposition A = U·diag(σ)·Vᵀ.
//
// Backed by LAPACK Dgesvd (gonum lapack64), which operates on row-major
// blas64.General views directly.

package ops

import (
	"fmt"

	"github.com/katalvlaran/vectortools/matrix"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

const opSVD = "SVD"

// SVD computes the full factorization of a rows×cols row-major buffer.
//
// Returns:
//   - u: rows×rows orthogonal, row-major.
//   - sigma: min(rows, cols) singular values, non-negative, descending.
//   - v: cols×cols orthogonal, row-major (V, not Vᵀ).
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch; ErrNotConverged when the
//     bidiagonal QR iteration fails.
//
// Complexity: O(rows·cols·max(rows, cols)).
func SVD(a []float64, rows, cols int) (u, sigma, v []float64, err error) {
	if err = matrix.ValidateBuffer(a, rows, cols); err != nil {
		return nil, nil, nil, opsErrorf(opSVD, err)
	}

	work := make([]float64, len(a))
	copy(work, a) // Gesvd destroys its input
	A := blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: work}
	U := blas64.General{Rows: rows, Cols: rows, Stride: rows, Data: make([]float64, rows*rows)}
	VT := blas64.General{Rows: cols, Cols: cols, Stride: cols, Data: make([]float64, cols*cols)}
	sigma = make([]float64, min(rows, cols))

	// Workspace query, then the factorization proper.
	query := make([]float64, 1)
	lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, A, U, VT, sigma, query, -1)
	scratch := make([]float64, int(query[0]))
	if ok := lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, A, U, VT, sigma, scratch, len(scratch)); !ok {
		return nil, nil, nil, opsErrorf(opSVD, fmt.Errorf("Dgesvd: %w", matrix.ErrNotConverged))
	}

	v = make([]float64, cols*cols)
	var i, j int
	for i = 0; i < cols; i++ {
		for j = 0; j < cols; j++ {
			v[i*cols+j] = VT.Data[j*cols+i]
		}
	}

	return U.Data, sigma, v, nil
}
