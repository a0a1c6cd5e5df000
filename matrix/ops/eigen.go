// SPDX-License-Identifier: MIT

// Package ops - eigen decomposition of real symmetric matrices (LAPACK Dsyev).

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vectortools/matrix"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

const opSymmetricEigen = "SymmetricEigen"

// SymmetricEigen computes A = V·diag(λ)·Vᵀ for a symmetric dim×dim row-major A.
// values are ascending; column k of the row-major vectors buffer belongs to values[k].
//
// Implementation:
//   - Stage 1: ValidateSquareBuffer, ValidateFinite; reject
//     |A_ij − A_ji| > tolr·max(|A_ij|, |A_ji|) + tola.
//   - Stage 2: lapack64.Syev on the upper triangle (workspace query, then the call);
//     the QL/QR iteration is scale-free, so tiny and huge matrices are handled alike.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNonSquare, ErrNaNInf,
//     ErrNotSymmetric, ErrNotConverged (the tridiagonal iteration failed).
//
// Complexity:
//   - Time O(dim³), Space O(dim²).
func SymmetricEigen(a []float64, dim int, opts ...Option) (values, vectors []float64, err error) {
	if err = matrix.ValidateSquareBuffer(a, dim, dim); err != nil {
		return nil, nil, opsErrorf(opSymmetricEigen, err)
	}
	if err = matrix.ValidateFinite(a); err != nil {
		return nil, nil, opsErrorf(opSymmetricEigen, err)
	}
	o := gatherOptions(opts...)

	// Stage 1: symmetry.
	var i, j int
	for i = 0; i < dim; i++ {
		for j = i + 1; j < dim; j++ {
			aij, aji := a[i*dim+j], a[j*dim+i]
			if math.Abs(aij-aji) > o.tolr*math.Max(math.Abs(aij), math.Abs(aji))+o.tola {
				return nil, nil, opsErrorf(opSymmetricEigen,
					fmt.Errorf("(%d,%d) %g != %g: %w", i, j, aij, aji, matrix.ErrNotSymmetric))
			}
		}
	}

	// Stage 2: Dsyev overwrites the copy with the eigenvectors.
	vectors = make([]float64, len(a))
	copy(vectors, a)
	sym := blas64.Symmetric{Uplo: blas.Upper, N: dim, Stride: dim, Data: vectors}
	values = make([]float64, dim)
	query := make([]float64, 1)
	lapack64.Syev(lapack.EVCompute, sym, values, query, -1)
	work := make([]float64, int(query[0]))
	if ok := lapack64.Syev(lapack.EVCompute, sym, values, work, len(work)); !ok {
		return nil, nil, opsErrorf(opSymmetricEigen, fmt.Errorf("Dsyev: %w", matrix.ErrNotConverged))
	}

	return values, vectors, nil
}
