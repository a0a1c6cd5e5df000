// SPDX-License-Identifier: MIT

// Package ops - rank-revealing QR with column pivoting (A·P = Q·R).
//
// The factorization is LAPACK Dgeqp3 from gonum's native implementation: at
// step k the remaining column with the largest norm is swapped into position
// k, so the diagonal of R is non-increasing in magnitude and the numeric rank
// is the number of diagonal entries above threshold·max|R_ii|. Q stays in
// reflector form and is applied with Dormqr; R is inverted with Dtrtrs.

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vectortools/matrix"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack/gonum"
)

const (
	opFactorize = "Factorize"
	opQRSolve   = "QR.Solve"
)

// lapackImpl serves the routines lapack64 does not wrap (Dgeqp3, and Dormqr
// with k < cols).
var lapackImpl gonum.Implementation

// QR is a column-pivoted Householder factorization of a rows×cols matrix.
// It is immutable after Factorize and safe for concurrent Solve calls.
type QR struct {
	rows, cols int
	qr         []float64 // rows×cols: R in the upper trapezoid, reflectors below
	tau        []float64 // reflector scales, len min(rows, cols)
	perm       []int     // column k of A·P is column perm[k] of A
	rank       int
	threshold  float64
}

// Factorize computes A·P = Q·R of a row-major buffer.
//
// Implementation:
//   - Stage 1: ValidateBuffer and ValidateFinite, copy A.
//   - Stage 2: Dgeqp3 with every column free (workspace query, then the call).
//   - Stage 3: rank = #{k : |R_kk| > t·max|R_ii|}, t = ε·min(rows, cols) unless
//     overridden with WithRankThreshold.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(rows·cols·min(rows, cols)), Space O(rows·cols).
func Factorize(a []float64, rows, cols int, opts ...Option) (*QR, error) {
	if err := matrix.ValidateBuffer(a, rows, cols); err != nil {
		return nil, opsErrorf(opFactorize, err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, opsErrorf(opFactorize, err)
	}
	o := gatherOptions(opts...)

	steps := min(rows, cols)
	f := &QR{
		rows:      rows,
		cols:      cols,
		qr:        make([]float64, len(a)),
		tau:       make([]float64, steps),
		perm:      make([]int, cols),
		threshold: o.rankThreshold,
	}
	if f.threshold == 0 {
		f.threshold = epsilon * float64(steps)
	}
	copy(f.qr, a)
	for j := range f.perm {
		f.perm[j] = -1 // free column
	}

	// Stage 2: workspace query, then the factorization.
	query := make([]float64, 1)
	lapackImpl.Dgeqp3(rows, cols, f.qr, cols, f.perm, f.tau, query, -1)
	work := make([]float64, int(query[0]))
	lapackImpl.Dgeqp3(rows, cols, f.qr, cols, f.perm, f.tau, work, len(work))

	// Stage 3: numeric rank.
	var k int
	maxPivot := 0.0
	for k = 0; k < steps; k++ {
		maxPivot = math.Max(maxPivot, math.Abs(f.qr[k*cols+k]))
	}
	for k = 0; k < steps; k++ {
		if math.Abs(f.qr[k*cols+k]) > f.threshold*maxPivot {
			f.rank++
		}
	}

	return f, nil
}

// Rank returns the numeric rank detected during factorization.
func (f *QR) Rank() int { return f.rank }

// Perm returns a copy of the column permutation P (column k of A·P is column Perm()[k] of A).
func (f *QR) Perm() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// R returns the rows×cols upper-trapezoidal factor.
func (f *QR) R() *matrix.Dense {
	r := make([]float64, len(f.qr))
	var i, j int
	for i = 0; i < f.rows; i++ {
		for j = i; j < f.cols; j++ {
			r[i*f.cols+j] = f.qr[i*f.cols+j]
		}
	}
	d, _ := matrix.NewDenseFrom(f.rows, f.cols, r, matrix.WithNoValidateNaNInf())

	return d
}

// Q returns the rows×rows orthogonal factor H_0·H_1·…·H_{s-1}.
// Complexity: O(rows²·min(rows, cols)).
func (f *QR) Q() *matrix.Dense {
	q, _ := matrix.Eye(f.rows)
	f.applyQ(blas.NoTrans, q, f.rows)
	d, _ := matrix.NewDenseFrom(f.rows, f.rows, q)

	return d
}

// applyQ overwrites the row-major rows×nrhs buffer c with op(Q)·c.
func (f *QR) applyQ(trans blas.Transpose, c []float64, nrhs int) {
	k := len(f.tau)
	query := make([]float64, 1)
	lapackImpl.Dormqr(blas.Left, trans, f.rows, nrhs, k, f.qr, f.cols, f.tau, c, nrhs, query, -1)
	work := make([]float64, int(query[0]))
	lapackImpl.Dormqr(blas.Left, trans, f.rows, nrhs, k, f.qr, f.cols, f.tau, c, nrhs, work, len(work))
}

// solve returns the cols×nrhs basic solution of A·X = B for a row-major rows×nrhs B.
// Unknowns outside the first Rank() pivoted columns are zero.
func (f *QR) solve(b []float64, nrhs int) ([]float64, error) {
	c := make([]float64, len(b))
	copy(c, b)
	f.applyQ(blas.Trans, c, nrhs)
	if f.rank > 0 && !lapackImpl.Dtrtrs(blas.Upper, blas.NoTrans, blas.NonUnit, f.rank, nrhs, f.qr, f.cols, c, nrhs) {
		return nil, fmt.Errorf("Dtrtrs: %w", matrix.ErrSingular)
	}

	x := make([]float64, f.cols*nrhs)
	for k := 0; k < f.rank; k++ {
		copy(x[f.perm[k]*nrhs:(f.perm[k]+1)*nrhs], c[k*nrhs:(k+1)*nrhs])
	}

	return x, nil
}

// Solve returns the basic solution x of min ‖A·x − b‖ using the first Rank()
// pivoted columns; the remaining unknowns are zero. For a square full-rank A
// this is the exact solution of A·x = b.
//
// Implementation:
//   - Stage 1: c = Qᵀb (Dormqr).
//   - Stage 2: R[:rank,:rank]·z = c[:rank] (Dtrtrs).
//   - Stage 3: scatter x[perm[k]] = z[k].
//
// Errors:
//   - ErrDimensionMismatch when len(b) != rows.
//
// Complexity: O(rows·min(rows, cols) + rank²).
func (f *QR) Solve(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.rows); err != nil {
		return nil, opsErrorf(opQRSolve, err)
	}
	x, err := f.solve(b, 1)
	if err != nil {
		return nil, opsErrorf(opQRSolve, err)
	}

	return x, nil
}

// epsilon is the float64 machine epsilon (2⁻⁵²).
var epsilon = math.Nextafter(1, 2) - 1

// String summarizes the factorization for diagnostics.
func (f *QR) String() string {
	return fmt.Sprintf("QR(%dx%d, rank %d, threshold %g)", f.rows, f.cols, f.rank, f.threshold)
}
