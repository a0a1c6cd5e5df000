// SPDX-License-Identifier: MIT

// Package ops - matrix square root by damped Newton iteration.
//
// The square root is the root of the residual R(X) = A − X·X. Starting at
// X₀ = I, each Newton step solves J·ΔX = −R with J = ∂vec(R)/∂vec(X) and then
// backtracks: the step is halved until ‖R‖ ≤ (1 − c)·‖R_prev‖ or the
// line-search budget is spent. The solver stops when ‖R‖ ≤ tolr·‖R₀‖ + tola.
//
// Vectorization is row-major: vec(X)[dim*i+j] = X_ij.

package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vectortools/matrix"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	opSqrtResidual       = "SqrtResidual"
	opMatrixSqrt         = "MatrixSqrt"
	opMatrixSqrtJacobian = "MatrixSqrtJacobian"
	opSqrt               = "Sqrt"
)

// SqrtResidual evaluates R = A − X·X and its Jacobian with respect to X.
//
// J is dim²×dim², row-major, with
//
//	J[dim*i+j][dim*k+l] = −δ(i,k)·X[l][j] − X[i][k]·δ(j,l)
//
// which is the exact derivative of vec(A − X·X).
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (len(a) or len(x) != dim²).
//
// Complexity: O(dim³) for R, O(dim⁴) to fill J.
func SqrtResidual(a []float64, dim int, x []float64) (r, j []float64, err error) {
	if err = matrix.ValidateBuffer(a, dim, dim); err != nil {
		return nil, nil, opsErrorf(opSqrtResidual, err)
	}
	if err = matrix.ValidateBuffer(x, dim, dim); err != nil {
		return nil, nil, opsErrorf(opSqrtResidual, err)
	}
	xx, err := MatrixMultiply(x, x, dim, dim, dim, dim, false, false)
	if err != nil {
		return nil, nil, opsErrorf(opSqrtResidual, err)
	}
	r = floats.SubTo(make([]float64, len(a)), a, xx)

	n := dim * dim
	j = make([]float64, n*n)
	var i, jj, k, l, row int
	for i = 0; i < dim; i++ {
		for jj = 0; jj < dim; jj++ {
			row = (dim*i + jj) * n
			for l = 0; l < dim; l++ { // k == i
				j[row+dim*i+l] -= x[dim*l+jj]
			}
			for k = 0; k < dim; k++ { // l == jj
				j[row+dim*k+jj] -= x[dim*i+k]
			}
		}
	}

	return r, j, nil
}

// MatrixSqrt returns X with X·X ≈ A for a square row-major A.
//
// Implementation:
//   - Stage 1: A must be finite; X₀ = I; evaluate R₀, J₀; tol = tolr·‖R₀‖ + tola.
//   - Stage 2: until ‖R‖ ≤ tol or iter == maxIter: ΔX = −J⁻¹R via SolveLinearSystem,
//     rank < dim² is fatal; backtrack by halving up to maxLS times. A step is
//     accepted only when ‖R‖ ≤ (1 − c)·‖R_prev‖, so a NaN residual is rejected.
//   - Stage 3: only ‖R‖ ≤ tol is success; X is never returned unconverged.
//
// Errors (as *SolveError wrapping the sentinel):
//   - ErrRankDeficient, ErrLineSearch, ErrNotConverged; ErrNaNInf when ‖R₀‖ overflows.
//
// Input errors (ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf) are returned wrapped.
//
// Complexity: O(maxIter·(1+maxLS)·dim⁶) dominated by the dim²×dim² solve.
func MatrixSqrt(a []float64, dim int, opts ...Option) ([]float64, error) {
	x, _, err := newtonSqrt(opMatrixSqrt, a, dim, gatherOptions(opts...))

	return x, err
}

// MatrixSqrtJacobian is MatrixSqrt that also returns dAdX = −J evaluated at the
// converged X: the dim²×dim² map from a perturbation of vec(X) to the induced
// perturbation of vec(A). Callers wanting ∂X/∂A invert it themselves.
func MatrixSqrtJacobian(a []float64, dim int, opts ...Option) (x, dAdX []float64, err error) {
	x, j, err := newtonSqrt(opMatrixSqrtJacobian, a, dim, gatherOptions(opts...))
	if err != nil {
		return nil, nil, err
	}

	return x, floats.ScaleTo(j, -1, j), nil
}

// newtonSqrt runs the iteration and returns the converged X with J at X.
func newtonSqrt(op string, a []float64, dim int, o Options) (x, j []float64, err error) {
	if err = matrix.ValidateSquareBuffer(a, dim, dim); err != nil {
		return nil, nil, opsErrorf(op, err)
	}
	if err = matrix.ValidateFinite(a); err != nil {
		return nil, nil, opsErrorf(op, err)
	}
	log := o.logger.With(zap.String("op", op), zap.Int("dim", dim))
	n := dim * dim

	// Stage 1: initial iterate and tolerance.
	if x, err = matrix.Eye(dim); err != nil {
		return nil, nil, opsErrorf(op, err)
	}
	r, j, err := SqrtResidual(a, dim, x)
	if err != nil {
		return nil, nil, opsErrorf(op, err)
	}
	normR := floats.Norm(r, 2)
	tol := o.tolr*normR + o.tola
	if math.IsInf(tol, 0) {
		return nil, nil, &SolveError{Op: op, Iter: 0, Residual: normR,
			Err: fmt.Errorf("initial residual overflows: %w", matrix.ErrNaNInf)}
	}

	var (
		iter, nls int
		rank      int
		dx        []float64
		normPrev  float64
		lambda    float64
		accept    = 1 - o.decrease
	)
	// Stage 2: damped Newton.
	for !(normR <= tol) && iter < o.maxIter {
		if dx, rank, err = SolveLinearSystem(j, r, n, n, rankOption(o)); err != nil {
			return nil, nil, opsErrorf(op, err)
		}
		if rank < n {
			log.Warn("jacobian rank deficient",
				zap.Int("iter", iter), zap.Int("rank", rank), zap.Int("unknowns", n), zap.Float64("residual", normR))
			return nil, nil, &SolveError{Op: op, Iter: iter, Residual: normR,
				Err: fmt.Errorf("rank %d < %d: %w", rank, n, matrix.ErrRankDeficient)}
		}
		floats.Scale(-1, dx)

		// Full step, then backtracking: X ← X − λΔX, λ ← λ/2, X ← X + λΔX.
		floats.Add(x, dx)
		if r, j, err = SqrtResidual(a, dim, x); err != nil {
			return nil, nil, opsErrorf(op, err)
		}
		normPrev, normR = normR, floats.Norm(r, 2)
		lambda, nls = 1, 0
		for !(normR <= accept*normPrev) && nls < o.maxLS {
			floats.AddScaled(x, -lambda, dx)
			lambda *= 0.5
			floats.AddScaled(x, lambda, dx)
			if r, j, err = SqrtResidual(a, dim, x); err != nil {
				return nil, nil, opsErrorf(op, err)
			}
			normR = floats.Norm(r, 2)
			nls++
		}
		if !(normR <= accept*normPrev) {
			log.Warn("line search failed",
				zap.Int("iter", iter), zap.Int("lineSearch", nls), zap.Float64("residual", normR), zap.Float64("previous", normPrev))
			return nil, nil, &SolveError{Op: op, Iter: iter, Residual: normPrev,
				Err: fmt.Errorf("%d halvings: %w", nls, matrix.ErrLineSearch)}
		}
		iter++
		log.Debug("newton step",
			zap.Int("iter", iter), zap.Float64("residual", normR), zap.Float64("lambda", lambda), zap.Int("lineSearch", nls))
	}

	// Stage 3: termination policy.
	if !(normR <= tol) {
		return nil, nil, &SolveError{Op: op, Iter: iter, Residual: normR,
			Err: fmt.Errorf("tolerance %g: %w", tol, matrix.ErrNotConverged)}
	}
	log.Debug("converged", zap.Int("iter", iter), zap.Float64("residual", normR), zap.Float64("tol", tol))

	return x, j, nil
}

// rankOption forwards a configured rank threshold to the inner solve.
func rankOption(o Options) Option {
	if o.rankThreshold == 0 {
		return nil
	}

	return WithRankThreshold(o.rankThreshold)
}

// Sqrt is MatrixSqrt for any square matrix.Matrix.
// Errors: ErrNilMatrix, ErrNonSquare, plus the MatrixSqrt errors.
func Sqrt(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	a, err := matrix.RowMajorOf(m)
	if err != nil {
		return nil, opsErrorf(opSqrt, err)
	}
	if m.Rows() != m.Cols() {
		return nil, opsErrorf(opSqrt, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), matrix.ErrNonSquare))
	}
	x, err := MatrixSqrt(a, m.Rows(), opts...)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(m.Rows(), m.Cols(), x)
}
