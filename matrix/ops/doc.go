// SPDX-License-Identifier: MIT

// Package ops implements the dense numerical kernels of vectortools on
// row-major float64 buffers.
//
// Layers (leaves first):
//
//   - Dense kernel: MatrixMultiply (independent transpose flags, gonum BLAS Dgemm),
//     Determinant (LAPACK Getrf), Inverse and SolveLinearSystem (rank-revealing
//     QR with column pivoting, LAPACK Dgeqp3/Dormqr/Dtrtrs), SVD (LAPACK Gesvd),
//     SymmetricEigen (LAPACK Dsyev).
//   - SqrtResidual: R = A − X·X together with the closed-form Jacobian ∂R/∂X.
//   - MatrixSqrt: damped Newton iteration with backtracking line search that
//     drives R to zero starting from X₀ = I, optionally returning dA/dX = −J.
//   - PolarDecomposition: A = R·U (right) or A = U·R (left) with U the square
//     root of AᵀA or AAᵀ.
//   - SqrtBatch: one MatrixSqrt per input on a bounded errgroup worker pool.
//
// Buffers are never aliased: every function copies what it needs and returns
// freshly allocated results. All operations are safe for concurrent use.
//
// Failures are matrix sentinels (matrix.ErrDimensionMismatch, matrix.ErrNonSquare,
// matrix.ErrNaNInf, matrix.ErrSingular, matrix.ErrRankDeficient, matrix.ErrLineSearch,
// matrix.ErrNotConverged) wrapped with the operation name; the Newton solver
// additionally reports *SolveError with the iteration count and residual norm.
//
// Tuning goes through functional options (WithTolerances, WithMaxIterations,
// WithMaxLineSearch, WithSufficientDecrease, WithRankThreshold, WithLogger,
// WithWorkers). The solver logs through an injected *zap.Logger and is silent
// by default.
package ops
