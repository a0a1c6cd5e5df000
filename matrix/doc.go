// SPDX-License-Identifier: MIT

// Package matrix provides dense row-major matrices and the vector/matrix
// utilities shared by the numerical kernels in matrix/ops.
//
// The package provides:
//
//   - Lossless conversion between nested ([][]float64) and flat row-major
//     ([]float64) representations: Flatten, Inflate, AppendVectors, Eye.
//   - Dense, a concrete Matrix with safe accessors and an optional finite-value
//     policy (NaN/Inf rejected on ingestion and Set).
//   - Element-wise arithmetic as named functions (Add, Sub, Scale, Negate,
//     Divide, AddScalar) for flat vectors and nested matrices.
//   - Products and reductions: Dot, Cross, MatVec, TMatVec, Dyadic, Inner,
//     L2Norm, Mean, Trace, Median, Abs.
//   - Exact and fuzzy comparison (FuzzyEquals with |a-b| < min(tolr|a|+tola, tolr|b|+tola)),
//     IsParallel, ValuesByIndex, Argsort and plain-text printing.
//
// All functions allocate their results; inputs are never mutated unless the name
// says so (FillIdentity). Failures are reported with sentinel errors from
// errors.go, wrapped with the operation name, and are matched with errors.Is.
//
// Index convention: element (i, j) of an r×c matrix lives at offset i*c + j.
package matrix
