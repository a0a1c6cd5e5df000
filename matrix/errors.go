// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across matrix and
// matrix/ops. Algorithms return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No algorithm panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with fmt.Errorf("<Op>: %w", ErrX) at the nearest detection site;
// callers still match with errors.Is.
//
// TAXONOMY:
//   shape  -> ErrBadShape, ErrInvalidDimensions, ErrDimensionMismatch, ErrNonSquare, ErrIrregular, ErrNotSymmetric
//   rank   -> ErrRankDeficient, ErrSingular
//   solver -> ErrLineSearch, ErrNotConverged
//   values -> ErrNaNInf, ErrDivideByZero, ErrOutOfRange

var (
	// ErrBadShape is returned when an input has no usable shape (e.g., empty nested matrix).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or gather index) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands or
	// between a buffer and its declared rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrIrregular signals a nested matrix whose rows do not share one length.
	ErrIrregular = errors.New("matrix: rows have different lengths")

	// ErrNotSymmetric is returned by symmetric-only kernels when A_ij and A_ji differ
	// beyond the configured tolerance.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDivideByZero is returned by scalar division with a zero divisor.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// numeric rank is below its dimension.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrRankDeficient is returned when a linear solve reports a rank below the
	// number of unknowns where full rank is required (Newton step).
	ErrRankDeficient = errors.New("matrix: jacobian is rank deficient")

	// ErrLineSearch is returned when no damped step reaches sufficient decrease
	// within the configured number of halvings.
	ErrLineSearch = errors.New("matrix: line search failed")

	// ErrNotConverged is returned when an iterative solver exhausts its
	// iteration budget without meeting the tolerance.
	ErrNotConverged = errors.New("matrix: iteration did not converge")
)
