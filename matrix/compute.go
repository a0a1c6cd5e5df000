// SPDX-License-Identifier: MIT

// Package matrix - products and reductions over flat and nested operands.

package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	opDot         = "Dot"
	opCross       = "Cross"
	opMatVec      = "MatVec"
	opTMatVec     = "TMatVec"
	opInnerNested = "InnerNested"
	opMean        = "Mean"
	opTrace       = "Trace"
	opMedian      = "Median"
)

// Cross-product input sizes.
const (
	crossPlanar  = 2
	crossSpatial = 3
)

// Dot returns Σ a_i b_i.
// Errors: ErrDimensionMismatch when len(a) != len(b).
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return floats.Dot(a, b), nil
}

// Inner is the Frobenius inner product of two row-major buffers; for vectors it equals Dot.
func Inner(a, b []float64) (float64, error) {
	return Dot(a, b)
}

// InnerNested returns Σ A_ij B_ij for nested matrices of identical shape.
// Errors: ErrBadShape, ErrIrregular, ErrDimensionMismatch.
func InnerNested(A, B [][]float64) (float64, error) {
	if len(A) != len(B) {
		return 0, matrixErrorf(opInnerNested, ErrDimensionMismatch)
	}
	a, err := Flatten(A)
	if err != nil {
		return 0, matrixErrorf(opInnerNested, err)
	}
	b, err := Flatten(B)
	if err != nil {
		return 0, matrixErrorf(opInnerNested, err)
	}
	if len(A[0]) != len(B[0]) {
		return 0, matrixErrorf(opInnerNested, ErrDimensionMismatch)
	}

	return floats.Dot(a, b), nil
}

// Cross returns a × b.
//
// Behavior highlights:
//   - 3-vectors: the usual cross product.
//   - 2-vectors: treated as lying in the xy-plane; the result is the 3-vector (0, 0, a0*b1 - a1*b0).
//
// Errors:
//   - ErrDimensionMismatch for any other length or when lengths differ.
func Cross(a, b []float64) ([]float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	c := make([]float64, crossSpatial)
	switch len(a) {
	case crossPlanar:
		c[2] = a[0]*b[1] - a[1]*b[0]
	case crossSpatial:
		c[0] = a[1]*b[2] - a[2]*b[1]
		c[1] = -a[0]*b[2] + a[2]*b[0]
		c[2] = a[0]*b[1] - a[1]*b[0]
	default:
		return nil, matrixErrorf(opCross, fmt.Errorf("length %d (want 2 or 3): %w", len(a), ErrDimensionMismatch))
	}

	return c, nil
}

// MatVec returns c with c_i = A_ij b_j.
// Errors: ErrDimensionMismatch when a row length differs from len(b).
// Complexity: O(r*c).
func MatVec(A [][]float64, b []float64) ([]float64, error) {
	c := make([]float64, len(A))
	var err error
	for i, row := range A {
		if c[i], err = Dot(row, b); err != nil {
			return nil, matrixErrorf(opMatVec, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return c, nil
}

// TMatVec returns c with c_i = A_ji b_j (i.e. Aᵀb).
// Errors: ErrBadShape, ErrIrregular, ErrDimensionMismatch (len(b) != rows).
func TMatVec(A [][]float64, b []float64) ([]float64, error) {
	cols, err := ValidateRegular(A)
	if err != nil {
		return nil, matrixErrorf(opTMatVec, err)
	}
	if err = ValidateVecLen(b, len(A)); err != nil {
		return nil, matrixErrorf(opTMatVec, err)
	}
	c := make([]float64, cols)
	for j, row := range A {
		floats.AddScaled(c, b[j], row) // c += b_j * A_j·
	}

	return c, nil
}

// Dyadic returns the outer product A_ij = a_i b_j.
// Complexity: O(len(a)*len(b)).
func Dyadic(a, b []float64) [][]float64 {
	out := make([][]float64, len(a))
	for i, ai := range a {
		out[i] = Scale(b, ai)
	}

	return out
}

// L2Norm returns the Euclidean norm of v.
func L2Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// L2NormNested returns the Frobenius norm of a (possibly ragged) nested matrix.
func L2NormNested(A [][]float64) float64 {
	var sum float64
	for _, row := range A {
		sum += floats.Dot(row, row)
	}

	return math.Sqrt(sum)
}

// Mean returns the column-wise mean of the row vectors in A.
// Errors: ErrBadShape (no rows), ErrIrregular.
func Mean(A [][]float64) ([]float64, error) {
	cols, err := ValidateRegular(A)
	if err != nil {
		return nil, matrixErrorf(opMean, err)
	}
	v := make([]float64, cols)
	for _, row := range A {
		floats.Add(v, row)
	}
	floats.Scale(1/float64(len(A)), v)

	return v, nil
}

// Trace returns Σ A_ii of a square row-major buffer.
// Errors: ErrNonSquare when len(A) is not a perfect square.
func Trace(A []float64) (float64, error) {
	dim, err := SquareDim(A)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var v float64
	for i := 0; i < dim; i++ {
		v += A[dim*i+i]
	}

	return v, nil
}

// TraceNested returns the trace of a nested square matrix.
func TraceNested(A [][]float64) (float64, error) {
	flat, err := Flatten(A)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	return Trace(flat)
}

// Median returns the median of x: the middle element for odd length, the mean
// of the two middle elements for even length. x is not modified.
// Errors: ErrBadShape on empty input.
// Complexity: O(n log n).
func Median(x []float64) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, matrixErrorf(opMedian, ErrBadShape)
	}
	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}

	return 0.5 * (sorted[n/2-1] + sorted[n/2]), nil
}

// Abs returns |x_i| element-wise.
func Abs(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Abs(v)
	}

	return out
}
