// SPDX-License-Identifier: MIT

// Package matrix - row-major buffer utilities.
//
// Purpose:
//   - Convert losslessly between nested ([][]float64) and flat row-major ([]float64) matrices.
//   - Build identity matrices in either representation.
//
// Contract:
//   - A nested matrix is "regular": every row has the same length. Irregular input is an
//     error (ErrIrregular), never silently truncated.
//   - Flatten(Inflate(v, r, c)) == v bit-for-bit.

package matrix

import (
	"fmt"
	"math"
)

const (
	opFlatten      = "Flatten"
	opInflate      = "Inflate"
	opEye          = "Eye"
	opFillIdentity = "FillIdentity"
)

// Flatten concatenates the rows of a regular nested matrix into a row-major buffer.
//
// Implementation:
//   - Stage 1: ValidateRegular(A) to obtain the common column count.
//   - Stage 2: copy each row at offset i*cols.
//
// Errors:
//   - ErrBadShape (empty), ErrIrregular (ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Flatten(A [][]float64) ([]float64, error) {
	cols, err := ValidateRegular(A)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFlatten, err)
	}
	out := make([]float64, len(A)*cols)
	for i, row := range A {
		copy(out[i*cols:(i+1)*cols], row)
	}

	return out, nil
}

// AppendVectors concatenates vectors end to end without any shape checks.
// Use Flatten when the input is meant to be a matrix.
func AppendVectors(vs ...[]float64) []float64 {
	n := 0
	for _, v := range vs {
		n += len(v)
	}
	out := make([]float64, 0, n)
	for _, v := range vs {
		out = append(out, v...)
	}

	return out
}

// Inflate reshapes a row-major buffer into rows slices of length cols.
// Every row is a fresh slice; the input is not aliased.
//
// Errors:
//   - ErrInvalidDimensions (rows/cols ≤ 0), ErrDimensionMismatch (len(vec) != rows*cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Inflate(vec []float64, rows, cols int) ([][]float64, error) {
	if err := ValidateBuffer(vec, rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", opInflate, err)
	}
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		copy(row, vec[i*cols:(i+1)*cols])
		out[i] = row
	}

	return out, nil
}

// Eye returns the dim×dim identity as a row-major buffer.
// Errors: ErrInvalidDimensions when dim <= 0.
func Eye(dim int) ([]float64, error) {
	if err := ValidateDims(dim, dim); err != nil {
		return nil, fmt.Errorf("%s: %w", opEye, err)
	}
	out := make([]float64, dim*dim)
	for i := 0; i < dim; i++ {
		out[dim*i+i] = 1
	}

	return out, nil
}

// EyeNested returns the dim×dim identity as a nested matrix.
func EyeNested(dim int) ([][]float64, error) {
	flat, err := Eye(dim)
	if err != nil {
		return nil, err
	}

	return Inflate(flat, dim, dim)
}

// FillIdentity overwrites buf with the identity of dimension sqrt(len(buf)).
// The length must be a perfect square, otherwise ErrNonSquare and buf is untouched.
func FillIdentity(buf []float64) error {
	dim, err := SquareDim(buf)
	if err != nil {
		return fmt.Errorf("%s: %w", opFillIdentity, err)
	}
	for i := range buf {
		buf[i] = 0
	}
	for i := 0; i < dim; i++ {
		buf[dim*i+i] = 1
	}

	return nil
}

// SquareDim returns n when len(buf) == n*n, else ErrNonSquare.
func SquareDim(buf []float64) (int, error) {
	dim := int(math.Round(math.Sqrt(float64(len(buf)))))
	if dim == 0 || dim*dim != len(buf) {
		return 0, fmt.Errorf("SquareDim: length %d: %w", len(buf), ErrNonSquare)
	}

	return dim, nil
}
