// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/katalvlaran/vectortools/matrix/ops"
	"github.com/stretchr/testify/require"
)

func TestMatrixMultiply_Known(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}    // 2×3
	b := []float64{7, 8, 9, 10, 11, 12} // 3×2
	c := mustMul(t, a, b, 2, 3, 3, 2, false, false)
	require.Equal(t, []float64{58, 64, 139, 154}, c)
}

func TestMatrixMultiply_TransposeFlags(t *testing.T) {
	const m, k, n = 3, 4, 2
	a := randomBuffer(m*k, 1) // m×k
	b := randomBuffer(k*n, 2) // k×n
	want := naiveMul(a, b, m, k, n)
	at := transpose(a, m, k) // k×m
	bt := transpose(b, k, n) // n×k

	tests := []struct {
		name           string
		a, b           []float64
		ar, ac, br, bc int
		ta, tb         bool
	}{
		{"NN", a, b, m, k, k, n, false, false},
		{"TN", at, b, k, m, k, n, true, false},
		{"NT", a, bt, m, k, n, k, false, true},
		{"TT", at, bt, k, m, n, k, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mustMul(t, tc.a, tc.b, tc.ar, tc.ac, tc.br, tc.bc, tc.ta, tc.tb)
			require.InDeltaSlice(t, want, got, 1e-14)
		})
	}
}

func TestMatrixMultiply_Errors(t *testing.T) {
	a := make([]float64, 6)
	_, err := ops.MatrixMultiply(a, a, 2, 2, 2, 3, false, false) // len(a) != 4
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ops.MatrixMultiply(a, a, 2, 3, 2, 3, false, false) // inner 3 vs 2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ops.MatrixMultiply(a, a, 0, 3, 2, 3, false, false)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// AᵀA is valid for the same 2×3 operand.
	c := mustMul(t, a, a, 2, 3, 2, 3, true, false)
	require.Len(t, c, 9)
}

func TestNestedMultiply(t *testing.T) {
	A := [][]float64{{1, 2}, {3, 4}}
	B := [][]float64{{0, 1}, {1, 0}}

	got, err := ops.MatMul(A, B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1}, {4, 3}}, got)

	got, err = ops.MatMulT(A, [][]float64{{1, 1}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3}, {7}}, got)

	got, err = ops.TMatMul(A, A)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{10, 14}, {14, 20}}, got)

	got, err = ops.TMatMulT(A, B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 1}, {4, 2}}, got)

	_, err = ops.MatMul(A, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrIrregular)
	_, err = ops.MatMul(A, [][]float64{{1, 2, 3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
