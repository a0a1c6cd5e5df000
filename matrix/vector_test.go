// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3}, diff)

	require.Equal(t, []float64{1, 2, 3}, a) // inputs untouched

	_, err = matrix.Add(a, b[:2])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a[:1], b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScalarOps(t *testing.T) {
	v := []float64{2, -4}
	require.Equal(t, []float64{-2, 4}, matrix.Negate(v))
	require.Equal(t, []float64{3, -6}, matrix.Scale(v, 1.5))
	require.Equal(t, []float64{5, -1}, matrix.AddScalar(v, 3))
	require.Equal(t, []float64{1, -5}, matrix.SubScalar(v, 1))

	q, err := matrix.Divide(v, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2}, q)

	_, err = matrix.Divide(v, 0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)
}

func TestNestedOps(t *testing.T) {
	A := [][]float64{{1, 2}, {3, 4}}
	B := [][]float64{{10, 20}, {30, 40}}

	S, err := matrix.AddNested(A, B)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, S)

	D, err := matrix.SubNested(B, A)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 18}, {27, 36}}, D)

	require.Equal(t, [][]float64{{-1, -2}, {-3, -4}}, matrix.NegateNested(A))

	_, err = matrix.AddNested(A, B[:1])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SubNested(A, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
