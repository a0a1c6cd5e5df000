// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/stretchr/testify/require"
)

func TestDotInner(t *testing.T) {
	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	require.Equal(t, 12.0, d)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	in, err := matrix.InnerNested([][]float64{{1, 2}, {3, 4}}, [][]float64{{1, 1}, {2, 2}})
	require.NoError(t, err)
	require.Equal(t, 17.0, in)

	_, err = matrix.InnerNested([][]float64{{1, 2}}, [][]float64{{1}, {2}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.InnerNested([][]float64{{1, 2}, {3}}, [][]float64{{1, 2}, {3, 4}})
	require.ErrorIs(t, err, matrix.ErrIrregular)
}

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"xy=z", []float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0, 0, 1}},
		{"yz=x", []float64{0, 1, 0}, []float64{0, 0, 1}, []float64{1, 0, 0}},
		{"general", []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{-3, 6, -3}},
		{"planar", []float64{1, 2}, []float64{3, 4}, []float64{0, 0, -2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := matrix.Cross(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, c)
		})
	}

	_, err := matrix.Cross([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Cross([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVecTMatVec(t *testing.T) {
	A := [][]float64{{1, 2, 3}, {4, 5, 6}}

	c, err := matrix.MatVec(A, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, c)

	ct, err := matrix.TMatVec(A, []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{9, 12, 15}, ct)

	_, err = matrix.MatVec(A, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.TMatVec(A, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDyadic(t *testing.T) {
	require.Equal(t,
		[][]float64{{3, 4}, {6, 8}, {9, 12}},
		matrix.Dyadic([]float64{1, 2, 3}, []float64{3, 4}))
}

func TestNorms(t *testing.T) {
	require.Equal(t, 5.0, matrix.L2Norm([]float64{3, 4}))
	require.InDelta(t, math.Sqrt(30), matrix.L2NormNested([][]float64{{1, 2}, {3, 4}}), 1e-15)
}

func TestMean(t *testing.T) {
	m, err := matrix.Mean([][]float64{{1, 2}, {3, 6}, {5, 10}})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, m)

	_, err = matrix.Mean(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestTrace(t *testing.T) {
	tr, err := matrix.Trace([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	tn, err := matrix.TraceNested([][]float64{{3, 3, 5}, {3, 7, 7}, {5, 7, 11}})
	require.NoError(t, err)
	require.Equal(t, 21.0, tn)

	_, err = matrix.Trace([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestMedian(t *testing.T) {
	x := []float64{5, 1, 4, 2, 3}
	m, err := matrix.Median(x)
	require.NoError(t, err)
	require.Equal(t, 3.0, m)
	require.Equal(t, []float64{5, 1, 4, 2, 3}, x) // not sorted in place

	m, err = matrix.Median([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 2.5, m)

	m, err = matrix.Median([]float64{8, 9, 1, 2, 3, 7})
	require.NoError(t, err)
	require.Equal(t, 5.0, m)

	_, err = matrix.Median(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAbs(t *testing.T) {
	require.Equal(t, []float64{1, 0, 2.5}, matrix.Abs([]float64{-1, 0, 2.5}))
}
