// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/stretchr/testify/require"
)

func TestFuzzyEquals(t *testing.T) {
	require.True(t, matrix.FuzzyEquals(1, 1+1e-9))
	require.True(t, matrix.FuzzyEquals(0, 0))
	require.True(t, matrix.FuzzyEquals(1e6, 1e6+0.5))
	require.False(t, matrix.FuzzyEquals(1, 1.001))
	require.False(t, matrix.FuzzyEquals(math.NaN(), math.NaN()))

	// Symmetric by construction.
	require.Equal(t, matrix.FuzzyEquals(2, 2.0000021), matrix.FuzzyEquals(2.0000021, 2))

	loose := matrix.WithTolerances(1e-2, 1e-2)
	require.True(t, matrix.FuzzyEquals(1, 1.001, loose))
	require.False(t, matrix.FuzzyEquals(0, 0, matrix.WithTolerances(0, 0)))
}

func TestFuzzyEqualsContainers(t *testing.T) {
	a := []float64{1, 2, 3}
	require.True(t, matrix.FuzzyEqualsSlice(a, []float64{1, 2, 3 + 1e-9}))
	require.False(t, matrix.FuzzyEqualsSlice(a, []float64{1, 2}))
	require.False(t, matrix.FuzzyEqualsSlice(a, []float64{1, 2, 4}))

	A := [][]float64{{1, 2}, {3, 4}}
	require.True(t, matrix.FuzzyEqualsNested(A, [][]float64{{1, 2 + 1e-9}, {3, 4}}))
	require.False(t, matrix.FuzzyEqualsNested(A, [][]float64{{1, 2}}))
	require.False(t, matrix.FuzzyEqualsNested(A, [][]float64{{1, 2}, {3}}))
}

func TestEquals(t *testing.T) {
	require.True(t, matrix.Equals(1, 1))
	require.False(t, matrix.Equals(math.NaN(), math.NaN()))
	require.True(t, matrix.EqualsSlice([]float64{1, 2}, []float64{1, 2}))
	require.False(t, matrix.EqualsSlice([]float64{1, 2}, []float64{1, 2, 3}))
	require.True(t, matrix.EqualsNested([][]float64{{1}, {2}}, [][]float64{{1}, {2}}))
	require.False(t, matrix.EqualsNested([][]float64{{1}, {2}}, [][]float64{{1}, {2.5}}))
}

func TestIsParallel(t *testing.T) {
	require.True(t, matrix.IsParallel([]float64{1, 2, 3}, []float64{2, 4, 6}))
	require.True(t, matrix.IsParallel([]float64{1, 2, 3}, []float64{-0.5, -1, -1.5}))
	require.False(t, matrix.IsParallel([]float64{1, 0}, []float64{0, 1}))
	require.False(t, matrix.IsParallel([]float64{0, 0}, []float64{1, 1}))
	require.False(t, matrix.IsParallel([]float64{1, 0}, []float64{1, 0, 0}))
}
