// SPDX-License-Identifier: MIT
// Package ops_test contains shared fixtures for the kernel tests.

package ops_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/katalvlaran/vectortools/matrix/ops"
	"github.com/stretchr/testify/require"
)

// spd3 is the well-conditioned symmetric positive definite reference matrix.
var spd3 = []float64{3, 3, 5, 3, 7, 7, 5, 7, 11}

// naiveMul RETURNS A·B by the triple loop; used as an oracle for Dgemm.
func naiveMul(a, b []float64, m, k, n int) []float64 {
	c := make([]float64, m*n)
	var i, j, p int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			for p = 0; p < k; p++ {
				c[i*n+j] += a[i*k+p] * b[p*n+j]
			}
		}
	}

	return c
}

// transpose RETURNS Aᵀ of an r×c row-major buffer.
func transpose(a []float64, r, c int) []float64 {
	out := make([]float64, len(a))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out[j*r+i] = a[i*c+j]
		}
	}

	return out
}

// randomBuffer RETURNS n deterministic values in [-1, 1).
func randomBuffer(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

// wellConditioned RETURNS a random n×n matrix with a dominant diagonal.
func wellConditioned(n int, seed int64) []float64 {
	a := randomBuffer(n*n, seed)
	for i := 0; i < n; i++ {
		a[i*n+i] += float64(n) + 1
	}

	return a
}

// rotation RETURNS the 2×2 rotation by theta.
func rotation(theta float64) []float64 {
	s, c := math.Sincos(theta)

	return []float64{c, -s, s, c}
}

// mustMul MULTIPLIES op(A)·op(B) or fails the test.
func mustMul(t *testing.T, a, b []float64, ar, ac, br, bc int, ta, tb bool) []float64 {
	t.Helper()
	c, err := ops.MatrixMultiply(a, b, ar, ac, br, bc, ta, tb)
	require.NoError(t, err)

	return c
}

// requireIdentity ASSERTS that a is the n×n identity within delta.
func requireIdentity(t *testing.T, a []float64, n int, delta float64) {
	t.Helper()
	I, err := matrix.Eye(n)
	require.NoError(t, err)
	require.InDeltaSlice(t, I, a, delta)
}

// requireFuzzy ASSERTS element-wise fuzzy equality under (tolr, tola).
func requireFuzzy(t *testing.T, want, got []float64, tolr, tola float64) {
	t.Helper()
	require.Truef(t, matrix.FuzzyEqualsSlice(want, got, matrix.WithTolerances(tolr, tola)),
		"want %v\n got %v", want, got)
}
