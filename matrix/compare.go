// SPDX-License-Identifier: MIT

// Package matrix - exact and fuzzy comparison of scalars, vectors and nested matrices.
//
// Fuzzy contract:
//   - a ≈ b  ⇔  |a-b| < min(tolr·|a| + tola, tolr·|b| + tola).
//   - The relation is symmetric; with tola > 0 it also holds for a == b == 0.
//   - Containers of different sizes are never equal (no error is raised).

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FuzzyEquals reports whether a and b agree within the relative/absolute
// tolerances carried by opts (defaults DefaultFuzzyRelTol, DefaultFuzzyAbsTol).
//
// Example:
//
//	FuzzyEquals(1, 1+1e-9)                              // true
//	FuzzyEquals(1, 1.1, WithTolerances(1e-3, 1e-3))     // false
func FuzzyEquals(a, b float64, opts ...Option) bool {
	o := gatherOptions(opts...)

	return fuzzyEquals(a, b, o.tolr, o.tola)
}

func fuzzyEquals(a, b, tolr, tola float64) bool {
	tol := math.Min(tolr*math.Abs(a)+tola, tolr*math.Abs(b)+tola)

	return math.Abs(a-b) < tol
}

// FuzzyEqualsSlice compares two vectors element-wise with FuzzyEquals.
// Returns false when lengths differ.
func FuzzyEqualsSlice(a, b []float64, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := gatherOptions(opts...)
	for i := range a {
		if !fuzzyEquals(a[i], b[i], o.tolr, o.tola) {
			return false
		}
	}

	return true
}

// FuzzyEqualsNested compares two nested matrices row by row with FuzzyEqualsSlice.
// Returns false when row counts or any row lengths differ.
func FuzzyEqualsNested(A, B [][]float64, opts ...Option) bool {
	if len(A) != len(B) {
		return false
	}
	for i := range A {
		if !FuzzyEqualsSlice(A[i], B[i], opts...) {
			return false
		}
	}

	return true
}

// Equals is exact scalar equality (NaN != NaN).
func Equals(a, b float64) bool { return a == b }

// EqualsSlice reports exact element-wise equality; false when lengths differ.
func EqualsSlice(a, b []float64) bool {
	return len(a) == len(b) && floats.Equal(a, b)
}

// EqualsNested reports exact equality of nested matrices.
func EqualsNested(A, B [][]float64) bool {
	if len(A) != len(B) {
		return false
	}
	for i := range A {
		if !EqualsSlice(A[i], B[i]) {
			return false
		}
	}

	return true
}

// IsParallel reports whether v1 and v2 point along the same line, i.e. the absolute
// cosine of their angle fuzzy-equals 1. Zero vectors and length mismatches yield false.
func IsParallel(v1, v2 []float64, opts ...Option) bool {
	if len(v1) != len(v2) {
		return false
	}
	n1, n2 := L2Norm(v1), L2Norm(v2)
	if n1 == 0 || n2 == 0 {
		return false
	}
	d := math.Abs(floats.Dot(v1, v2)) / (n1 * n2)

	return FuzzyEquals(d, 1, opts...)
}
