// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/vectortools/matrix"
)

// ExampleFlatten demonstrates the nested ↔ row-major round trip.
func ExampleFlatten() {
	flat, _ := matrix.Flatten([][]float64{{1, 2, 3}, {4, 5, 6}})
	fmt.Println(flat)

	back, _ := matrix.Inflate(flat, 3, 2)
	fmt.Println(back)
	// Output:
	// [1 2 3 4 5 6]
	// [[1 2] [3 4] [5 6]]
}

// ExampleCross shows the 3-D and planar cross products.
func ExampleCross() {
	c, _ := matrix.Cross([]float64{1, 0, 0}, []float64{0, 1, 0})
	fmt.Println(c)
	p, _ := matrix.Cross([]float64{2, 0}, []float64{0, 3})
	fmt.Println(p)
	// Output:
	// [0 0 1]
	// [0 0 6]
}

// ExampleFuzzyEquals compares values under default and custom tolerances.
func ExampleFuzzyEquals() {
	fmt.Println(matrix.FuzzyEquals(1, 1+1e-9))
	fmt.Println(matrix.FuzzyEquals(1, 1.01))
	fmt.Println(matrix.FuzzyEquals(1, 1.01, matrix.WithTolerances(0.05, 0)))
	// Output:
	// true
	// false
	// true
}

// ExampleFprintNested prints a matrix one row per line.
func ExampleFprintNested() {
	_ = matrix.FprintNested(os.Stdout, [][]float64{{1, 0}, {0, 1}})
	// Output:
	// 1 0
	// 0 1
}
