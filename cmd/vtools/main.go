// SPDX-License-Identifier: MIT

// Command vtools runs the vectortools kernels on matrices read from YAML files.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/vectortools/matrix/ops"
	"github.com/spf13/cobra"
)

// Persistent flags shared by every subcommand.
var (
	inputPath string
	logLevel  string
	tolr      float64
	tola      float64
	maxIter   int
	maxLS     int
)

// rootCmd is the base command for the vtools CLI
var rootCmd = &cobra.Command{
	Use:   "vtools",
	Short: "Dense linear algebra and matrix square roots from the command line",
	Long: `vtools reads a matrix from a YAML file (or stdin with --file -) and runs one
of the dense kernels on it: square root, polar decomposition, SVD, linear solve,
determinant, symmetric eigen decomposition or inverse.

Input format:
  rows: 2
  cols: 2
  data: [4, 0, 0, 9]
  rhs:  [1, 2]          # solve only

or, equivalently, a nested matrix:
  matrix:
    - [4, 0]
    - [0, 9]`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&inputPath, "file", "f", "-", "YAML input file, - for stdin")
	pf.StringVar(&logLevel, "log-level", string(LogLevelError), "Log level: debug, info, warn, error")
	pf.Float64Var(&tolr, "tolr", ops.DefaultRelTol, "Relative tolerance of the Newton solver")
	pf.Float64Var(&tola, "tola", ops.DefaultAbsTol, "Absolute tolerance of the Newton solver")
	pf.IntVar(&maxIter, "max-iter", ops.DefaultMaxIterations, "Maximum Newton iterations")
	pf.IntVar(&maxLS, "max-ls", ops.DefaultMaxLineSearch, "Maximum line-search halvings per Newton step")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
