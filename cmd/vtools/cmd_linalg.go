// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vectortools/matrix/ops"
	"github.com/spf13/cobra"
)

var errNoRHS = errors.New("input: solve needs rhs")

var solveLeastSquares bool

var svdCmd = &cobra.Command{
	Use:   "svd",
	Short: "Full singular value decomposition A = U·diag(σ)·Vᵀ",
	RunE:  runSVD,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve A·x = rhs and report the numeric rank",
	Long: `Solve the square system A·x = rhs with a rank-revealing QR.
With --lstsq any shape is accepted and rhs must have one entry per row.`,
	RunE: runSolve,
}

var detCmd = &cobra.Command{
	Use:   "det",
	Short: "Determinant of a square matrix",
	RunE:  runDet,
}

var eigCmd = &cobra.Command{
	Use:   "eig",
	Short: "Eigenvalues and eigenvectors of a symmetric matrix",
	RunE:  runEig,
}

var invCmd = &cobra.Command{
	Use:   "inv",
	Short: "Inverse of a square matrix",
	RunE:  runInv,
}

func init() {
	rootCmd.AddCommand(svdCmd, solveCmd, detCmd, eigCmd, invCmd)
	solveCmd.Flags().BoolVar(&solveLeastSquares, "lstsq", false, "Least-squares solve for rectangular systems")
}

func runSVD(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	rows, cols := s.m.Shape()
	u, sigma, v, err := ops.SVD(s.m.RowMajor(), rows, cols)
	if err != nil {
		return err
	}
	if err = s.printBuffer("U", rows, rows, u); err != nil {
		return err
	}
	if err = s.printVector("sigma", sigma); err != nil {
		return err
	}

	return s.printBuffer("V", cols, cols, v)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	if len(s.doc.RHS) == 0 {
		return errNoRHS
	}
	rows, cols := s.m.Shape()
	var (
		x    []float64
		rank int
	)
	if solveLeastSquares {
		x, rank, err = ops.LeastSquares(s.m.RowMajor(), s.doc.RHS, rows, cols, s.opts...)
	} else {
		x, rank, err = ops.SolveLinearSystem(s.m.RowMajor(), s.doc.RHS, rows, cols, s.opts...)
	}
	if err != nil {
		return err
	}
	if err = s.printVector("x", x); err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.stdout, "rank: %d\n", rank)

	return err
}

func runDet(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	rows, cols := s.m.Shape()
	d, err := ops.Determinant(s.m.RowMajor(), rows, cols)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.stdout, "det: %g\n", d)

	return err
}

func runInv(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	inv, err := ops.InverseDense(s.m, s.opts...)
	if err != nil {
		return err
	}

	return s.printBuffer("inverse", inv.Rows(), inv.Cols(), inv.RowMajor())
}

func runEig(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	dim := s.m.Rows()
	values, vectors, err := ops.SymmetricEigen(s.m.RowMajor(), dim, s.opts...)
	if err != nil {
		return err
	}
	if err = s.printVector("values", values); err != nil {
		return err
	}

	return s.printBuffer("vectors", dim, dim, vectors)
}
