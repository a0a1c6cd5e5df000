// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/vectortools/matrix/ops"
	"github.com/spf13/cobra"
)

var sqrtJacobian bool

// sqrtCmd implements 'vtools sqrt'
var sqrtCmd = &cobra.Command{
	Use:   "sqrt",
	Short: "Matrix square root by damped Newton iteration",
	Long: `Compute X with X·X = A starting from the identity.

Examples:
  vtools sqrt -f spd.yaml
  vtools sqrt -f spd.yaml --jacobian --max-iter 50
  vtools sqrt -f spd.yaml --log-level debug`,
	RunE: runSqrt,
}

var polarLeft bool

// polarCmd implements 'vtools polar'
var polarCmd = &cobra.Command{
	Use:   "polar",
	Short: "Polar decomposition A = R·U (or U·R with --left)",
	RunE:  runPolar,
}

func init() {
	rootCmd.AddCommand(sqrtCmd, polarCmd)
	sqrtCmd.Flags().BoolVar(&sqrtJacobian, "jacobian", false, "Also print dA/dX at the root")
	polarCmd.Flags().BoolVar(&polarLeft, "left", false, "Left decomposition A = U·R")
}

func runSqrt(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	dim := s.m.Rows()
	if !sqrtJacobian {
		x, err := ops.Sqrt(s.m, s.opts...)
		if err != nil {
			return err
		}
		return s.printBuffer("X", dim, dim, x.RowMajor())
	}
	x, dAdX, err := ops.MatrixSqrtJacobian(s.m.RowMajor(), dim, s.opts...)
	if err != nil {
		return err
	}
	if err = s.printBuffer("X", dim, dim, x); err != nil {
		return err
	}

	return s.printBuffer("dAdX", dim*dim, dim*dim, dAdX)
}

func runPolar(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	r, u, err := ops.Polar(s.m, polarLeft, s.opts...)
	if err != nil {
		return err
	}
	if err = s.printBuffer("R", r.Rows(), r.Cols(), r.RowMajor()); err != nil {
		return err
	}

	return s.printBuffer("U", u.Rows(), u.Cols(), u.RowMajor())
}
