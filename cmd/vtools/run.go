// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/katalvlaran/vectortools/matrix/ops"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errBadFlag = errors.New("invalid flag value")

// session bundles what every subcommand needs: the decoded input, its matrix,
// the logger and the solver options derived from persistent flags.
type session struct {
	doc    *matrixFile
	m      *matrix.Dense
	log    *zap.Logger
	opts   []ops.Option
	stdout io.Writer
}

// newSession validates flags, builds the logger and loads the input matrix.
func newSession(cmd *cobra.Command) (*session, error) {
	if !validTolerance(tolr) || !validTolerance(tola) {
		return nil, fmt.Errorf("--tolr/--tola must be finite and >= 0: %w", errBadFlag)
	}
	if maxIter < 0 || maxLS < 0 {
		return nil, fmt.Errorf("--max-iter/--max-ls must be >= 0: %w", errBadFlag)
	}
	log, err := newLogger(LogLevel(logLevel))
	if err != nil {
		return nil, err
	}
	doc, err := readInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	m, err := doc.Dense()
	if err != nil {
		return nil, err
	}
	log.Debug("input loaded", zap.String("file", inputPath), zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return &session{
		doc: doc,
		m:   m,
		log: log,
		opts: []ops.Option{
			ops.WithTolerances(tolr, tola),
			ops.WithMaxIterations(maxIter),
			ops.WithMaxLineSearch(maxLS),
			ops.WithLogger(log),
		},
		stdout: cmd.OutOrStdout(),
	}, nil
}

func validTolerance(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0) && t >= 0
}

// printBuffer writes a titled row-major buffer as bracketed rows.
func (s *session) printBuffer(title string, rows, cols int, buf []float64) error {
	d, err := matrix.NewDenseFrom(rows, cols, buf, matrix.WithNoValidateNaNInf())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.stdout, "%s:\n%s", title, d)

	return err
}

// printVector writes a titled vector on one line.
func (s *session) printVector(title string, v []float64) error {
	if _, err := fmt.Fprintf(s.stdout, "%s: ", title); err != nil {
		return err
	}

	return matrix.Fprint(s.stdout, v)
}

// close flushes the logger; sync errors on terminals are ignored.
func (s *session) close() {
	_ = s.log.Sync()
}
