// SPDX-License-Identifier: MIT

package ops

import "fmt"

// opsErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SolveError reports a fatal condition of the Newton solver together with the
// state it was detected in. Err is one of matrix.ErrRankDeficient,
// matrix.ErrLineSearch or matrix.ErrNotConverged (or a wrapped kernel error),
// so callers match it with errors.Is and inspect the context with errors.As.
type SolveError struct {
	Op       string  // public entry point, e.g. "MatrixSqrt"
	Iter     int     // accepted Newton steps before the failure
	Residual float64 // ‖R‖₂ at the last accepted iterate
	Err      error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%s: iteration %d, residual %g: %v", e.Op, e.Iter, e.Residual, e.Err)
}

func (e *SolveError) Unwrap() error { return e.Err }
