// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/stretchr/testify/require"
)

// TestWithTolerances_PanicsOnInvalid checks the constructor contract.
func TestWithTolerances_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithTolerances(-1, 0) })
	require.Panics(t, func() { matrix.WithTolerances(0, math.NaN()) })
	require.Panics(t, func() { matrix.WithTolerances(math.Inf(1), 0) })
	require.NotPanics(t, func() { matrix.WithTolerances(0, 0) })
}

// TestOptions_LastWins ensures later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	m, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	strict := matrix.WithTolerances(0, 0)
	loose := matrix.WithTolerances(1, 1)
	require.True(t, matrix.FuzzyEquals(1, 1.5, strict, loose))
	require.False(t, matrix.FuzzyEquals(1, 1.5, loose, strict))
}

// TestOptions_NilIgnored ensures nil options are skipped.
func TestOptions_NilIgnored(t *testing.T) {
	require.True(t, matrix.FuzzyEquals(1, 1, nil))
}
