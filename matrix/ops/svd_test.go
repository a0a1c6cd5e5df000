// SPDX-License-Identifier: MIT
package ops_test

import (
	"testing"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/katalvlaran/vectortools/matrix/ops"
	"github.com/stretchr/testify/require"
)

func TestSVD_Properties(t *testing.T) {
	shapes := []struct{ r, c int }{{3, 2}, {2, 3}, {4, 4}, {1, 3}}
	for i, s := range shapes {
		a := randomBuffer(s.r*s.c, int64(40+i))
		u, sigma, v, err := ops.SVD(a, s.r, s.c)
		require.NoError(t, err)
		require.Len(t, u, s.r*s.r)
		require.Len(t, v, s.c*s.c)
		require.Len(t, sigma, min(s.r, s.c))

		for k := range sigma {
			require.GreaterOrEqual(t, sigma[k], 0.0)
			if k > 0 {
				require.LessOrEqual(t, sigma[k], sigma[k-1])
			}
		}

		requireIdentity(t, mustMul(t, u, u, s.r, s.r, s.r, s.r, true, false), s.r, 1e-12)
		requireIdentity(t, mustMul(t, u, u, s.r, s.r, s.r, s.r, false, true), s.r, 1e-12)
		requireIdentity(t, mustMul(t, v, v, s.c, s.c, s.c, s.c, true, false), s.c, 1e-12)
		requireIdentity(t, mustMul(t, v, v, s.c, s.c, s.c, s.c, false, true), s.c, 1e-12)

		// U·Σ·Vᵀ with Σ rows×cols.
		S := make([]float64, s.r*s.c)
		for k, x := range sigma {
			S[k*s.c+k] = x
		}
		us := mustMul(t, u, S, s.r, s.r, s.r, s.c, false, false)
		require.InDeltaSlice(t, a, mustMul(t, us, v, s.r, s.c, s.c, s.c, false, true), 1e-12)
	}
}

func TestSVD_Known(t *testing.T) {
	_, sigma, _, err := ops.SVD([]float64{3, 0, 0, -2}, 2, 2)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 2}, sigma, 1e-14)

	_, _, _, err = ops.SVD([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
