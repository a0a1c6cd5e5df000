// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/vectortools/matrix"
	"github.com/stretchr/testify/require"
)

func TestValuesByIndex(t *testing.T) {
	v := []float64{10, 20, 30, 40}
	sub, err := matrix.ValuesByIndex(v, []int{3, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{40, 10, 10}, sub)

	_, err = matrix.ValuesByIndex(v, []int{4})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.ValuesByIndex(v, []int{-1})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestArgsort(t *testing.T) {
	v := []float64{3, -1, 2, 10}
	require.Equal(t, []int{1, 2, 0, 3}, matrix.Argsort(v))
	require.Equal(t, []float64{3, -1, 2, 10}, v)
	require.Empty(t, matrix.Argsort(nil))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, []float64{1, 2.5, -3}))
	require.Equal(t, "1 2.5 -3\n", buf.String())

	buf.Reset()
	require.NoError(t, matrix.FprintNested(&buf, [][]float64{{1, 2}, {3, 4}}))
	require.Equal(t, "1 2\n3 4\n", buf.String())
}
