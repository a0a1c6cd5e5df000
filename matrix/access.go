// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const opValuesByIndex = "ValuesByIndex"

// ValuesByIndex gathers v[idx[0]], v[idx[1]], ... into a fresh slice.
// Errors: ErrOutOfRange when any index falls outside [0, len(v)).
func ValuesByIndex(v []float64, idx []int) ([]float64, error) {
	out := make([]float64, len(idx))
	for i, k := range idx {
		if k < 0 || k >= len(v) {
			return nil, matrixErrorf(opValuesByIndex, fmt.Errorf("index %d: %w", k, ErrOutOfRange))
		}
		out[i] = v[k]
	}

	return out, nil
}

// Argsort returns the permutation that sorts v ascending; v is not modified.
// The order among equal values is unspecified.
func Argsort(v []float64) []int {
	tmp := make([]float64, len(v))
	copy(tmp, v)
	idx := make([]int, len(v))
	floats.Argsort(tmp, idx)

	return idx
}
