// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"strconv"
)

// Fprint writes v as space-separated values followed by a newline.
// Values use the shortest 'g' representation that round-trips.
func Fprint(w io.Writer, v []float64) error {
	bw := bufio.NewWriter(w)
	writeRow(bw, v)

	return bw.Flush()
}

// FprintNested writes one Fprint line per row of A.
func FprintNested(w io.Writer, A [][]float64) error {
	bw := bufio.NewWriter(w)
	for _, row := range A {
		writeRow(bw, row)
	}

	return bw.Flush()
}

// writeRow buffers the row; errors surface on Flush.
func writeRow(bw *bufio.Writer, v []float64) {
	for i, x := range v {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	bw.WriteByte('\n')
}
