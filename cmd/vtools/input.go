// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/vectortools/matrix"
	"gopkg.in/yaml.v3"
)

var errNoMatrix = errors.New("input: neither data nor matrix given")

// matrixFile is the YAML input document.
type matrixFile struct {
	Rows   int         `yaml:"rows"`
	Cols   int         `yaml:"cols"`
	Data   []float64   `yaml:"data"`
	Matrix [][]float64 `yaml:"matrix"`
	RHS    []float64   `yaml:"rhs"`
}

// readInput decodes a matrixFile from path ("-" reads r instead).
func readInput(path string, r io.Reader) (*matrixFile, error) {
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("input: %w", err)
		}
		defer f.Close()
		r = f
	}
	var doc matrixFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("input: decode %s: %w", path, err)
	}

	return &doc, nil
}

// Dense converts the document into a matrix; the nested form wins when both are set.
func (d *matrixFile) Dense() (*matrix.Dense, error) {
	switch {
	case len(d.Matrix) > 0:
		return matrix.NewDenseFromNested(d.Matrix)
	case len(d.Data) > 0:
		return matrix.NewDenseFrom(d.Rows, d.Cols, d.Data)
	default:
		return nil, errNoMatrix
	}
}
