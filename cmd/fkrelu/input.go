// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/krelu/matrix"
	"github.com/katalvlaran/krelu/octahedron"
	"gopkg.in/yaml.v3"
)

// inputDoc is the on-disk input: box bounds or explicit rows, not both.
type inputDoc struct {
	Lower []float64   `yaml:"lower,omitempty"`
	Upper []float64   `yaml:"upper,omitempty"`
	Rows  [][]float64 `yaml:"rows,omitempty"`
}

// outputDoc is what relax prints.
type outputDoc struct {
	K        int         `yaml:"k"`
	Pipeline string      `yaml:"pipeline"`
	Rows     [][]float64 `yaml:"rows,flow"`
}

var errInput = errors.New("input must set either lower/upper or rows")

// readInput loads path ("-" for stdin) into an octahedron matrix.
func readInput(path string, stdin io.Reader) (*matrix.Dense, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var doc inputDoc
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	return doc.matrix()
}

func (d inputDoc) matrix() (*matrix.Dense, error) {
	box := len(d.Lower) > 0 || len(d.Upper) > 0
	switch {
	case box && len(d.Rows) > 0, !box && len(d.Rows) == 0:
		return nil, errInput
	case box:
		return octahedron.FromBox(d.Lower, d.Upper)
	default:
		return matrix.NewDenseFromRows(d.Rows)
	}
}

// writeOutput prints h as YAML.
func writeOutput(w io.Writer, k int, pipeline string, h matrix.Matrix) error {
	rows, err := matrix.ToRows(h)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(outputDoc{K: k, Pipeline: pipeline, Rows: rows}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return enc.Close()
}
