// SPDX-License-Identifier: MIT

package dd

import (
	"github.com/katalvlaran/krelu/incidence"
	"github.com/katalvlaran/krelu/rational"
)

// Representation tells Convert how to read the rows of a Matrix.
type Representation int

const (
	// Inequality rows are half-spaces c·(1,x) ≥ 0.
	Inequality Representation = iota
	// Generator rows are vertices (1, x).
	Generator
)

// Matrix is an exact row set with a declared representation.
type Matrix struct {
	Representation Representation
	Rows           []rational.Vec
	cols           int
}

// NewMatrix allocates a zero rows×cols matrix.
// Errors: *ConversionError{ImproperInputFormat} for negative sizes or cols < 2.
func NewMatrix(rows, cols int, rep Representation) (*Matrix, error) {
	if rows < 0 || cols < 2 {
		return nil, fail("NewMatrix", ImproperInputFormat)
	}
	m := &Matrix{Representation: rep, Rows: make([]rational.Vec, rows), cols: cols}
	for i := range m.Rows {
		m.Rows[i] = rational.NewVec(cols)
	}

	return m, nil
}

// RowSize returns the number of rows.
func (m *Matrix) RowSize() int { return len(m.Rows) }

// ColSize returns the homogeneous column count (dimension + 1).
func (m *Matrix) ColSize() int { return m.cols }

// Polyhedron is the result of a conversion: both representations plus the
// inequality→generator incidence.
type Polyhedron struct {
	cols         int
	inequalities []rational.Vec
	generators   []rational.Vec
	incidence    []incidence.Set
}

// Dimension returns the ambient dimension (columns − 1).
func (p *Polyhedron) Dimension() int { return p.cols - 1 }

// Inequalities returns a fresh copy of the H-representation.
func (p *Polyhedron) Inequalities() *Matrix {
	return &Matrix{Representation: Inequality, Rows: cloneRows(p.inequalities), cols: p.cols}
}

// Generators returns a fresh copy of the V-representation.
func (p *Polyhedron) Generators() *Matrix {
	return &Matrix{Representation: Generator, Rows: cloneRows(p.generators), cols: p.cols}
}

// Incidence returns the inequality→generator incidence (one set per
// inequality, of length len(generators)).
func (p *Polyhedron) Incidence() []incidence.Set {
	out := make([]incidence.Set, len(p.incidence))
	for i, s := range p.incidence {
		out[i] = s.Clone()
	}

	return out
}

// GeneratorIncidence returns the generator→inequality incidence.
func (p *Polyhedron) GeneratorIncidence() []incidence.Set {
	if len(p.incidence) == 0 {
		out := make([]incidence.Set, len(p.generators))
		for i := range out {
			out[i] = incidence.New(0)
		}

		return out
	}
	out, _ := incidence.Transpose(p.incidence) // rectangular by construction

	return out
}

func cloneRows(rows []rational.Vec) []rational.Vec {
	out := make([]rational.Vec, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}

	return out
}
