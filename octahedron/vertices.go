// SPDX-License-Identifier: MIT

package octahedron

import (
	"fmt"

	"github.com/katalvlaran/krelu/dd"
	"github.com/katalvlaran/krelu/incidence"
	"github.com/katalvlaran/krelu/matrix"
	"github.com/katalvlaran/krelu/rational"
)

// V is the exact vertex representation of an octahedron input.
type V struct {
	K int
	// Rows are the input half-spaces as exact vectors (length K+1).
	Rows []rational.Vec
	// Vertices are homogeneous (1, x1..xK).
	Vertices []rational.Vec
	// Incidence[v] holds the rows vertex v is tight on (length len(Rows)).
	Incidence []incidence.Set
	// Adjacency[v] lists, ascending, the vertices joined to v by an edge.
	Adjacency [][]int
}

// ComputeV validates a and enumerates the vertices of its region.
// Errors: everything Validate returns, ErrEmptyRegion, *dd.ConversionError.
func ComputeV(a matrix.Matrix) (*V, error) {
	k, err := Validate(a)
	if err != nil {
		return nil, err
	}
	rows, err := ExactRows(a)
	if err != nil {
		return nil, fmt.Errorf("ComputeV: %w", err)
	}

	h, err := dd.NewMatrix(0, k+1, dd.Inequality)
	if err != nil {
		return nil, fmt.Errorf("ComputeV: %w", err)
	}
	h.Rows = rows
	poly, err := dd.Convert(h)
	if err != nil {
		return nil, fmt.Errorf("ComputeV: %w", err)
	}

	verts := poly.Generators().Rows
	if len(verts) == 0 {
		return nil, fmt.Errorf("ComputeV: %w", ErrEmptyRegion)
	}
	inc := poly.GeneratorIncidence()
	adj, err := incidence.Adjacency(inc)
	if err != nil {
		return nil, fmt.Errorf("ComputeV: %w", err)
	}

	return &V{K: k, Rows: rows, Vertices: verts, Incidence: inc, Adjacency: adj}, nil
}
