// SPDX-License-Identifier: MIT

package fkrelu_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/krelu/dd"
	"github.com/katalvlaran/krelu/matrix"
	"github.com/katalvlaran/krelu/fkrelu"
	"github.com/katalvlaran/krelu/octahedron"
	"github.com/katalvlaran/krelu/quadrant"
	"github.com/katalvlaran/krelu/rational"
	"github.com/stretchr/testify/require"
)

const tol = 1e-7

// box returns the octahedron input of the box [lower, upper].
func box(t *testing.T, lower, upper []float64) *matrix.Dense {
	t.Helper()
	a, err := octahedron.FromBox(lower, upper)
	require.NoError(t, err)

	return a
}

// cutCorner returns the K=2 box [-1,2]×[-1.5,1] with x1 + x2 ≤ 1.5 added.
// Row 7 carries the coefficients (−1, −1).
func cutCorner(t *testing.T) *matrix.Dense {
	t.Helper()
	a := box(t, []float64{-1, -1.5}, []float64{2, 1})
	require.NoError(t, a.Set(7, 0, 1.5))

	return a
}

// tighten sets the constant of the row of a whose coefficients are coef, so
// that the row reads b + coef·x ≥ 0.
func tighten(t *testing.T, a *matrix.Dense, b float64, coef ...float64) {
	t.Helper()
	require.Len(t, coef, a.Cols()-1)
	for r := 0; r < a.Rows(); r++ {
		row, err := a.Row(r)
		require.NoError(t, err)
		match := true
		for j, c := range coef {
			if row[1+j] != c {
				match = false
				break
			}
		}
		if match {
			require.NoError(t, a.Set(r, 0, b))
			return
		}
	}
	t.Fatalf("no row with coefficients %v", coef)
}

// relational3 returns a K=3 input whose region couples all three
// coordinates: the box [-1,1]×[-2,1]×[-1,2] cut by x1 + x2 ≤ 1,
// x2 − x3 ≤ 1.5 and x1 + x2 + x3 ≤ 2.
func relational3(t *testing.T) *matrix.Dense {
	t.Helper()
	a := box(t, []float64{-1, -2, -1}, []float64{1, 1, 2})
	tighten(t, a, 1, -1, -1, 0)
	tighten(t, a, 1.5, 0, -1, 1)
	tighten(t, a, 2, -1, -1, -1)

	return a
}

// relational4 returns a K=4 input: the box [-1,1]⁴ cut by x1 + x2 ≤ 1.5,
// x1 − x2 ≤ 1.5, x3 + x4 ≤ 1 and x1 + x2 + x3 + x4 ≤ 2.5.
func relational4(t *testing.T) *matrix.Dense {
	t.Helper()
	a := box(t, []float64{-1, -1, -1, -1}, []float64{1, 1, 1, 1})
	tighten(t, a, 1.5, -1, -1, 0, 0)
	tighten(t, a, 1.5, -1, 1, 0, 0)
	tighten(t, a, 1, 0, 0, -1, -1)
	tighten(t, a, 2.5, -1, -1, -1, -1)

	return a
}

// reducedPDDs runs the oracle, the splitter and the reducer on a.
func reducedPDDs(t *testing.T, a matrix.Matrix) (*quadrant.Map[fkrelu.PDD], int) {
	t.Helper()
	oct, err := octahedron.ComputeV(a)
	require.NoError(t, err)
	infos, err := quadrant.Split(oct.Vertices, oct.Incidence, oct.Adjacency, oct.K)
	require.NoError(t, err)
	pdds := quadrant.NewMap[fkrelu.PDD]()
	infos.Range(func(q quadrant.Quadrant, info *quadrant.Info) bool {
		p, err := fkrelu.ReduceQuadrant_TestOnly(q, info, oct.Rows, oct.K)
		require.NoError(t, err)
		pdds.Set(q, p)
		return true
	})

	return pdds, oct.K
}

// exactVertices returns the sorted vertices of the region of exact rows.
func exactVertices(t *testing.T, rows []rational.Vec, cols int) []string {
	t.Helper()
	m, err := dd.NewMatrix(0, cols, dd.Inequality)
	require.NoError(t, err)
	m.Rows = rows
	poly, err := dd.Convert(m)
	require.NoError(t, err)

	gens := poly.Generators().Rows
	out := make([]string, len(gens))
	for i, g := range gens {
		out[i] = g.String()
	}
	sort.Strings(out)
	require.NotEmpty(t, out, "region is empty")

	return out
}

// regionVertices converts the rows of h to the vertices of their region,
// returned as plain coordinates.
func regionVertices(t *testing.T, h matrix.Matrix) [][]float64 {
	t.Helper()
	rows, err := matrix.ToRows(h)
	require.NoError(t, err)
	m, err := dd.NewMatrix(0, h.Cols(), dd.Inequality)
	require.NoError(t, err)
	for _, r := range rows {
		v, err := rational.FromFloat64s(r)
		require.NoError(t, err)
		m.Rows = append(m.Rows, v)
	}
	poly, err := dd.Convert(m)
	require.NoError(t, err)

	gens := poly.Generators().Rows
	out := make([][]float64, len(gens))
	for i, g := range gens {
		out[i] = g.Float64s()[1:]
	}
	require.NotEmpty(t, out, "region is empty")

	return out
}
