// SPDX-License-Identifier: MIT

package dd_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/krelu/dd"
	"github.com/katalvlaran/krelu/rational"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, rep dd.Representation, cols int, rows ...rational.Vec) *dd.Matrix {
	t.Helper()
	m, err := dd.NewMatrix(0, cols, rep)
	require.NoError(t, err)
	m.Rows = rows

	return m
}

// sign returns the sign of c·g.
func sign(t *testing.T, c, g rational.Vec) int {
	t.Helper()
	d, err := c.Dot(g)
	require.NoError(t, err)

	return d.Sign()
}

// requireExactIncidence checks every incidence bit against the exact product.
func requireExactIncidence(t *testing.T, poly *dd.Polyhedron) {
	t.Helper()
	ineq, gens := poly.Inequalities().Rows, poly.Generators().Rows
	inc := poly.Incidence()
	require.Len(t, inc, len(ineq))
	for i, c := range ineq {
		require.Equal(t, len(gens), inc[i].Len())
		for j, g := range gens {
			s := sign(t, c, g)
			require.GreaterOrEqual(t, s, 0, "row %d vertex %d", i, j)
			require.Equal(t, s == 0, inc[i].Has(j), "row %d vertex %d", i, j)
		}
	}
}

func sortedStrings(rows []rational.Vec) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.String()
	}
	sort.Strings(out)

	return out
}

// TestConvertSquareVertices enumerates the unit square from its facets.
func TestConvertSquareVertices(t *testing.T) {
	m := build(t, dd.Inequality, 3,
		rational.FromInts(0, 1, 0),  // x ≥ 0
		rational.FromInts(1, -1, 0), // x ≤ 1
		rational.FromInts(0, 0, 1),  // y ≥ 0
		rational.FromInts(1, 0, -1), // y ≤ 1
	)
	poly, err := dd.Convert(m)
	require.NoError(t, err)
	require.Equal(t, 2, poly.Dimension())

	gens := poly.Generators()
	require.Equal(t, dd.Generator, gens.Representation)
	require.Equal(t, 3, gens.ColSize())
	require.Equal(t, []string{"[1, 0, 0]", "[1, 0, 1]", "[1, 1, 0]", "[1, 1, 1]"}, sortedStrings(gens.Rows))

	// Inequalities are kept verbatim and every facet holds two vertices.
	require.Equal(t, 4, poly.Inequalities().RowSize())
	for i, s := range poly.Incidence() {
		require.Equal(t, 2, s.Count(), "facet %d", i)
	}
	for v, s := range poly.GeneratorIncidence() {
		require.Equal(t, 2, s.Count(), "vertex %d", v)
		require.Equal(t, 4, s.Len())
	}
}

// TestConvertTriangleFacets re-facets a triangle given by its vertices.
func TestConvertTriangleFacets(t *testing.T) {
	m := build(t, dd.Generator, 3,
		rational.FromInts(1, 0, 0),
		rational.FromInts(2, 2, 0), // (1, 0) with leading coordinate 2
		rational.FromInts(1, 0, 1),
	)
	poly, err := dd.Convert(m)
	require.NoError(t, err)
	require.Equal(t, []string{"[0, 0, 1]", "[0, 1, 0]", "[1, -1, -1]"}, sortedStrings(poly.Inequalities().Rows))
	require.Equal(t, "[1, 1, 0]", poly.Generators().Rows[1].String())
}

// TestConvertSegment checks a lower-dimensional input yields an equality pair.
func TestConvertSegment(t *testing.T) {
	gens := []rational.Vec{rational.FromInts(1, 0, 0), rational.FromInts(1, 1, 1)}
	poly, err := dd.Convert(build(t, dd.Generator, 3, gens...))
	require.NoError(t, err)

	ineq := poly.Inequalities().Rows
	require.Len(t, ineq, 4)
	for _, c := range ineq {
		for _, g := range gens {
			require.GreaterOrEqual(t, sign(t, c, g), 0)
		}
	}
	off := rational.FromInts(1, 1, 0)
	violated := false
	for _, c := range ineq {
		if sign(t, c, off) < 0 {
			violated = true
		}
	}
	require.True(t, violated, "(1,0) must be cut off")
	require.Contains(t, sortedStrings(ineq), "[0, 1, -1]")
	require.Contains(t, sortedStrings(ineq), "[0, -1, 1]")
}

// TestConvertCube checks the six facets of [-1,1]³ and its combinatorics:
// four vertices per facet, three facets per vertex, none on the centre.
func TestConvertCube(t *testing.T) {
	var gens []rational.Vec
	for _, x := range []int64{-1, 1} {
		for _, y := range []int64{-1, 1} {
			for _, z := range []int64{-1, 1} {
				gens = append(gens, rational.FromInts(1, x, y, z))
			}
		}
	}
	gens = append(gens, rational.FromInts(1, 0, 0, 0)) // interior point
	poly, err := dd.Convert(build(t, dd.Generator, 4, gens...))
	require.NoError(t, err)

	require.Equal(t, []string{
		"[1, -1, 0, 0]", "[1, 0, -1, 0]", "[1, 0, 0, -1]",
		"[1, 0, 0, 1]", "[1, 0, 1, 0]", "[1, 1, 0, 0]",
	}, sortedStrings(poly.Inequalities().Rows))
	for i, s := range poly.Incidence() {
		require.Equal(t, 4, s.Count(), "facet %d", i)
	}
	gi := poly.GeneratorIncidence()
	for v := 0; v < 8; v++ {
		require.Equal(t, 3, gi[v].Count(), "vertex %d", v)
	}
	require.Zero(t, gi[8].Count())
	requireExactIncidence(t, poly)
}

// TestConvertCrossPolytope re-facets the octahedron conv{±e_i} (8 facets,
// 3 vertices each) and converts the facets back to the 6 vertices.
func TestConvertCrossPolytope(t *testing.T) {
	var gens []rational.Vec
	for i := 1; i <= 3; i++ {
		for _, s := range []int64{1, -1} {
			v := rational.NewVec(4)
			v[0].SetInt64(1)
			v[i].SetInt64(s)
			gens = append(gens, v)
		}
	}
	poly, err := dd.Convert(build(t, dd.Generator, 4, gens...))
	require.NoError(t, err)

	var want []rational.Vec
	for _, a := range []int64{-1, 1} {
		for _, b := range []int64{-1, 1} {
			for _, c := range []int64{-1, 1} {
				want = append(want, rational.FromInts(1, a, b, c)) // 1 + s·x ≥ 0
			}
		}
	}
	ineq := poly.Inequalities().Rows
	require.Equal(t, sortedStrings(want), sortedStrings(ineq))
	for i, s := range poly.Incidence() {
		require.Equal(t, 3, s.Count(), "facet %d", i)
	}
	for v, s := range poly.GeneratorIncidence() {
		require.Equal(t, 4, s.Count(), "vertex %d", v)
	}
	requireExactIncidence(t, poly)

	back, err := dd.Convert(build(t, dd.Inequality, 4, ineq...))
	require.NoError(t, err)
	require.Equal(t, sortedStrings(gens), sortedStrings(back.Generators().Rows))
	requireExactIncidence(t, back)
}

// TestConvertEmptyRegion checks an infeasible system has no vertices.
func TestConvertEmptyRegion(t *testing.T) {
	poly, err := dd.Convert(build(t, dd.Inequality, 2,
		rational.FromInts(-1, 1), // x ≥ 1
		rational.FromInts(0, -1), // x ≤ 0
	))
	require.NoError(t, err)
	require.Zero(t, poly.Generators().RowSize())
}

func TestConvertErrors(t *testing.T) {
	cases := []struct {
		name string
		m    *dd.Matrix
		code dd.ErrorType
	}{
		{"nil", nil, dd.ImproperInputFormat},
		{"ragged", build(t, dd.Inequality, 3, rational.FromInts(1, 0)), dd.ImproperInputFormat},
		{"unbounded", build(t, dd.Inequality, 2, rational.FromInts(0, 1)), dd.UnboundedInput},
		{"empty-v", build(t, dd.Generator, 3), dd.EmptyVRepresentation},
		{"ray", build(t, dd.Generator, 2, rational.FromInts(0, 1)), dd.ImproperInputFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dd.Convert(tc.m)
			require.ErrorIs(t, err, dd.ErrConversion)
			var ce *dd.ConversionError
			require.True(t, errors.As(err, &ce))
			require.Equal(t, tc.code, ce.Code)
			require.Contains(t, err.Error(), tc.code.String())
		})
	}

	_, err := dd.NewMatrix(2, 1, dd.Inequality)
	require.ErrorIs(t, err, dd.ErrConversion)
	require.Equal(t, "ErrorType(42)", dd.ErrorType(42).String())
}
