// SPDX-License-Identifier: MIT

package octahedron_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/krelu/octahedron"
	"github.com/stretchr/testify/require"
)

// TestComputeVCutCorner checks the vertices of [−1,2]×[−1.5,1] with
// x1 + x2 ≤ 1.5: the corner (2,1) is replaced by (2,−0.5) and (0.5,1).
func TestComputeVCutCorner(t *testing.T) {
	a, err := octahedron.FromBox([]float64{-1, -1.5}, []float64{2, 1})
	require.NoError(t, err)
	require.NoError(t, a.Set(7, 0, 1.5))

	v, err := octahedron.ComputeV(a)
	require.NoError(t, err)
	require.Equal(t, 2, v.K)
	require.Len(t, v.Rows, 8)

	got := make([]string, len(v.Vertices))
	for i, x := range v.Vertices {
		got[i] = x.String()
	}
	sort.Strings(got)
	require.Equal(t, []string{
		"[1, -1, -3/2]",
		"[1, -1, 1]",
		"[1, 1/2, 1]",
		"[1, 2, -1/2]",
		"[1, 2, -3/2]",
	}, got)

	// A pentagon: every vertex has exactly two neighbours.
	require.Len(t, v.Adjacency, len(v.Vertices))
	for i, nb := range v.Adjacency {
		require.Len(t, nb, 2, "vertex %d", i)
		require.Len(t, v.Incidence[i].Indexes(), v.Incidence[i].Count())
		require.Equal(t, len(v.Rows), v.Incidence[i].Len())
	}
}

func TestComputeVEmpty(t *testing.T) {
	a, err := octahedron.FromBox([]float64{-1, -1}, []float64{1, 1})
	require.NoError(t, err)
	require.NoError(t, a.Set(2, 0, -5)) // x1 ≥ 5
	_, err = octahedron.ComputeV(a)
	require.ErrorIs(t, err, octahedron.ErrEmptyRegion)
}
