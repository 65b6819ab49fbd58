// SPDX-License-Identifier: MIT

package octahedron_test

import (
	"testing"

	"github.com/katalvlaran/krelu/octahedron"
	"github.com/stretchr/testify/require"
)

// TestCoefficientsCanonical pins the K=1 and K=2 tables and checks every K
// enumerates each nonzero sign vector exactly once.
func TestCoefficientsCanonical(t *testing.T) {
	c1, err := octahedron.Coefficients(1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1}, {-1}}, c1)

	c2, err := octahedron.Coefficients(2)
	require.NoError(t, err)
	require.Equal(t, [][]int{
		{0, 1}, {0, -1},
		{1, 0}, {1, 1}, {1, -1},
		{-1, 0}, {-1, 1}, {-1, -1},
	}, c2)

	for k := 1; k <= octahedron.MaxK; k++ {
		rows, err := octahedron.Coefficients(k)
		require.NoError(t, err)
		n, err := octahedron.NumRows(k)
		require.NoError(t, err)
		require.Equal(t, octahedron.Pow3[k]-1, n)
		require.Len(t, rows, n)

		seen := make(map[[octahedron.MaxK]int]bool, n)
		for _, r := range rows {
			var key [octahedron.MaxK]int
			nonzero := false
			for j, c := range r {
				require.Contains(t, []int{-1, 0, 1}, c)
				key[j] = c
				nonzero = nonzero || c != 0
			}
			require.True(t, nonzero)
			require.False(t, seen[key], "duplicate row %v", r)
			seen[key] = true
		}
	}
}

// TestCoefficientsCopy checks callers cannot mutate the shared table.
func TestCoefficientsCopy(t *testing.T) {
	c, err := octahedron.Coefficients(1)
	require.NoError(t, err)
	c[0][0] = 9
	again, err := octahedron.Coefficients(1)
	require.NoError(t, err)
	require.Equal(t, 1, again[0][0])

	_, err = octahedron.Coefficients(0)
	require.ErrorIs(t, err, octahedron.ErrBadK)
	_, err = octahedron.NumRows(5)
	require.ErrorIs(t, err, octahedron.ErrBadK)
}
