// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/krelu/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseFromRows_RoundTrip(t *testing.T) {
	in := [][]float64{{1, 1}, {2, -1}}
	m, err := matrix.NewDenseFromRows(in)
	require.NoError(t, err)

	out, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, in, out)

	// The export is a copy.
	out[0][0] = 9
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllClose(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{1, 2 + 1e-12}, {3, 4}})
	c, _ := matrix.NewDenseFromRows([][]float64{{1, 2}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, c, 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilDense *matrix.Dense
	_, err = matrix.AllClose(nilDense, a, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
