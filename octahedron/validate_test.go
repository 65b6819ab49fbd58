// SPDX-License-Identifier: MIT

package octahedron_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/krelu/matrix"
	"github.com/katalvlaran/krelu/octahedron"
	"github.com/stretchr/testify/require"
)

func TestFromBoxValidates(t *testing.T) {
	for k := 1; k <= 3; k++ {
		lower := make([]float64, k)
		upper := make([]float64, k)
		for i := range lower {
			lower[i], upper[i] = -float64(i+1), float64(2*i+1)
		}
		a, err := octahedron.FromBox(lower, upper)
		require.NoError(t, err)
		got, err := octahedron.Validate(a)
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
}

// TestFromBoxConstants checks b = −min a·x for K=2 on [−1,2]×[−1.5,1].
func TestFromBoxConstants(t *testing.T) {
	a, err := octahedron.FromBox([]float64{-1, -1.5}, []float64{2, 1})
	require.NoError(t, err)
	want := []float64{1.5, 1, 1, 2.5, 2, 2, 3.5, 3}
	for i, b := range want {
		got, err := a.At(i, 0)
		require.NoError(t, err)
		require.Equal(t, b, got, "row %d", i)
	}
}

// TestFromBoxRoundsOutward checks inexact sums round towards +Inf.
func TestFromBoxRoundsOutward(t *testing.T) {
	a, err := octahedron.FromBox([]float64{-0.1, -0.2}, []float64{1, 1})
	require.NoError(t, err)
	b, err := a.At(7, 0) // −x1 − x2 ≥ −b: b = 2 exactly
	require.NoError(t, err)
	require.Equal(t, 2.0, b)
	b, err = a.At(3, 0) // x1 + x2 ≥ −b: b = 0.1 + 0.2 (rounded up)
	require.NoError(t, err)
	require.GreaterOrEqual(t, b, 0.1+0.2)
}

func TestFromBoxErrors(t *testing.T) {
	_, err := octahedron.FromBox([]float64{0}, []float64{1, 2})
	require.ErrorIs(t, err, octahedron.ErrBadBounds)
	_, err = octahedron.FromBox(nil, nil)
	require.ErrorIs(t, err, octahedron.ErrBadK)
	_, err = octahedron.FromBox([]float64{2}, []float64{1})
	require.ErrorIs(t, err, octahedron.ErrBadBounds)
	_, err = octahedron.FromBox([]float64{math.NaN()}, []float64{1})
	require.ErrorIs(t, err, octahedron.ErrBadBounds)
}

func TestValidateErrors(t *testing.T) {
	_, err := octahedron.Validate(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	wide, err := matrix.NewDense(2, 7)
	require.NoError(t, err)
	_, err = octahedron.Validate(wide)
	require.ErrorIs(t, err, octahedron.ErrBadK)

	rows, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	_, err = octahedron.Validate(rows)
	require.ErrorIs(t, err, octahedron.ErrRowCount)

	zeroCoefs, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = octahedron.Validate(zeroCoefs)
	require.ErrorIs(t, err, octahedron.ErrCoefficients)
}

// nanDense is a Matrix whose At can return non-finite values, which Dense
// itself refuses to store.
type nanDense struct{ *matrix.Dense }

func (n nanDense) At(i, j int) (float64, error) {
	if i == 1 && j == 0 {
		return math.Inf(1), nil
	}

	return n.Dense.At(i, j)
}

func TestValidateNonFinite(t *testing.T) {
	a, err := octahedron.FromBox([]float64{-1}, []float64{1})
	require.NoError(t, err)
	_, err = octahedron.Validate(nanDense{a})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
