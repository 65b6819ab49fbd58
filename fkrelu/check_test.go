// SPDX-License-Identifier: MIT

package fkrelu_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/krelu/fkrelu"
	"github.com/katalvlaran/krelu/matrix"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	h, err := fkrelu.Relu1(-1, 1)
	require.NoError(t, err)

	require.NoError(t, fkrelu.Check(h, [][]float64{{-1, 0}, {0, 0}, {1, 1}, {0, 0.25}}, 0))
	require.ErrorIs(t, fkrelu.Check(h, [][]float64{{0, -0.1}}, tol), fkrelu.ErrUnsound)
	require.ErrorIs(t, fkrelu.Check(h, [][]float64{{0, 0.6}}, tol), fkrelu.ErrUnsound)

	// Tolerance absorbs rounding-sized violations only.
	require.NoError(t, fkrelu.Check(h, [][]float64{{0, -1e-12}}, tol))

	require.ErrorIs(t, fkrelu.Check(h, [][]float64{{0}}, tol), fkrelu.ErrInvalidArgument)
	require.ErrorIs(t, fkrelu.Check(h, nil, -1), fkrelu.ErrInvalidArgument)
	require.ErrorIs(t, fkrelu.Check(h, nil, math.NaN()), fkrelu.ErrInvalidArgument)
	require.ErrorIs(t, fkrelu.Check(nil, nil, tol), matrix.ErrNilMatrix)
}
