// SPDX-License-Identifier: MIT

package rational_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/krelu/rational"
	"github.com/stretchr/testify/require"
)

// TestPrimitive checks clearing denominators keeps the direction and leaves
// coprime entries.
func TestPrimitive(t *testing.T) {
	v := rational.Vec{big.NewRat(1, 2), big.NewRat(-3, 4), big.NewRat(0, 1), big.NewRat(3, 2)}
	p := rational.Primitive(v)
	require.Equal(t, "[2, -3, 0, 6]", p.String())
	require.Equal(t, "[2, -3, 0, 6]", p.Rat().String())

	require.Equal(t, "[2, -1]", rational.Primitive(rational.FromInts(8, -4)).String())
	require.Equal(t, "[0, 0]", rational.Primitive(rational.NewVec(2)).String())
}

// TestCombineInt checks the combination is reduced to primitive form and the
// dot product eliminates the combined constraint.
func TestCombineInt(t *testing.T) {
	a := rational.Primitive(rational.FromInts(0, 1, -1))
	p := rational.Primitive(rational.FromInts(1, 2, 0)) // a·p = 2
	q := rational.Primitive(rational.FromInts(1, 0, 4)) // a·q = -4

	vp, vq := rational.DotInt(a, p), rational.DotInt(a, q)
	require.Equal(t, int64(2), vp.Int64())
	require.Equal(t, int64(-4), vq.Int64())

	// 2·q + 4·p = (6, 8, 8), primitive (3, 4, 4).
	c := rational.CombineInt(vp, q, new(big.Int).Neg(vq), p)
	require.Equal(t, "[3, 4, 4]", c.String())
	require.Zero(t, rational.DotInt(a, c).Sign())
}
