// SPDX-License-Identifier: MIT

package rational

import (
	"math/big"
	"strings"
)

// IntVec is a dense vector of exact integers. Cone kernels keep their rays as
// primitive IntVecs: every operation stays in big.Int and no per-operation
// fraction reduction takes place.
type IntVec []*big.Int

// Primitive returns the positive multiple of v with integer entries whose
// greatest common divisor is 1. The zero vector maps to the zero vector.
// Complexity: O(n) big-integer operations.
func Primitive(v Vec) IntVec {
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, x := range v {
		d := x.Denom()
		if d.IsInt64() && d.Int64() == 1 {
			continue
		}
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, g.Quo(d, g))
	}
	out := make(IntVec, len(v))
	for i, x := range v {
		n := new(big.Int).Quo(lcm, x.Denom())
		out[i] = n.Mul(n, x.Num())
	}

	return out.reduce()
}

// CombineInt returns the primitive form of a*u + b*w. Lengths must match.
func CombineInt(a *big.Int, u IntVec, b *big.Int, w IntVec) IntVec {
	out := make(IntVec, len(u))
	tmp := new(big.Int)
	for i := range u {
		r := new(big.Int).Mul(a, u[i])
		out[i] = r.Add(r, tmp.Mul(b, w[i]))
	}

	return out.reduce()
}

// DotInt returns Σ v[i]*w[i]. Lengths must match.
func DotInt(v, w IntVec) *big.Int {
	sum := new(big.Int)
	tmp := new(big.Int)
	for i := range v {
		if v[i].Sign() == 0 || w[i].Sign() == 0 {
			continue
		}
		sum.Add(sum, tmp.Mul(v[i], w[i]))
	}

	return sum
}

// Rat converts v back to an exact rational vector.
func (v IntVec) Rat() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).SetInt(x)
	}

	return out
}

// String renders v as "[a, b, c]".
func (v IntVec) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(x.String())
	}
	b.WriteString("]")

	return b.String()
}

// reduce divides v in place by the gcd of its entries.
func (v IntVec) reduce() IntVec {
	g := new(big.Int)
	abs := new(big.Int)
	for _, x := range v {
		if x.Sign() == 0 {
			continue
		}
		if g.Sign() == 0 {
			g.Abs(x)
		} else {
			g.GCD(nil, nil, g, abs.Abs(x))
		}
		if g.IsInt64() && g.Int64() == 1 {
			return v
		}
	}
	if g.Sign() == 0 {
		return v
	}
	for _, x := range v {
		x.Quo(x, g)
	}

	return v
}
