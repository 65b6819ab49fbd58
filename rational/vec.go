// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Vec is a dense vector of exact rationals. Entries are never nil for a live
// vector; a released vector has all entries set to nil.
type Vec []*big.Rat

// NewVec returns a zero vector of length n.
// Complexity: O(n).
func NewVec(n int) Vec {
	v := make(Vec, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

// FromFloat64s converts xs exactly; every finite float64 is a dyadic rational.
// Errors: ErrNonFinite when any entry is NaN or ±Inf.
func FromFloat64s(xs []float64) (Vec, error) {
	v := make(Vec, len(xs))
	for i, x := range xs {
		r := new(big.Rat)
		if r.SetFloat64(x) == nil {
			return nil, fmt.Errorf("FromFloat64s[%d]=%v: %w", i, x, ErrNonFinite)
		}
		v[i] = r
	}

	return v, nil
}

// FromInts builds an exact vector from integers (handy for tables and tests).
func FromInts(xs ...int64) Vec {
	v := make(Vec, len(xs))
	for i, x := range xs {
		v[i] = new(big.Rat).SetInt64(x)
	}

	return v
}

// Clone returns a deep copy of v.
func (v Vec) Clone() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = new(big.Rat).Set(x)
	}

	return out
}

// Float64s rounds every entry to the nearest float64.
func (v Vec) Float64s() []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i], _ = x.Float64()
	}

	return out
}

// Dot returns the exact inner product Σ v[i]*w[i].
// Errors: ErrLengthMismatch.
func (v Vec) Dot(w Vec) (*big.Rat, error) {
	if len(v) != len(w) {
		return nil, ErrLengthMismatch
	}

	return dot(v, w), nil
}

// dot assumes equal lengths.
func dot(v, w Vec) *big.Rat {
	sum := new(big.Rat)
	tmp := new(big.Rat)
	for i := range v {
		if v[i].Sign() == 0 || w[i].Sign() == 0 {
			continue
		}
		sum.Add(sum, tmp.Mul(v[i], w[i]))
	}

	return sum
}

// Combine returns a*u + b*w as a new vector.
// Errors: ErrLengthMismatch.
func Combine(a *big.Rat, u Vec, b *big.Rat, w Vec) (Vec, error) {
	if len(u) != len(w) {
		return nil, ErrLengthMismatch
	}
	out := make(Vec, len(u))
	tmp := new(big.Rat)
	for i := range u {
		r := new(big.Rat).Mul(a, u[i])
		out[i] = r.Add(r, tmp.Mul(b, w[i]))
	}

	return out, nil
}

// IsZero reports whether every entry is zero.
func (v Vec) IsZero() bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact entry-wise equality.
func (v Vec) Equal(w Vec) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i].Cmp(w[i]) != 0 {
			return false
		}
	}

	return true
}

// MaxAbs returns max_i |v[i]| (zero for the empty or zero vector).
func (v Vec) MaxAbs() *big.Rat {
	best := new(big.Rat)
	abs := new(big.Rat)
	for _, x := range v {
		if abs.Abs(x).Cmp(best) > 0 {
			best.Set(abs)
		}
	}

	return best
}

// ScaleMaxAbs divides v in place by its largest absolute entry so that the
// result has max-abs 1. Positive scaling keeps the half-space it encodes
// unchanged. A zero vector is left as is.
func (v Vec) ScaleMaxAbs() Vec {
	m := v.MaxAbs()
	if m.Sign() == 0 {
		return v
	}
	for _, x := range v {
		x.Quo(x, m)
	}

	return v
}

// String renders v as "[a, b, c]" using exact fractions.
func (v Vec) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		if x == nil {
			b.WriteString("<released>")
			continue
		}
		b.WriteString(x.RatString())
	}
	b.WriteString("]")

	return b.String()
}
