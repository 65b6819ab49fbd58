// SPDX-License-Identifier: MIT

package dd

import (
	"math/big"

	"github.com/katalvlaran/krelu/incidence"
	"github.com/katalvlaran/krelu/rational"
)

// ray is an extreme ray together with the constraints it is tight on.
type ray struct {
	v    rational.Vec
	zero incidence.Set
}

// intRay is a ray of the running iteration, kept as a primitive integer
// vector.
type intRay struct {
	v    rational.IntVec
	zero incidence.Set
}

// coneRays returns the extreme rays of the pointed part of {z ∈ Rⁿ : a_i·z ≥ 0}
// and a basis of its lineality space {z : a_i·z = 0 ∀i}. Rays lie in the row
// space of a, carry exact zero sets over all rows of a, and are scaled to
// max-abs 1.
func coneRays(a []rational.Vec, n int) ([]ray, []rational.Vec, error) {
	lineality := rational.NullSpace(a, n)
	basisIdx := rational.IndependentRows(a, n)
	r := len(basisIdx)
	if r == 0 {
		return nil, lineality, nil
	}

	// Work in coordinates of the row space so the cone is pointed:
	// z = Bᵀu and a_i·z = (B a_i)·u.
	var basis []rational.Vec
	if r < n {
		basis = make([]rational.Vec, r)
		for k, i := range basisIdx {
			basis[k] = a[i]
		}
	}
	work := make([]rational.IntVec, len(a))
	for i, row := range a {
		if basis != nil {
			row = rational.MulVec(basis, row)
		}
		work[i] = rational.Primitive(row)
	}

	irays, err := pointedRays(work, r)
	if err != nil {
		return nil, nil, err
	}
	rays := make([]ray, len(irays))
	for i, ir := range irays {
		u := ir.v.Rat()
		if basis == nil {
			rays[i] = ray{v: u.ScaleMaxAbs(), zero: ir.zero}
			continue
		}
		z := rational.NewVec(n)
		tmp := new(big.Rat)
		for k, b := range basis {
			if u[k].Sign() == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				z[j].Add(z[j], tmp.Mul(u[k], b[j]))
			}
		}
		rays[i] = ray{v: z.ScaleMaxAbs(), zero: ir.zero}
	}

	return rays, lineality, nil
}

// pointedRays runs the double description iteration on a constraint set of
// full rank r in Rʳ.
func pointedRays(a []rational.IntVec, r int) ([]intRay, error) {
	m := len(a)
	ra := make([]rational.Vec, m)
	for i, row := range a {
		ra[i] = row.Rat()
	}
	initIdx := rational.IndependentRows(ra, r)
	if len(initIdx) != r {
		return nil, fail("pointedRays", NumericallyInconsistent)
	}
	square := make([]rational.Vec, r)
	for k, i := range initIdx {
		square[k] = ra[i]
	}
	inv, err := rational.Inverse(square)
	if err != nil {
		return nil, fail("pointedRays", NumericallyInconsistent)
	}

	// Columns of the inverse span the initial simplicial cone; column j is
	// tight on every basis row except the j-th.
	processed := make([]bool, m)
	for _, i := range initIdx {
		processed[i] = true
	}
	rays := make([]intRay, r)
	for j := 0; j < r; j++ {
		v := rational.NewVec(r)
		for k := 0; k < r; k++ {
			v[k].Set(inv[k][j])
		}
		zero := incidence.New(m)
		for k, i := range initIdx {
			if k != j {
				_ = zero.Add(i)
			}
		}
		rays[j] = intRay{v: rational.Primitive(v), zero: zero}
	}

	for i := 0; i < m; i++ {
		if processed[i] {
			continue
		}
		processed[i] = true
		rays = addConstraint(rays, a[i], i, r)
	}

	return rays, nil
}

// addConstraint intersects the current cone with a·z ≥ 0 (row index i).
func addConstraint(rays []intRay, a rational.IntVec, i, r int) []intRay {
	vals := make([]*big.Int, len(rays))
	var pos, neg []int
	for k := range rays {
		vals[k] = rational.DotInt(a, rays[k].v)
		switch vals[k].Sign() {
		case 1:
			pos = append(pos, k)
		case -1:
			neg = append(neg, k)
		}
	}
	if len(neg) == 0 {
		for k := range rays {
			if vals[k].Sign() == 0 {
				_ = rays[k].zero.Add(i)
			}
		}

		return rays
	}

	var created []intRay
	for _, p := range pos {
		for _, q := range neg {
			common, _ := rays[p].zero.Intersection(rays[q].zero)
			if common.Count() < r-2 || !adjacent(rays, p, q, common) {
				continue
			}
			// vals[p] > 0 > vals[q]: both coefficients are positive.
			negQ := new(big.Int).Neg(vals[q])
			v := rational.CombineInt(vals[p], rays[q].v, negQ, rays[p].v)
			_ = common.Add(i)
			created = append(created, intRay{v: v, zero: common})
		}
	}

	kept := make([]intRay, 0, len(rays)-len(neg)+len(created))
	for k := range rays {
		switch vals[k].Sign() {
		case 1:
			kept = append(kept, rays[k])
		case 0:
			_ = rays[k].zero.Add(i)
			kept = append(kept, rays[k])
		}
	}

	return append(kept, created...)
}

// adjacent is the combinatorial test: p and q span a 2-face of the current
// cone iff no other ray is tight on all constraints they share.
func adjacent(rays []intRay, p, q int, common incidence.Set) bool {
	for t := range rays {
		if t == p || t == q {
			continue
		}
		if ok, _ := rays[t].zero.IsSuperSet(common); ok {
			return false
		}
	}

	return true
}
