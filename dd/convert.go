// SPDX-License-Identifier: MIT

package dd

import (
	"math/big"

	"github.com/katalvlaran/krelu/incidence"
	"github.com/katalvlaran/krelu/rational"
)

// Convert computes the missing representation of the polytope described by m.
//
// Inequality input: the result keeps the input rows as its inequalities and
// adds the vertices (an empty polytope yields no generators, not an error).
// Generator input: the result keeps the vertices and adds the facets plus
// one ± pair per implicit equality.
//
// Errors: *ConversionError with ImproperInputFormat, EmptyVRepresentation,
// UnboundedInput or NumericallyInconsistent.
func Convert(m *Matrix) (*Polyhedron, error) {
	if m == nil || m.cols < 2 {
		return nil, fail("Convert", ImproperInputFormat)
	}
	for _, row := range m.Rows {
		if len(row) != m.cols {
			return nil, fail("Convert", ImproperInputFormat)
		}
	}

	var (
		ineq, gens []rational.Vec
		inc        []incidence.Set
		err        error
	)
	switch m.Representation {
	case Inequality:
		ineq = cloneRows(m.Rows)
		gens, inc, err = vertices(ineq, m.cols)
	case Generator:
		gens, err = normalizeGenerators(m.Rows)
		if err == nil {
			ineq, inc, err = facets(gens, m.cols)
		}
	default:
		err = fail("Convert", ImproperInputFormat)
	}
	if err != nil {
		return nil, err
	}

	return &Polyhedron{
		cols:         m.cols,
		inequalities: ineq,
		generators:   gens,
		incidence:    inc,
	}, nil
}

// vertices enumerates the vertices of {x : c·(1,x) ≥ 0 ∀c ∈ ineq} together
// with the inequality→vertex incidence read off the ray zero sets.
func vertices(ineq []rational.Vec, n int) ([]rational.Vec, []incidence.Set, error) {
	m := len(ineq)
	homog := rational.NewVec(n)
	homog[0].SetInt64(1) // t ≥ 0
	rows := append(cloneRows(ineq), homog)

	rays, lineality, err := coneRays(rows, n)
	if err != nil {
		return nil, nil, err
	}
	if len(lineality) > 0 {
		return nil, nil, fail("vertices", UnboundedInput)
	}
	gens := make([]rational.Vec, 0, len(rays))
	for _, r := range rays {
		t := r.v[0]
		if t.Sign() <= 0 {
			return nil, nil, fail("vertices", UnboundedInput)
		}
		inv := new(big.Rat).Inv(t)
		v := r.v.Clone()
		for j := range v {
			v[j].Mul(v[j], inv)
		}
		gens = append(gens, v)
	}

	inc := make([]incidence.Set, m)
	for i := range inc {
		inc[i] = incidence.New(len(gens))
	}
	for j, r := range rays {
		for _, i := range r.zero.Indexes() {
			if i < m {
				_ = inc[i].Add(j)
			}
		}
	}

	return gens, inc, nil
}

// facets computes the H-representation of conv(gens). Each facet carries its
// ray zero set as incidence; each equality row is tight on every generator.
func facets(gens []rational.Vec, n int) ([]rational.Vec, []incidence.Set, error) {
	rays, lineality, err := coneRays(gens, n)
	if err != nil {
		return nil, nil, err
	}
	out := make([]rational.Vec, 0, len(rays)+2*len(lineality))
	inc := make([]incidence.Set, 0, cap(out))
	for _, r := range rays {
		// A ray tight on no generator is the apex of a 0-dimensional input,
		// already implied by the equalities below.
		if r.zero.Count() == 0 {
			continue
		}
		out = append(out, r.v)
		inc = append(inc, r.zero)
	}
	all := incidence.New(len(gens))
	for j := range gens {
		_ = all.Add(j)
	}
	for _, l := range lineality {
		l = l.ScaleMaxAbs()
		neg := rational.NewVec(n)
		for j := range l {
			neg[j].Neg(l[j])
		}
		out = append(out, l, neg)
		inc = append(inc, all.Clone(), all.Clone())
	}

	return out, inc, nil
}

// normalizeGenerators checks every generator is a point and scales its
// leading coordinate to 1.
func normalizeGenerators(rows []rational.Vec) ([]rational.Vec, error) {
	if len(rows) == 0 {
		return nil, fail("Convert", EmptyVRepresentation)
	}
	out := make([]rational.Vec, len(rows))
	for i, row := range rows {
		if row[0].Sign() <= 0 {
			return nil, fail("Convert", ImproperInputFormat)
		}
		v := row.Clone()
		inv := new(big.Rat).Inv(row[0])
		for j := range v {
			v[j].Mul(v[j], inv)
		}
		out[i] = v
	}

	return out, nil
}
