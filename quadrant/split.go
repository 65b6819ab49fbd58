// SPDX-License-Identifier: MIT

package quadrant

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/krelu/incidence"
	"github.com/katalvlaran/krelu/rational"
)

// Info is the splitter output for one orthant, before redundancy reduction.
type Info struct {
	// V holds the exact homogeneous vertices (1, x) of region ∩ orthant.
	V []rational.Vec
	// VToH[v] marks the candidate constraints vertex v is tight on: input rows
	// 0..m−1 followed by the sign rows m..m+K−1 (x_i ≥ 0 or x_i ≤ 0 per orthant).
	VToH []incidence.Set
}

// Empty reports whether the region does not reach the orthant.
func (in *Info) Empty() bool { return in == nil || len(in.V) == 0 }

// piece is a polytope cut by the first few coordinate hyperplanes.
type piece struct {
	v    []rational.Vec
	z    []incidence.Set
	adj  [][]int
	sign []int // sign of the coordinate being split, per vertex (scratch)
}

// Split cuts the region with vertices vs, vertex→row incidence inc and edge
// list adj by every coordinate hyperplane x_i = 0 and returns one Info per
// orthant, for all 2^k orthants.
//
// Implementation:
//   - Stage 1: extend every incidence set with k sign-row slots.
//   - Stage 2: for i = 0..k−1 split each piece in two; vertices with x_i = 0
//     go to both sides, and each edge with endpoints of opposite sign adds its
//     crossing point (tight on the shared rows plus sign row i) to both sides.
//   - Stage 3: recompute the edge list of each child from its incidence.
//
// Errors: ErrBadK, ErrShape, incidence.ErrSizeMismatch.
func Split(vs []rational.Vec, inc []incidence.Set, adj [][]int, k int) (*Map[*Info], error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("Split: K=%d: %w", k, ErrBadK)
	}
	if len(inc) != len(vs) || len(adj) != len(vs) {
		return nil, fmt.Errorf("Split: %d vertices, %d incidences, %d adjacency lists: %w", len(vs), len(inc), len(adj), ErrShape)
	}
	m := 0
	if len(inc) > 0 {
		m = inc[0].Len()
	}
	root := &piece{v: vs, adj: adj, z: make([]incidence.Set, len(vs))}
	for i, s := range inc {
		if s.Len() != m || len(vs[i]) != k+1 {
			return nil, fmt.Errorf("Split: vertex %d: %w", i, ErrShape)
		}
		root.z[i] = s.Grow(m + k)
	}

	type entry struct {
		q Quadrant
		p *piece
	}
	level := []entry{{q: Quadrant{k: k}, p: root}}
	for i := 0; i < k; i++ {
		next := make([]entry, 0, 2*len(level))
		for _, e := range level {
			minus, plus, err := splitPiece(e.p, i, m, i < k-1)
			if err != nil {
				return nil, fmt.Errorf("Split: quadrant %s coordinate %d: %w", e.q, i, err)
			}
			next = append(next, entry{q: e.q.With(i, Minus), p: minus}, entry{q: e.q.With(i, Plus), p: plus})
		}
		level = next
	}

	out := NewMap[*Info]()
	for _, e := range level {
		out.Set(e.q, &Info{V: e.p.v, VToH: e.p.z})
	}

	return out, nil
}

// splitPiece cuts p with x_i = 0. The sign row of coordinate i is m+i.
func splitPiece(p *piece, i, m int, withAdjacency bool) (minus, plus *piece, err error) {
	minus, plus = &piece{}, &piece{}
	if len(p.v) == 0 {
		return minus, plus, nil
	}
	col, row := 1+i, m+i

	p.sign = make([]int, len(p.v))
	for v := range p.v {
		p.sign[v] = p.v[v][col].Sign()
		z := p.z[v]
		if p.sign[v] == 0 {
			z = z.Clone()
			_ = z.Add(row) // row < m+k by construction
		}
		if p.sign[v] >= 0 {
			plus.v = append(plus.v, p.v[v])
			plus.z = append(plus.z, z.Clone())
		}
		if p.sign[v] <= 0 {
			minus.v = append(minus.v, p.v[v])
			minus.z = append(minus.z, z.Clone())
		}
	}

	for u := range p.v {
		if p.sign[u] <= 0 {
			continue
		}
		for _, w := range p.adj[u] {
			if p.sign[w] >= 0 {
				continue
			}
			cut, z, cerr := crossing(p, u, w, col, row)
			if cerr != nil {
				return nil, nil, cerr
			}
			plus.v = append(plus.v, cut)
			plus.z = append(plus.z, z)
			minus.v = append(minus.v, cut)
			minus.z = append(minus.z, z.Clone())
		}
	}
	p.sign = nil

	if withAdjacency {
		if plus.adj, err = incidence.Adjacency(plus.z); err != nil {
			return nil, nil, err
		}
		if minus.adj, err = incidence.Adjacency(minus.z); err != nil {
			return nil, nil, err
		}
	}

	return minus, plus, nil
}

// crossing returns the point where edge (u, w) meets x_i = 0, with
// x_i(u) > 0 > x_i(w), and its incidence.
func crossing(p *piece, u, w, col, row int) (rational.Vec, incidence.Set, error) {
	xu, xw := p.v[u][col], p.v[w][col]
	den := new(big.Rat).Sub(xu, xw) // > 0
	a := new(big.Rat).Quo(xu, den)  // weight of w
	b := new(big.Rat).Quo(xw, den)
	b.Neg(b) // weight of u
	cut, err := rational.Combine(a, p.v[w], b, p.v[u])
	if err != nil {
		return nil, incidence.Set{}, err
	}
	z, err := p.z[u].Intersection(p.z[w])
	if err != nil {
		return nil, incidence.Set{}, err
	}
	_ = z.Add(row)

	return cut, z, nil
}
