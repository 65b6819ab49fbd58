// SPDX-License-Identifier: MIT

package fkrelu

import (
	"github.com/katalvlaran/krelu/dd"
	"github.com/katalvlaran/krelu/quadrant"
	"github.com/katalvlaran/krelu/rational"
	"go.uber.org/zap"
)

// hull is one node of the merge tree: a polytope over (1, x, y) given by its
// vertices. h holds its constraints when they are known without a
// conversion; a nil h means they are computed on demand. A nil *hull is the
// empty set.
type hull struct {
	v []rational.Vec
	h []rational.Vec
}

// decompose computes the constraints of the convex hull of every orthant's
// region lifted to (x, y), merging coordinates from K−1 down to 0.
func decompose(pdds *quadrant.Map[PDD], k int, log *zap.Logger) ([]rational.Vec, error) {
	order := make([]int, k)
	for i := range order {
		order[i] = k - 1 - i
	}

	return decomposeInOrder(pdds, k, order, log)
}

// decomposeInOrder is decompose with the coordinate merge order given as a
// permutation of 0..K−1.
//
// Leaves are the lifted orthant PDDs: vertices via quadrant.Lift, constraints
// padded with zero y-columns plus the equalities y_i = x_i (Plus) or y_i = 0
// (Minus). Each step pairs the hulls that differ only in coordinate i and
// replaces them by the hull of their union. A pair with an empty side passes
// the other side through unchanged, constraints included.
//
// Merged vertices need no pruning: y_i ≥ 0 and y_i − x_i ≥ 0 hold on both
// sides of a merge along i and their faces are exactly the Minus and the
// Plus side, so every vertex of either side stays extreme. Constraints of a
// merged hull are therefore computed once, at the root.
func decomposeInOrder(pdds *quadrant.Map[PDD], k int, order []int, log *zap.Logger) ([]rational.Vec, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !isPermutation(order, k) {
		return nil, internalf("decompose", "merge order %v is not a permutation of %d coordinates", order, k)
	}
	all, err := quadrant.All(k)
	if err != nil {
		return nil, internalf("decompose", "%v", err)
	}
	level := quadrant.NewMap[*hull]()
	for _, q := range all {
		p, ok := pdds.Get(q)
		if !ok || p.Empty() {
			level.Set(q, nil)
			continue
		}
		if p.Dim != k+1 {
			return nil, internalf("decompose", "%s: PDD dimension %d, want %d", q, p.Dim, k+1)
		}
		level.Set(q, &hull{v: quadrant.LiftAll(q, p.V), h: liftConstraints(q, p.H)})
	}

	for _, i := range order {
		next := quadrant.NewMap[*hull]()
		for _, q := range level.Keys() {
			if q.At(i) != quadrant.Minus {
				continue
			}
			lo, _ := level.Get(q)
			hi, _ := level.Get(q.With(i, quadrant.Plus))
			next.Set(q, mergeHulls(lo, hi))
		}
		level = next
		log.Debug("fkrelu: merged coordinate", zap.Int("coordinate", i), zap.Int("hulls", level.Len()))
	}

	if level.Len() != 1 {
		return nil, internalf("decompose", "%d hulls left after merging", level.Len())
	}
	var root *hull
	level.Range(func(_ quadrant.Quadrant, h *hull) bool {
		root = h
		return false
	})
	if root == nil {
		return nil, internalf("decompose", "no orthant is reached")
	}
	if root.h != nil {
		return root.h, nil
	}
	log.Debug("fkrelu: faceting root", zap.Int("vertices", len(root.v)))

	return facetHull(root.v, 2*k+1)
}

func isPermutation(order []int, k int) bool {
	if len(order) != k {
		return false
	}
	seen := make([]bool, k)
	for _, i := range order {
		if i < 0 || i >= k || seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}

// liftConstraints pads the K+1 columns of each row of h with K zero y-columns
// and appends the two rows of each output equality of q.
func liftConstraints(q quadrant.Quadrant, h []rational.Vec) []rational.Vec {
	k := q.K()
	n := 2*k + 1
	out := make([]rational.Vec, 0, len(h)+2*k)
	for _, row := range h {
		lifted := rational.NewVec(n)
		for j := range row {
			lifted[j].Set(row[j])
		}
		out = append(out, lifted)
	}
	for i := 0; i < k; i++ {
		up, down := rational.NewVec(n), rational.NewVec(n)
		up[1+k+i].SetInt64(1)
		down[1+k+i].SetInt64(-1)
		if q.At(i) == quadrant.Plus {
			up[1+i].SetInt64(-1) // y_i − x_i ≥ 0
			down[1+i].SetInt64(1)
		}
		out = append(out, up, down)
	}

	return out
}

// mergeHulls returns conv(a ∪ b) by its vertices; constraints are left to
// the root.
func mergeHulls(a, b *hull) *hull {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	return &hull{v: dedupe(append(append(make([]rational.Vec, 0, len(a.v)+len(b.v)), a.v...), b.v...))}
}

// facetHull converts the vertex set pts over n homogeneous columns to
// constraints.
func facetHull(pts []rational.Vec, n int) ([]rational.Vec, error) {
	gm, err := dd.NewMatrix(0, n, dd.Generator)
	if err != nil {
		return nil, err
	}
	gm.Rows = pts
	poly, err := dd.Convert(gm)
	if err != nil {
		return nil, err
	}

	return poly.Inequalities().Rows, nil
}

// dedupe drops repeated vectors, keeping first occurrences in order.
func dedupe(vs []rational.Vec) []rational.Vec {
	seen := make(map[string]struct{}, len(vs))
	out := vs[:0]
	for _, v := range vs {
		key := v.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	return out
}
