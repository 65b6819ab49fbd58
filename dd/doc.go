// SPDX-License-Identifier: MIT

// Package dd converts polytopes between their half-space (H) and vertex (V)
// representations with the double description method, in exact rational
// arithmetic.
//
// 🚀 What is the double description method?
//
//	Given a cone {z : a_i·z ≥ 0}, it starts from a simplicial cone spanned by
//	a row basis and adds the remaining constraints one at a time. Each step
//	keeps the rays on the non-negative side and creates one new ray on the
//	constraint's hyperplane for every adjacent (positive, negative) ray pair.
//	Adjacency is decided combinatorially from the zero sets of the rays.
//	Rays are primitive integer vectors during the iteration, and their final
//	zero sets are the incidence reported by Polyhedron.
//
// Conventions:
//   - All vectors are homogeneous. An inequality row c means
//     c0 + c1·x1 + … + cd·xd ≥ 0; a generator row is (1, x1, …, xd).
//   - Only polytopes (bounded) are supported; rays and unbounded inputs are
//     reported as conversion errors.
//   - Lower-dimensional inputs are handled by splitting off the lineality
//     space of the polar cone; implicit equalities come back as ± pairs.
//
// Usage (mirrors cddlib: build matrix → convert → copy result):
//
//	m, _ := dd.NewMatrix(len(vertices), d+1, dd.Generator)
//	copy(m.Rows, vertices)
//	poly, err := dd.Convert(m)
//	if err != nil {
//		var ce *dd.ConversionError
//		errors.As(err, &ce) // ce.Code carries the status
//	}
//	h := poly.Inequalities()
//
// Determinism:
//   - Rows are processed in input order and rays are kept in creation order,
//     so identical inputs give identical outputs.
//
// Complexity:
//   - Output-sensitive; worst case exponential in the dimension. krelu calls
//     it with dimension ≤ 9 and at most a few hundred rows.
package dd
