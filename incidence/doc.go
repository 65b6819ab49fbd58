// SPDX-License-Identifier: MIT

// Package incidence models the vertex/constraint incidence relation of a
// polytope as fixed-length bit sets.
//
// What & Why:
//
//	A Set records, for one vertex, which constraints it satisfies with
//	equality (V→H), or, for one constraint, which vertices lie on it (H→V).
//	Its length is fixed at construction and must match the paired dimension;
//	every operation that combines sets checks the lengths and reports
//	ErrSizeMismatch instead of silently extending.
//
// Operations:
//   - Transpose: V→H ⇄ H→V (an involution on rectangular inputs).
//   - MaximalIndexes: the facet filter. Keeps the sets that are maximal under
//     inclusion, one representative (lowest index) per duplicate class.
//   - Adjacency: combinatorial edge test for polytope vertices.
//
// Complexity:
//   - Transpose: O(rows·cols).
//   - MaximalIndexes, Adjacency: O(n²·w) and O(n³·w), w = words per set.
package incidence
