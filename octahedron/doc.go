// SPDX-License-Identifier: MIT

// Package octahedron describes the input format of the k-ReLU kernel and
// computes its exact vertex representation.
//
// 🚀 What is an octahedron input?
//
//	For K variables, the input is an H-representation with one row per
//	nonzero coefficient vector a ∈ {−1,0,1}^K (3^K − 1 rows). Row i is
//	(b_i, a_i) and means b_i + a_i·x ≥ 0. Box bounds are the rows with a
//	single nonzero; the others tighten the region with relational bounds.
//
// Canonical order:
//
//	Rows follow the base-3 counter over the digits (0, +1, −1), coordinate 1
//	most significant, skipping the zero vector. For K=1 this is {+1}, {−1},
//	so row 0 is x ≥ lb and row 1 is x ≤ ub.
//
// The tables are built once at package initialization and never written
// afterwards; concurrent readers need no locking.
//
// Vertex oracle:
//
//	ComputeV enumerates the vertices exactly (package dd), records which rows
//	each vertex is tight on, and derives the vertex adjacency graph used by
//	the orthant splitter to find edges crossing coordinate hyperplanes.
package octahedron
