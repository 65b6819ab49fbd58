// SPDX-License-Identifier: MIT

// Package fkrelu computes sound linear relaxations of the joint ReLU of up to
// four neurons.
//
// Given an octahedron input over K pre-activation variables x (see package
// octahedron), it returns half-spaces over (x, y) with y = ReLU(x) that
// contain every reachable input/output pair. Relaxing K neurons jointly is
// strictly tighter than relaxing them one by one.
//
// Pipeline (Compute):
//
//	validate → vertices (exact) → split by orthant → reduce each orthant
//	→ merge orthants → float output
//
//   - K = 1 bypasses the pipeline with the closed form of Relu1.
//   - Per-orthant reduction runs concurrently (WithParallel); exact
//     arithmetic keeps the output independent of scheduling.
//   - Merging lifts one output coordinate at a time and unions the vertices of
//     each pair; the root is re-faceted exactly once. The result is the convex
//     hull of the lifted pieces.
//
// The reference pipeline (ComputeReference) takes per-orthant vertices
// straight from the double description engine, lifts them the same way and
// converts them to facets in one shot. It is used to cross-check Compute.
//
// Output convention: each row c over (1, x1..xK, y1..yK) means c·(1,x,y) ≥ 0.
//
// Both entry points are pure: no state survives a call and concurrent calls
// share nothing but read-only tables.
package fkrelu
