// SPDX-License-Identifier: MIT

// Package krelu computes joint convex relaxations of ReLU activations for
// neural-network verification.
//
// 🚀 What is krelu?
//
//	Abstract interpreters bound each neuron's pre-activation x and must then
//	over-approximate y = max(x, 0). Relaxing K ≤ 4 neurons jointly, using the
//	relational bounds between them, is strictly tighter than relaxing each
//	one alone. krelu turns such an "octahedron" bound into linear
//	constraints over (x, y) that keep every reachable point.
//
// Layout:
//
//	matrix/     float64 boundary matrix (input and output half-spaces)
//	rational/   exact vectors over math/big, per-call ownership arena
//	incidence/  fixed-length bit sets: transpose, maximal filter, adjacency
//	dd/         exact double description (H ↔ V) conversion
//	octahedron/ input format: canonical table, validation, vertex oracle
//	quadrant/   orthant keys, ordered map, exact orthant splitting, lifting
//	fkrelu/     the relaxation pipelines (Compute, ComputeReference, Relu1)
//	cmd/fkrelu/ command line front end (YAML in, YAML out)
//
// Quick example:
//
//	a, _ := octahedron.FromBox([]float64{-1, -2}, []float64{1, 3})
//	h, err := fkrelu.Compute(a)
//	// h has 5 columns: each row c means c·(1, x1, x2, y1, y2) ≥ 0.
//
// Everything is pure: calls share only read-only tables and may run in
// parallel.
package krelu
