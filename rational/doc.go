// SPDX-License-Identifier: MIT

// Package rational is the exact arithmetic substrate of krelu.
//
// Every geometric stage between reading the input matrix and writing the
// output matrix works on Vec values: fixed-length vectors of *big.Rat in
// homogeneous form (leading constant followed by the coordinates).
//
// Ownership:
//
//	Vectors produced during one relaxation call are registered in an Arena
//	and released together when the call returns. Release is deterministic
//	and runs on every exit path (callers defer it), mirroring the explicit
//	allocate/free lifecycle of the GMP rationals the kernel was designed for.
//
// IntVec is the integer companion used inside cone iterations: Primitive
// clears denominators once, after which DotInt and CombineInt never reduce
// fractions.
//
// Complexity:
//   - Dot, Combine, ScaleMaxAbs: O(n) big.Rat operations.
//   - DotInt, CombineInt: O(n) big.Int operations plus one gcd pass.
//   - Arena.Release: O(total entries).
package rational
