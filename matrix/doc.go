// SPDX-License-Identifier: MIT

// Package matrix is the floating-point boundary of krelu.
//
// The matrix package provides:
//
//   - The Matrix interface: bounds-checked, error-returning element access.
//   - Dense: a row-major float64 matrix with a finite-value numeric policy.
//   - Facades (NewDenseFromRows, ToRows, AllClose) for moving half-space
//     matrices in and out of plain slices.
//   - Central validators (ValidateNotNil, ValidateShape, ValidateFinite).
//
// Every row of a half-space matrix is one constraint in homogeneous form:
// row c means c[0] + c[1]*z1 + … + c[n]*zn ≥ 0.
//
// Exact arithmetic never happens here; see package rational.
package matrix
