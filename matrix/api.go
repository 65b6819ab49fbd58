// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for moving half-space matrices
//     in and out of plain [][]float64 form (YAML/JSON documents, tests).
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Facades never change loop orders; rows are copied in index order.
//   - Validation is centralized in validators.go and Dense.SetRow.

package matrix

import "math"

// matrixErrorf wraps an error with a facade tag.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// NewDenseFromRows builds a *Dense from a rectangular [][]float64.
// Errors: ErrInvalidDimensions (no rows / empty rows), ErrDimensionMismatch
// (ragged input), ErrNaNInf (non-finite entry).
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf("NewDenseFromRows", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf("NewDenseFromRows", err)
	}
	for i, r := range rows {
		if err = m.SetRow(i, r); err != nil {
			return nil, matrixErrorf("NewDenseFromRows", err)
		}
	}

	return m, nil
}

// ToRows exports m as a freshly allocated [][]float64.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j], _ = m.At(i, j) // in range by construction
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateShape(a, b.Rows(), b.Cols()); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, _ := a.At(i, j)
			y, _ := b.At(i, j)
			if math.Abs(x-y) > atol+rtol*math.Abs(y) {
				return false, nil
			}
		}
	}

	return true, nil
}
