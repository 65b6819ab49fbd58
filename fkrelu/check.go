// SPDX-License-Identifier: MIT

package fkrelu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/krelu/matrix"
	"gonum.org/v1/gonum/floats"
)

// Check verifies that every point lies inside every row of h, where a row c
// and a point p (2K plain coordinates) satisfy c·(1, p) ≥ −tol·scale with
// scale = max(1, ‖c‖∞·‖p‖∞).
//
// Errors: matrix validation errors, ErrInvalidArgument for a negative tol or a
// point of the wrong length, ErrUnsound naming the first violation.
func Check(h matrix.Matrix, points [][]float64, tol float64) error {
	if err := matrix.ValidateNotNil(h); err != nil {
		return fmt.Errorf("Check: %w", err)
	}
	if tol < 0 || math.IsNaN(tol) {
		return fmt.Errorf("Check: tolerance %v: %w", tol, ErrInvalidArgument)
	}
	rows, err := matrix.ToRows(h)
	if err != nil {
		return fmt.Errorf("Check: %w", err)
	}
	for p, pt := range points {
		if err = matrix.ValidateVecLen(pt, h.Cols()-1); err != nil {
			return fmt.Errorf("Check: point %d: %w: %w", p, ErrInvalidArgument, err)
		}
		pn := floats.Norm(pt, math.Inf(1))
		for r, c := range rows {
			val := c[0] + floats.Dot(c[1:], pt)
			scale := math.Max(1, floats.Norm(c, math.Inf(1))*pn)
			if val < -tol*scale {
				return fmt.Errorf("Check: row %d at point %d (%v): value %g: %w", r, p, pt, val, ErrUnsound)
			}
		}
	}

	return nil
}
