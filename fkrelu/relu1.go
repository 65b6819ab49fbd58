// SPDX-License-Identifier: MIT

package fkrelu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/krelu/matrix"
)

// Relu1 returns the exact convex hull of {(x, max(x,0)) : lb ≤ x ≤ ub} as
// three rows over (1, x, y):
//
//	y ≥ 0              → [0,  0,  1]
//	y ≥ x              → [0, −1,  1]
//	y ≤ μx + λ         → [λ,  μ, −1]
//
// with μ = ub/(ub−lb) and λ = −lb·ub/(ub−lb). The last row is tight at
// (lb, 0) and (ub, ub).
//
// Errors: ErrInvalidArgument for non-finite or inverted bounds,
// ErrBoundsNotCrossing unless lb < 0 < ub.
func Relu1(lb, ub float64) (*matrix.Dense, error) {
	if math.IsNaN(lb) || math.IsNaN(ub) || math.IsInf(lb, 0) || math.IsInf(ub, 0) {
		return nil, invalidf("Relu1", matrix.ErrNaNInf)
	}
	if lb > ub {
		return nil, fmt.Errorf("Relu1: lower bound %v above upper bound %v: %w", lb, ub, ErrInvalidArgument)
	}
	if !(lb < 0 && 0 < ub) {
		return nil, fmt.Errorf("Relu1(%v, %v): %w", lb, ub, ErrBoundsNotCrossing)
	}

	lmd := -lb * ub / (ub - lb)
	mu := ub / (ub - lb)

	return matrix.NewDenseFromRows([][]float64{
		{0, 0, 1},     // y >= 0
		{0, -1, 1},    // y >= x
		{lmd, mu, -1}, // y <= mu*x + lmd
	})
}
