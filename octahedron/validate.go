// SPDX-License-Identifier: MIT

package octahedron

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/krelu/matrix"
	"github.com/katalvlaran/krelu/rational"
)

// Validate checks that a is an octahedron input and returns K.
// Stage 1: K = Cols − 1 must lie in [1, MaxK].
// Stage 2: Rows must equal 3^K − 1.
// Stage 3: every row's K trailing coefficients must equal the canonical row.
// Stage 4: all entries must be finite.
// Errors: matrix.ErrNilMatrix, ErrBadK, ErrRowCount, ErrCoefficients, matrix.ErrNaNInf.
// Complexity: O(3^K · K).
func Validate(a matrix.Matrix) (int, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("Validate: %w", err)
	}
	k := a.Cols() - 1
	if k < 1 || k > MaxK {
		return 0, fmt.Errorf("Validate: K=%d: %w", k, ErrBadK)
	}
	if want := Pow3[k] - 1; a.Rows() != want {
		return 0, fmt.Errorf("Validate: %d rows, want %d: %w", a.Rows(), want, ErrRowCount)
	}
	coefs := coefTable[k]
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < k; j++ {
			v, _ := a.At(i, j+1) // shape checked above
			if v != float64(coefs[i][j]) {
				return 0, fmt.Errorf("Validate: row %d col %d is %v, want %d: %w", i, j+1, v, coefs[i][j], ErrCoefficients)
			}
		}
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return 0, fmt.Errorf("Validate: %w", err)
	}

	return k, nil
}

// ExactRows converts every row of a to an exact rational vector.
// Errors: rational.ErrNonFinite.
func ExactRows(a matrix.Matrix) ([]rational.Vec, error) {
	rows, err := matrix.ToRows(a)
	if err != nil {
		return nil, fmt.Errorf("ExactRows: %w", err)
	}
	out := make([]rational.Vec, len(rows))
	for i, r := range rows {
		if out[i], err = rational.FromFloat64s(r); err != nil {
			return nil, fmt.Errorf("ExactRows: row %d: %w", i, err)
		}
	}

	return out, nil
}

// FromBox builds the octahedron input whose region is exactly the box
// [lower, upper]. Each constant b = −min_{x∈box} a·x is computed exactly and
// rounded towards +Inf, so the float rows never cut off a point of the box.
// Errors: ErrBadBounds, ErrBadK.
func FromBox(lower, upper []float64) (*matrix.Dense, error) {
	k := len(lower)
	if len(upper) != k {
		return nil, fmt.Errorf("FromBox: %d lower vs %d upper: %w", k, len(upper), ErrBadBounds)
	}
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("FromBox: K=%d: %w", k, ErrBadK)
	}
	lo, err := rational.FromFloat64s(lower)
	if err != nil {
		return nil, fmt.Errorf("FromBox: %v: %w", err, ErrBadBounds)
	}
	hi, err := rational.FromFloat64s(upper)
	if err != nil {
		return nil, fmt.Errorf("FromBox: %v: %w", err, ErrBadBounds)
	}
	for j := 0; j < k; j++ {
		if lo[j].Cmp(hi[j]) > 0 {
			return nil, fmt.Errorf("FromBox: lower[%d] > upper[%d]: %w", j, j, ErrBadBounds)
		}
	}

	coefs := coefTable[k]
	out, err := matrix.NewDense(len(coefs), k+1)
	if err != nil {
		return nil, fmt.Errorf("FromBox: %w", err)
	}
	for i, a := range coefs {
		b := new(big.Rat)
		for j, c := range a {
			switch c {
			case 1:
				b.Sub(b, lo[j]) // min of x_j is lower_j
			case -1:
				b.Add(b, hi[j]) // min of −x_j is −upper_j
			}
		}
		row := make([]float64, k+1)
		row[0] = roundUp(b)
		for j, c := range a {
			row[j+1] = float64(c)
		}
		if err = out.SetRow(i, row); err != nil {
			return nil, fmt.Errorf("FromBox: %w", err)
		}
	}

	return out, nil
}

// roundUp returns the smallest float64 ≥ r.
func roundUp(r *big.Rat) float64 {
	f, exact := r.Float64()
	if exact {
		return f
	}
	if new(big.Rat).SetFloat64(f).Cmp(r) < 0 {
		return math.Nextafter(f, math.Inf(1))
	}

	return f
}
