// SPDX-License-Identifier: MIT

package fkrelu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/krelu/dd"
	"github.com/katalvlaran/krelu/matrix"
	"github.com/katalvlaran/krelu/octahedron"
	"github.com/katalvlaran/krelu/quadrant"
	"github.com/katalvlaran/krelu/rational"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// ComputeReference is the independent cross-check of Compute. For each of
// the 2^K orthants it converts a's rows plus the orthant's sign rows to
// vertices, lifts every vertex to (1, x, y), and converts the full lifted
// point set to facets in one step. Each output row is scaled so its largest
// absolute coefficient is 1.
//
// K=1 goes through the same path; inputs that do not straddle zero are
// accepted.
//
// Errors: ErrInvalidArgument (malformed input or empty region),
// ErrInternal (lifted point count mismatch), *dd.ConversionError from the
// final conversion.
func ComputeReference(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts)
	k, err := octahedron.Validate(a)
	if err != nil {
		return nil, invalidf("ComputeReference", err)
	}
	rows, err := octahedron.ExactRows(a)
	if err != nil {
		return nil, invalidf("ComputeReference", err)
	}
	quads, err := quadrant.All(k)
	if err != nil {
		return nil, invalidf("ComputeReference", err)
	}

	pieces := quadrant.NewMap[[]rational.Vec]()
	total := 0
	for _, q := range quads {
		hm, err := dd.NewMatrix(0, k+1, dd.Inequality)
		if err != nil {
			return nil, fmt.Errorf("ComputeReference: %w", err)
		}
		hm.Rows = append(hm.Rows, rows...)
		for i := 0; i < k; i++ {
			hm.Rows = append(hm.Rows, quadrant.SignRow(q, i))
		}
		poly, err := dd.Convert(hm)
		if err != nil {
			return nil, fmt.Errorf("ComputeReference: orthant %s: %w", q, err)
		}
		vs := poly.Generators().Rows
		pieces.Set(q, vs)
		total += len(vs)
		o.logger.Debug("fkrelu: reference orthant", zap.Stringer("quadrant", q), zap.Int("vertices", len(vs)))
	}
	if total == 0 {
		return nil, invalidf("ComputeReference", octahedron.ErrEmptyRegion)
	}

	gm, err := dd.NewMatrix(total, 2*k+1, dd.Generator)
	if err != nil {
		return nil, fmt.Errorf("ComputeReference: %w", err)
	}
	counter := 0
	pieces.Range(func(q quadrant.Quadrant, vs []rational.Vec) bool {
		for _, v := range vs {
			if counter >= total {
				counter++
				continue
			}
			gm.Rows[counter] = quadrant.Lift(q, v)
			counter++
		}
		return true
	})
	if counter != total {
		return nil, internalf("ComputeReference", "lifted %d points, counted %d", counter, total)
	}

	poly, err := dd.Convert(gm)
	if err != nil {
		return nil, fmt.Errorf("ComputeReference: %w", err)
	}
	ineq := poly.Inequalities().Rows
	out, err := matrix.NewDense(len(ineq), 2*k+1)
	if err != nil {
		return nil, internalf("ComputeReference", "%v", err)
	}
	for i, r := range ineq {
		row := r.Float64s()
		if n := floats.Norm(row, math.Inf(1)); n > 0 {
			floats.Scale(1/n, row)
		}
		if err = out.SetRow(i, row); err != nil {
			return nil, internalf("ComputeReference", "row %d: %v", i, err)
		}
	}

	return out, nil
}
