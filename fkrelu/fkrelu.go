// SPDX-License-Identifier: MIT

package fkrelu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/krelu/matrix"
	"github.com/katalvlaran/krelu/octahedron"
	"github.com/katalvlaran/krelu/quadrant"
	"github.com/katalvlaran/krelu/rational"
	"go.uber.org/zap"
)

// Compute returns a sound relaxation of y = ReLU(x) over the octahedron
// input a: a matrix with 2K+1 columns whose every row c satisfies
// c·(1, x, ReLU(x)) ≥ 0 for every x in the region of a.
//
// Contract:
//   - a must pass octahedron.Validate; K=1 inputs are delegated to Relu1 with
//     lb = −a[0][0] and ub = a[1][0].
//   - Every row is tight on some lifted vertex; rows are max-abs normalized
//     unless WithNormalize(false) is given.
//   - The result depends only on a, never on scheduling.
//
// Errors: ErrInvalidArgument (wrapping the octahedron or matrix cause),
// ErrBoundsNotCrossing (K=1), ErrInternal.
func Compute(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts)
	k, err := octahedron.Validate(a)
	if err != nil {
		return nil, invalidf("Compute", err)
	}
	if k == 1 {
		b0, _ := a.At(0, 0) // shape validated
		b1, _ := a.At(1, 0)
		o.logger.Debug("fkrelu: closed form", zap.Float64("lb", -b0), zap.Float64("ub", b1))

		return Relu1(-b0, b1)
	}

	arena := rational.NewArena()
	defer arena.Release()

	infos, oct, err := splitRegion(a, arena, o.logger)
	if err != nil {
		return nil, err
	}
	pdds, err := reduceAll(infos, oct.Rows, k, o)
	if err != nil {
		return nil, err
	}
	h, err := decompose(pdds, k, o.logger)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	if len(h) == 0 {
		return nil, internalf("Compute", "empty constraint set")
	}

	out, err := toDense(h, 2*k+1, o.normalize)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("fkrelu: relaxation", zap.Int("rows", out.Rows()), zap.Stringer("h", out))

	return out, nil
}

// splitRegion runs the vertex oracle on a and splits its vertices by orthant.
// All exact vectors produced are adopted by arena.
func splitRegion(a matrix.Matrix, arena *rational.Arena, log *zap.Logger) (*quadrant.Map[*quadrant.Info], *octahedron.V, error) {
	oct, err := octahedron.ComputeV(a)
	if err != nil {
		if errors.Is(err, octahedron.ErrEmptyRegion) {
			return nil, nil, invalidf("Compute", err)
		}
		return nil, nil, internalf("Compute", "vertex oracle: %v", err)
	}
	if err = arena.Adopt(oct.Vertices...); err != nil {
		return nil, nil, internalf("Compute", "%v", err)
	}
	log.Debug("fkrelu: vertices", zap.Int("k", oct.K), zap.Int("vertices", len(oct.Vertices)))

	infos, err := quadrant.Split(oct.Vertices, oct.Incidence, oct.Adjacency, oct.K)
	if err != nil {
		return nil, nil, internalf("Compute", "split: %v", err)
	}
	reached := 0
	infos.Range(func(_ quadrant.Quadrant, in *quadrant.Info) bool {
		if in.Empty() {
			return true
		}
		reached++
		err = arena.Adopt(in.V...)
		return err == nil
	})
	if err != nil {
		return nil, nil, internalf("Compute", "%v", err)
	}
	log.Debug("fkrelu: split",
		zap.Int("orthants", infos.Len()),
		zap.Int("reached", reached),
		zap.Int("owned", arena.Len()))

	return infos, oct, nil
}

// LiftedVertices returns the points (x, ReLU(x)) for every vertex of every
// orthant piece of the region of a, as 2K plain coordinates each. Every one
// of them is reachable, so any sound relaxation must contain them all.
//
// Errors: as Compute.
func LiftedVertices(a matrix.Matrix) ([][]float64, error) {
	if _, err := octahedron.Validate(a); err != nil {
		return nil, invalidf("LiftedVertices", err)
	}
	arena := rational.NewArena()
	defer arena.Release()

	infos, _, err := splitRegion(a, arena, zap.NewNop())
	if err != nil {
		return nil, err
	}
	var out [][]float64
	infos.Range(func(q quadrant.Quadrant, in *quadrant.Info) bool {
		for _, v := range in.V {
			out = append(out, quadrant.Lift(q, v).Float64s()[1:])
		}
		return true
	})

	return out, nil
}

// toDense rounds exact rows to a float matrix, max-abs normalizing each row
// first when normalize is set.
func toDense(rows []rational.Vec, cols int, normalize bool) (*matrix.Dense, error) {
	out, err := matrix.NewDense(len(rows), cols)
	if err != nil {
		return nil, internalf("toDense", "%v", err)
	}
	for i, r := range rows {
		if normalize {
			r = r.Clone().ScaleMaxAbs()
		}
		if err = out.SetRow(i, r.Float64s()); err != nil {
			return nil, internalf("toDense", "row %d: %v", i, err)
		}
	}

	return out, nil
}
