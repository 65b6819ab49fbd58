// SPDX-License-Identifier: MIT

package fkrelu

import (
	"sort"

	"github.com/katalvlaran/krelu/incidence"
	"github.com/katalvlaran/krelu/quadrant"
	"github.com/katalvlaran/krelu/rational"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// reduceQuadrant turns the splitter output of orthant q into a PDD.
//
// The candidate constraints are the m input rows followed by the K sign rows
// of q. Candidates tight on every vertex are implicit equalities and are all
// kept. Among the others a candidate is kept iff its vertex set is not
// strictly contained in another one's; among equal vertex sets the lowest
// index wins. Kept input rows are copied from rows exactly.
func reduceQuadrant(q quadrant.Quadrant, info *quadrant.Info, rows []rational.Vec, k int) (PDD, error) {
	if info.Empty() {
		return PDD{Dim: k + 1}, nil
	}
	if len(info.VToH) != len(info.V) {
		return PDD{}, internalf("reduceQuadrant", "%s: %d vertices but %d incidence sets", q, len(info.V), len(info.VToH))
	}
	hToV, err := incidence.Transpose(info.VToH)
	if err != nil {
		return PDD{}, internalf("reduceQuadrant", "%s: %v", q, err)
	}
	m := len(rows)
	if len(hToV) != m+k {
		return PDD{}, internalf("reduceQuadrant", "%s: %d candidate constraints, want %d", q, len(hToV), m+k)
	}
	keep, err := reduceIndexes(hToV, len(info.V))
	if err != nil {
		return PDD{}, internalf("reduceQuadrant", "%s: %v", q, err)
	}

	out := PDD{
		Dim:       k + 1,
		V:         info.V,
		H:         make([]rational.Vec, 0, len(keep)),
		Incidence: make([]incidence.Set, 0, len(keep)),
	}
	for _, idx := range keep {
		if idx < m {
			out.H = append(out.H, rows[idx].Clone())
		} else {
			out.H = append(out.H, quadrant.SignRow(q, idx-m))
		}
		out.Incidence = append(out.Incidence, hToV[idx])
	}

	return out, nil
}

// reduceIndexes returns, ascending, the candidates kept by reduceQuadrant.
func reduceIndexes(hToV []incidence.Set, nv int) ([]int, error) {
	var equalities, rest []int
	for i, s := range hToV {
		if s.Count() == nv {
			equalities = append(equalities, i)
		} else {
			rest = append(rest, i)
		}
	}
	sub := make([]incidence.Set, len(rest))
	for i, idx := range rest {
		sub[i] = hToV[idx]
	}
	maximal, err := incidence.MaximalIndexes(sub)
	if err != nil {
		return nil, err
	}

	keep := make([]int, 0, len(equalities)+len(maximal))
	keep = append(keep, equalities...)
	for _, i := range maximal {
		keep = append(keep, rest[i])
	}
	sort.Ints(keep)

	return keep, nil
}

// reduceAll reduces every orthant of infos, one goroutine per orthant when
// parallel is on. The result map has the same keys as infos.
func reduceAll(infos *quadrant.Map[*quadrant.Info], rows []rational.Vec, k int, o Options) (*quadrant.Map[PDD], error) {
	keys := infos.Keys()
	pdds := make([]PDD, len(keys))
	reduce := func(i int) error {
		info, _ := infos.Get(keys[i])
		p, err := reduceQuadrant(keys[i], info, rows, k)
		pdds[i] = p

		return err
	}

	if o.parallel {
		var g errgroup.Group
		for i := range keys {
			g.Go(func() error { return reduce(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range keys {
			if err := reduce(i); err != nil {
				return nil, err
			}
		}
	}

	out := quadrant.NewMap[PDD]()
	for i, q := range keys {
		out.Set(q, pdds[i])
		o.logger.Debug("fkrelu: reduced orthant",
			zap.Stringer("quadrant", q),
			zap.Int("vertices", len(pdds[i].V)),
			zap.Int("constraints", len(pdds[i].H)))
	}

	return out, nil
}
