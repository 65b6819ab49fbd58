// SPDX-License-Identifier: MIT

package fkrelu

import (
	"github.com/katalvlaran/krelu/incidence"
	"github.com/katalvlaran/krelu/rational"
)

// PDD is the paired description of one orthant's region: exact vertices,
// reduced constraints and their incidence. An empty PDD (no vertices, no
// constraints) marks an orthant the input does not reach.
type PDD struct {
	// Dim is the homogeneous column count of V and H (K+1).
	Dim int
	// V holds vertices (1, x) of the region inside the orthant.
	V []rational.Vec
	// H holds the constraints kept by the reducer, c·(1,x) ≥ 0.
	H []rational.Vec
	// Incidence[h] marks the vertices lying on H[h].
	Incidence []incidence.Set
}

// Empty reports whether the orthant contributes nothing.
func (p PDD) Empty() bool { return len(p.V) == 0 }
