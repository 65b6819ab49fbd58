// SPDX-License-Identifier: MIT

package quadrant

import (
	"github.com/katalvlaran/krelu/rational"
)

// Lift maps a homogeneous input vertex (1, x1..xK) to the homogeneous
// input/output point (1, x1..xK, y1..yK) with y_i = x_i on Plus coordinates
// and y_i = 0 on Minus ones. The input is not modified.
func Lift(q Quadrant, v rational.Vec) rational.Vec {
	k := q.k
	out := rational.NewVec(2*k + 1)
	for j := 0; j <= k; j++ {
		out[j].Set(v[j])
	}
	for i := 0; i < k; i++ {
		if q.signs[i] == Plus {
			out[1+k+i].Set(v[1+i])
		}
	}

	return out
}

// LiftAll lifts every vertex of vs.
func LiftAll(q Quadrant, vs []rational.Vec) []rational.Vec {
	out := make([]rational.Vec, len(vs))
	for i, v := range vs {
		out[i] = Lift(q, v)
	}

	return out
}

// SignRow returns the homogeneous sign constraint of coordinate i in q over
// K+1 columns: x_i ≥ 0 for Plus, −x_i ≥ 0 for Minus.
func SignRow(q Quadrant, i int) rational.Vec {
	row := rational.NewVec(q.k + 1)
	if q.signs[i] == Plus {
		row[1+i].SetInt64(1)
	} else {
		row[1+i].SetInt64(-1)
	}

	return row
}
