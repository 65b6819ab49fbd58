// SPDX-License-Identifier: MIT

package quadrant

import (
	"fmt"
	"strings"
)

// MaxK is the largest supported number of coordinates.
const MaxK = 4

// Sign is the sign of one coordinate inside an orthant.
type Sign int8

const (
	// Minus marks x_i ≤ 0; ReLU maps the coordinate to 0.
	Minus Sign = iota
	// Plus marks x_i ≥ 0; ReLU is the identity on the coordinate.
	Plus
)

// String returns "-" or "+".
func (s Sign) String() string {
	if s == Plus {
		return "+"
	}

	return "-"
}

// Quadrant is an immutable sign sequence of length K. It is comparable and
// therefore usable as a map key.
type Quadrant struct {
	k     int
	signs [MaxK]Sign
}

// New builds a quadrant from explicit signs.
// Errors: ErrBadK.
func New(signs ...Sign) (Quadrant, error) {
	if len(signs) < 1 || len(signs) > MaxK {
		return Quadrant{}, fmt.Errorf("New(%d signs): %w", len(signs), ErrBadK)
	}
	q := Quadrant{k: len(signs)}
	copy(q.signs[:], signs)

	return q, nil
}

// All returns the 2^k quadrants in lexicographic order.
// Errors: ErrBadK.
func All(k int) ([]Quadrant, error) {
	if k < 1 || k > MaxK {
		return nil, fmt.Errorf("All(%d): %w", k, ErrBadK)
	}
	out := make([]Quadrant, 0, 1<<k)
	for code := 0; code < 1<<k; code++ {
		q := Quadrant{k: k}
		for i := 0; i < k; i++ {
			if code&(1<<(k-1-i)) != 0 {
				q.signs[i] = Plus
			}
		}
		out = append(out, q)
	}

	return out, nil
}

// K returns the number of coordinates.
func (q Quadrant) K() int { return q.k }

// At returns the sign of coordinate i.
func (q Quadrant) At(i int) Sign { return q.signs[i] }

// With returns a copy of q with coordinate i set to s.
func (q Quadrant) With(i int, s Sign) Quadrant {
	q.signs[i] = s

	return q
}

// Less orders quadrants lexicographically over their signs (shorter first on ties).
func (q Quadrant) Less(o Quadrant) bool {
	n := min(q.k, o.k)
	for i := 0; i < n; i++ {
		if q.signs[i] != o.signs[i] {
			return q.signs[i] < o.signs[i]
		}
	}

	return q.k < o.k
}

// String renders the signs, e.g. "+-".
func (q Quadrant) String() string {
	var b strings.Builder
	for i := 0; i < q.k; i++ {
		b.WriteString(q.signs[i].String())
	}

	return b.String()
}
