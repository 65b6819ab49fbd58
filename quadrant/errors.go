// SPDX-License-Identifier: MIT

package quadrant

import "errors"

var (
	// ErrBadK signals a dimension outside [1, MaxK].
	ErrBadK = errors.New("quadrant: K out of range")

	// ErrShape signals vertex, incidence or adjacency slices that do not fit together.
	ErrShape = errors.New("quadrant: inconsistent split input")
)
