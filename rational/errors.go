// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrNonFinite is returned when a NaN or ±Inf float64 is converted to a rational.
	ErrNonFinite = errors.New("rational: NaN or Inf has no exact rational value")

	// ErrLengthMismatch is returned when two vectors of different lengths are combined.
	ErrLengthMismatch = errors.New("rational: vector length mismatch")

	// ErrReleased is returned when an Arena is used after Release.
	ErrReleased = errors.New("rational: arena already released")
)
