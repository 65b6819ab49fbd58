// SPDX-License-Identifier: MIT

package incidence

import "errors"

var (
	// ErrSizeMismatch signals sets of different lengths where equal lengths are
	// required. It always indicates an internal invariant violation.
	ErrSizeMismatch = errors.New("incidence: set size mismatch")

	// ErrEmpty is returned by Transpose for an empty input (the column count is unknown).
	ErrEmpty = errors.New("incidence: empty input")

	// ErrOutOfRange signals an element index outside [0, Len).
	ErrOutOfRange = errors.New("incidence: index out of range")
)
