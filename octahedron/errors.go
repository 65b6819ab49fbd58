// SPDX-License-Identifier: MIT

package octahedron

import "errors"

var (
	// ErrBadK signals K = columns − 1 outside [1, MaxK].
	ErrBadK = errors.New("octahedron: K should be within allowed range")

	// ErrRowCount signals a row count different from 3^K − 1.
	ErrRowCount = errors.New("octahedron: unexpected number of rows in the input")

	// ErrCoefficients signals a row whose coefficients differ from the canonical table.
	ErrCoefficients = errors.New("octahedron: input is not of correct format")

	// ErrEmptyRegion signals an input whose half-spaces have an empty intersection.
	ErrEmptyRegion = errors.New("octahedron: input region is empty")

	// ErrBadBounds signals box bounds that are non-finite, unequal in length or lower > upper.
	ErrBadBounds = errors.New("octahedron: invalid box bounds")
)
