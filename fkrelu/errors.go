// SPDX-License-Identifier: MIT

package fkrelu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument covers every malformed input: K out of range, wrong
	// row count, non-canonical coefficients, non-finite values, an empty
	// region, and K=1 bounds that do not straddle zero.
	ErrInvalidArgument = errors.New("fkrelu: invalid argument")

	// ErrInternal signals a broken internal invariant (incidence sizes that do
	// not match the vertex or constraint counts). Never expected for valid input.
	ErrInternal = errors.New("fkrelu: internal invariant violation")

	// ErrBoundsNotCrossing is returned by Relu1 unless lb < 0 < ub.
	ErrBoundsNotCrossing = fmt.Errorf("%w: expecting non-trivial input where lb < 0 < ub", ErrInvalidArgument)

	// ErrUnsound is returned by Check when a point violates a row.
	ErrUnsound = errors.New("fkrelu: constraint excludes a reachable point")
)

// invalidf tags err as an invalid-argument failure of op.
func invalidf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
}

// internalf tags a broken invariant of op.
func internalf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInternal, fmt.Sprintf(format, args...))
}
