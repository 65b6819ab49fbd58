// SPDX-License-Identifier: MIT

package dd

import (
	"errors"
	"fmt"
)

// ErrorType is the status code of a failed conversion.
type ErrorType int

const (
	// NoError is the success status; it never appears inside a ConversionError.
	NoError ErrorType = iota
	// ImproperInputFormat: ragged rows, too few columns, or a generator whose
	// leading coordinate is not positive.
	ImproperInputFormat
	// EmptyVRepresentation: a generator matrix with no rows.
	EmptyVRepresentation
	// UnboundedInput: the inequalities do not describe a bounded set.
	UnboundedInput
	// NumericallyInconsistent: an internal exactness check failed.
	NumericallyInconsistent
)

// String names the status code.
func (e ErrorType) String() string {
	switch e {
	case NoError:
		return "NoError"
	case ImproperInputFormat:
		return "ImproperInputFormat"
	case EmptyVRepresentation:
		return "EmptyVRepresentation"
	case UnboundedInput:
		return "UnboundedInput"
	case NumericallyInconsistent:
		return "NumericallyInconsistent"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(e))
	}
}

// ErrConversion matches every *ConversionError via errors.Is.
var ErrConversion = errors.New("dd: conversion failed")

// ConversionError reports a non-success status together with the operation.
type ConversionError struct {
	Op   string
	Code ErrorType
}

// Error implements error.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("dd: %s: conversion failed with error %d (%s)", e.Op, int(e.Code), e.Code)
}

// Is makes errors.Is(err, ErrConversion) true for any ConversionError.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// fail builds a ConversionError.
func fail(op string, code ErrorType) error { return &ConversionError{Op: op, Code: code} }
