// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// Both failure modes of field arithmetic are surfaced through these values;
// callers match them with errors.Is.

package field

import "errors"

var (
	// ErrMalformed is returned when a decimal string is empty, carries a
	// non-digit character, or is otherwise not a field literal.
	ErrMalformed = errors.New("field: malformed element")

	// ErrDivisionByZero is returned by Inv and Div when the divisor is zero.
	ErrDivisionByZero = errors.New("field: division by zero")
)
