// SPDX-License-Identifier: MIT
// Package: series
//
// Purpose:
//   - Sentinel errors for every precondition the algebra checks.
//   - All precondition errors wrap ErrInvalidOperand so one errors.Is
//     check classifies them; the specific sentinel names the cause.

package series

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperand is the root of every precondition failure.
	ErrInvalidOperand = errors.New("series: invalid operand")

	// ErrNotInvertible is returned when dividing by a series with zero constant term.
	ErrNotInvertible = fmt.Errorf("%w: constant term is zero", ErrInvalidOperand)

	// ErrComposeConstant is returned when the inner series of a composition
	// (or the argument of Exp) has a nonzero constant term.
	ErrComposeConstant = fmt.Errorf("%w: inner constant term is nonzero", ErrInvalidOperand)

	// ErrReversion is returned by Inverse unless f[0] = 0 and f[1] ≠ 0.
	ErrReversion = fmt.Errorf("%w: reversion needs f[0] = 0 and f[1] != 0", ErrInvalidOperand)

	// ErrNonUnit is returned when a root or logarithm needs f[0] = 1.
	ErrNonUnit = fmt.Errorf("%w: constant term is not one", ErrInvalidOperand)

	// ErrExponent is returned for a non-positive root index.
	ErrExponent = fmt.Errorf("%w: root index must be positive", ErrInvalidOperand)

	// ErrZeroTerm is returned by PointDiv when a divisor coefficient is zero.
	ErrZeroTerm = fmt.Errorf("%w: zero divisor coefficient", ErrInvalidOperand)

	// ErrMalformed is returned by Parse on empty input or a bad term.
	ErrMalformed = errors.New("series: malformed input")

	// ErrUnknownOp is returned when an operator name is not registered.
	ErrUnknownOp = errors.New("series: unknown operator")
)
