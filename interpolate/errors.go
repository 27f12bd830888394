// SPDX-License-Identifier: MIT

package interpolate

import "errors"

var (
	// ErrDegenerate indicates that the leading polynomial of a recurrence
	// vanishes at the index needed to predict the next term.
	ErrDegenerate = errors.New("interpolate: leading coefficient vanishes")

	// ErrShortSequence indicates fewer known terms than the recurrence order.
	ErrShortSequence = errors.New("interpolate: sequence shorter than recurrence order")
)
