// SPDX-License-Identifier: MIT

package seqdb

import "errors"

// Every message is prefixed with "seqdb: ..."; context (path, line number)
// is attached with fmt.Errorf("%w") at the call site.

var (
	// ErrMalformedID indicates a line or argument that does not start with
	// an A-number ("A" followed by decimal digits).
	ErrMalformedID = errors.New("seqdb: malformed A-number")

	// ErrNotFound is returned by Lookup for an A-number absent from the database.
	ErrNotFound = errors.New("seqdb: sequence not found")

	// ErrOutOfRange indicates an entry index outside [0, Len).
	ErrOutOfRange = errors.New("seqdb: index out of range")
)
