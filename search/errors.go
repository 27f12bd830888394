// SPDX-License-Identifier: MIT

package search

import "errors"

var (
	// ErrShortQuery indicates a query with fewer significant terms than MinMatch.
	ErrShortQuery = errors.New("search: query shorter than minimum match")

	// ErrNilDatabase is returned by New without a database.
	ErrNilDatabase = errors.New("search: nil database")
)
