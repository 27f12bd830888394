// SPDX-License-Identifier: MIT

// Package matrix - convenience constructors.
//
// Purpose:
//   - Thin, allocation-explicit builders on top of NewDense for common shapes.
//   - Keep call sites short in the interpolation engine and in tests.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fpseq/field"
)

// NewIdentity returns the n×n identity matrix.
func NewIdentity[F field.Element[F]](n int) (*Dense[F], error) {
	m, err := NewDense[F](n, n)
	if err != nil {
		return nil, err
	}
	one := field.One[F]()
	for i := 0; i < n; i++ {
		m.set(i, i, one)
	}

	return m, nil
}

// NewFromRows copies a rectangular [][]F into a fresh Dense.
// Errors: ErrBadShape for empty or ragged input.
func NewFromRows[F field.Element[F]](rows [][]F) (*Dense[F], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	m, err := NewDense[F](len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewFromRows: row %d: %w", i, ErrBadShape)
		}
		copy(m.data[i*m.c:], row)
	}

	return m, nil
}

// NewFromInts builds an r×c matrix from row-major machine integers.
// Errors: ErrInvalidDimensions, or ErrBadShape when len(vals) != r*c.
func NewFromInts[F field.Element[F]](r, c int, vals ...int64) (*Dense[F], error) {
	m, err := NewDense[F](r, c)
	if err != nil {
		return nil, err
	}
	if len(vals) != r*c {
		return nil, ErrBadShape
	}
	for i, v := range vals {
		m.data[i] = field.FromInt64[F](v)
	}

	return m, nil
}

// ZerosLike allocates a zero matrix with the shape of m.
func ZerosLike[F field.Element[F]](m *Dense[F]) (*Dense[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[F](m.r, m.c)
}
