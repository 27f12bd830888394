// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fpseq/field"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <cause>"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the field F.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[F field.Element[F]] struct {
	r, c int // row and column counts (>0)
	data []F // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[field.P65521])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the buffer; the zero value of every field type is 0.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense[F]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[F field.Element[F]](rows, cols int) (*Dense[F], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() fills the buffer with zero values, which every field reads as 0.
	buf := make([]F, rows*cols)

	return &Dense[F]{r: rows, c: cols, data: buf}, nil
}

// Rows returns the number of rows.
func (m *Dense[F]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[F]) Cols() int { return m.c }

// indexOf maps (row, col) to the flat offset after a bounds check.
func (m *Dense[F]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange wrapped as "Dense.At(i,j): ...".
func (m *Dense[F]) At(row, col int) (F, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero F

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange wrapped as "Dense.Set(i,j): ...".
func (m *Dense[F]) Set(row, col int, v F) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// at and set are the unchecked accessors used inside kernels, where loop
// bounds already guarantee validity.
func (m *Dense[F]) at(row, col int) F     { return m.data[row*m.c+col] }
func (m *Dense[F]) set(row, col int, v F) { m.data[row*m.c+col] = v }

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense[F]) Row(i int) []F {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]F, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// swapRows exchanges rows i and j in place.
func (m *Dense[F]) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Clone returns a deep copy with independent storage.
func (m *Dense[F]) Clone() *Dense[F] {
	buf := make([]F, len(m.data))
	copy(buf, m.data)

	return &Dense[F]{r: m.r, c: m.c, data: buf}
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense[F]) Equal(o *Dense[F]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line: "[1, 2]\n[3, 4]\n".
func (m *Dense[F]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.at(i, j).String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
