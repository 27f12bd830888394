// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan elimination and everything built on it.
//
// Purpose:
//   - RREF: reduced row-echelon form with determinant, rank and pivot columns.
//   - Solve: A·x = b via RREF of the augmented matrix [A | b].
//   - Inverse: RREF of [A | I].
//   - Det / Rank: thin facades over RREF.
//
// Determinism:
//   - The pivot of each column is the first nonzero entry at or below the
//     current row. RREF is unique, so results do not depend on that choice.

package matrix

import "github.com/katalvlaran/fpseq/field"

// Reduction is the result of Gauss–Jordan elimination.
type Reduction[F field.Element[F]] struct {
	// Reduced is the reduced row-echelon form (a fresh matrix).
	Reduced *Dense[F]
	// Det is the determinant of the input when it is square, zero otherwise.
	Det F
	// Rank is the number of pivots.
	Rank int
	// Pivots lists the pivot column of each of the first Rank rows.
	Pivots []int
}

// reduce runs Gauss–Jordan elimination in place on a, restricted to the
// first limit columns when choosing pivots (every column is still updated).
// It returns the pivot columns and the product of pivots with swap signs.
func reduce[F field.Element[F]](a *Dense[F], limit int) ([]int, F) {
	det := field.One[F]()
	pivots := make([]int, 0, min(a.r, limit))
	ri := 0
	for ci := 0; ci < limit && ri < a.r; ci++ {
		// Find any nonzero pivot at or below row ri.
		p := -1
		for k := ri; k < a.r; k++ {
			if !a.at(k, ci).IsZero() {
				p = k
				break
			}
		}
		if p < 0 {
			continue
		}
		if p != ri {
			a.swapRows(p, ri)
			det = det.Neg()
		}

		piv := a.at(ri, ci)
		det = det.Mul(piv)
		inv, _ := piv.Inv() // piv is nonzero by construction

		// Normalize the pivot row.
		row := a.data[ri*a.c : (ri+1)*a.c]
		for j := ci; j < a.c; j++ {
			row[j] = row[j].Mul(inv)
		}

		// Eliminate the pivot column from every other row.
		for k := 0; k < a.r; k++ {
			if k == ri {
				continue
			}
			f := a.at(k, ci)
			if f.IsZero() {
				continue
			}
			other := a.data[k*a.c : (k+1)*a.c]
			for j := ci; j < a.c; j++ {
				other[j] = other[j].Sub(f.Mul(row[j]))
			}
		}

		pivots = append(pivots, ci)
		ri++
	}

	return pivots, det
}

// RREF computes the reduced row-echelon form of m without mutating it.
//
// Implementation:
//   - Stage 1: clone m.
//   - Stage 2: for each column, take the first nonzero entry at or below the
//     current row as pivot, swap it up (flipping the determinant sign),
//     normalize the row, and clear the column in every other row.
//
// Returns:
//   - Reduction with the reduced matrix, rank, pivot columns and, for square
//     input, the determinant (zero when rank < n).
//
// Errors:
//   - ErrNilMatrix (wrapped with "RREF").
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func RREF[F field.Element[F]](m *Dense[F]) (*Reduction[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	a := m.Clone()
	pivots, det := reduce(a, a.c)
	if m.r != m.c || len(pivots) < m.r {
		det = field.Zero[F]()
	}

	return &Reduction[F]{Reduced: a, Det: det, Rank: len(pivots), Pivots: pivots}, nil
}

// Det returns the determinant of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare (wrapped with "Det").
func Det[F field.Element[F]](m *Dense[F]) (F, error) {
	var zero F
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	red, err := RREF(m)
	if err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	return red.Det, nil
}

// Rank returns the number of linearly independent rows of m.
func Rank[F field.Element[F]](m *Dense[F]) (int, error) {
	red, err := RREF(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return red.Rank, nil
}

// Solve returns x with A·x = b.
// MAIN DESCRIPTION:
//   - Exact solve over a field by Gauss–Jordan elimination of [A | b].
//
// Implementation:
//   - Stage 1: validate shapes; build the r×(c+1) augmented matrix.
//   - Stage 2: reduce to RREF over all c+1 columns.
//   - Stage 3: walk rows bottom-up. A row whose coefficient part is zero but
//     whose augmented entry is not proves inconsistency. Otherwise the row's
//     first nonzero column is a pivot and fixes that unknown.
//   - Stage 4: unknowns without a pivot follow the free-variable policy.
//
// Behavior highlights:
//   - FreeZero (default) returns the particular solution with every free
//     unknown equal to zero. FreeReject refuses rank-deficient systems.
//
// Inputs:
//   - a: coefficient matrix (r×c), not mutated.
//   - b: right-hand side of length r.
//   - opts: WithFreeVariables.
//
// Returns:
//   - []F of length c.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shape).
//   - ErrInconsistent (no solution).
//   - ErrUnderdetermined (FreeReject and rank < c).
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Solve[F field.Element[F]](a *Dense[F], b []F, opts ...Option) ([]F, error) {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Augmented matrix [A | b].
	aug := &Dense[F]{r: a.r, c: a.c + 1, data: make([]F, a.r*(a.c+1))}
	for i := 0; i < a.r; i++ {
		copy(aug.data[i*aug.c:], a.data[i*a.c:(i+1)*a.c])
		aug.data[i*aug.c+a.c] = b[i]
	}
	reduce(aug, aug.c)

	x := make([]F, a.c)
	for i := range x {
		x[i] = field.Zero[F]()
	}
	bound := 0
	for i := aug.r - 1; i >= 0; i-- {
		piv := -1
		for j := 0; j < a.c; j++ {
			if !aug.at(i, j).IsZero() {
				piv = j
				break
			}
		}
		rhs := aug.at(i, a.c)
		if piv < 0 {
			if !rhs.IsZero() {
				return nil, matrixErrorf(opSolve, ErrInconsistent)
			}
			continue
		}
		// Pivot columns are cleared in other rows, so only free unknowns
		// (currently zero) can appear to the right of piv.
		for j := piv + 1; j < a.c; j++ {
			rhs = rhs.Sub(aug.at(i, j).Mul(x[j]))
		}
		x[piv] = rhs
		bound++
	}
	if o.free == FreeReject && bound < a.c {
		return nil, matrixErrorf(opSolve, ErrUnderdetermined)
	}

	return x, nil
}

// Inverse computes A^{-1} by reducing [A | I].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (rank < n), wrapped with "Inverse".
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse[F field.Element[F]](m *Dense[F]) (*Dense[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	one := field.One[F]()
	aug := &Dense[F]{r: n, c: 2 * n, data: make([]F, 2*n*n)}
	for i := 0; i < n; i++ {
		copy(aug.data[i*aug.c:], m.data[i*n:(i+1)*n])
		aug.data[i*aug.c+n+i] = one
	}
	if pivots, _ := reduce(aug, n); len(pivots) < n {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv := &Dense[F]{r: n, c: n, data: make([]F, n*n)}
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*aug.c+n:(i+1)*aug.c])
	}

	return inv, nil
}
