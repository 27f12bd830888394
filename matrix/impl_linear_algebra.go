// SPDX-License-Identifier: MIT
// Package matrix provides the element-wise and product kernels on Dense:
// addition, subtraction, multiplication, transpose, scaling, Hadamard product,
// matrix-vector product and LU factorization. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf at the facade.
//   - Inputs are never mutated; every kernel returns freshly allocated storage.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fpseq/field"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opInverse   = "Inverse"
	opRREF      = "RREF"
	opDet       = "Det"
	opRank      = "Rank"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryShape validates two same-shaped operands for element-wise kernels.
func binaryShape[F field.Element[F]](a, b *Dense[F], tag string) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// elementwise applies fn to aligned entries of a and b into a fresh Dense.
func elementwise[F field.Element[F]](a, b *Dense[F], tag string, fn func(x, y F) F) (*Dense[F], error) {
	if err := binaryShape(a, b, tag); err != nil {
		return nil, err
	}
	out := &Dense[F]{r: a.r, c: a.c, data: make([]F, len(a.data))}
	for i := range a.data {
		out.data[i] = fn(a.data[i], b.data[i])
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[F field.Element[F]](a, b *Dense[F]) (*Dense[F], error) {
	return elementwise(a, b, opAdd, func(x, y F) F { return x.Add(y) })
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
func Sub[F field.Element[F]](a, b *Dense[F]) (*Dense[F], error) {
	return elementwise(a, b, opSub, func(x, y F) F { return x.Sub(y) })
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh Dense result.
func Hadamard[F field.Element[F]](a, b *Dense[F]) (*Dense[F], error) {
	return elementwise(a, b, opHadamard, func(x, y F) F { return x.Mul(y) })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i-k-j loop order so the inner loop walks contiguous rows of B and C.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul[F field.Element[F]](a, b *Dense[F]) (*Dense[F], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	out := &Dense[F]{r: a.r, c: b.c, data: make([]F, a.r*b.c)}
	var i, j, k int // loop iterators
	for i = 0; i < a.r; i++ {
		rowOut := out.data[i*out.c : (i+1)*out.c]
		for k = 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik.IsZero() {
				continue
			}
			rowB := b.data[k*b.c : (k+1)*b.c]
			for j = 0; j < b.c; j++ {
				rowOut[j] = rowOut[j].Add(aik.Mul(rowB[j]))
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
func Transpose[F field.Element[F]](m *Dense[F]) (*Dense[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense[F]{r: m.c, c: m.r, data: make([]F, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
func Scale[F field.Element[F]](m *Dense[F], alpha F) (*Dense[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense[F]{r: m.r, c: m.c, data: make([]F, len(m.data))}
	for i, v := range m.data {
		out.data[i] = alpha.Mul(v)
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[F field.Element[F]](m *Dense[F], x []F) ([]F, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]F, m.r)
	for i := 0; i < m.r; i++ {
		var sum F
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			sum = sum.Add(v.Mul(x[j]))
		}
		y[i] = sum
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Returns:
//   - L (unit lower triangular), U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if U[i,i]==0 during factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Exact arithmetic removes the stability concern of the floating-point
//     variant, but a zero leading minor still stops the factorization; use
//     RREF or Solve for matrices that need row exchanges.
func LU[F field.Element[F]](m *Dense[F]) (*Dense[F], *Dense[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.r
	L, err := NewIdentity[F](n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense[F](n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k int // loop iterators
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			var sum F
			for k = 0; k < i; k++ {
				sum = sum.Add(L.at(i, k).Mul(U.at(k, j)))
			}
			U.set(i, j, m.at(i, j).Sub(sum))
		}

		// Zero-pivot guard (deterministic singularity detection)
		pivInv, err := U.at(i, i).Inv()
		if err != nil {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			var sum F
			for k = 0; k < i; k++ {
				sum = sum.Add(L.at(j, k).Mul(U.at(k, i)))
			}
			L.set(j, i, m.at(j, i).Sub(sum).Mul(pivInv))
		}
	}

	return L, U, nil
}
