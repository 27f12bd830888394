// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/matrix"
)

func TestElementwise(t *testing.T) {
	a := mustInts[field.P65521](t, 2, 2, 1, 2, 3, 4)
	b := mustInts[field.P65521](t, 2, 2, 5, 6, 7, 8)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireDenseEqual(t, mustInts[field.P65521](t, 2, 2, 6, 8, 10, 12), sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	requireDenseEqual(t, mustInts[field.P65521](t, 2, 2, -4, -4, -4, -4), diff)

	had, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	requireDenseEqual(t, mustInts[field.P65521](t, 2, 2, 5, 12, 21, 32), had)

	// operands are untouched
	requireDenseEqual(t, mustInts[field.P65521](t, 2, 2, 1, 2, 3, 4), a)
}

func TestElementwise_Errors(t *testing.T) {
	a := mustInts[field.P65521](t, 2, 2, 1, 2, 3, 4)
	b := mustInts[field.P65521](t, 1, 4, 1, 2, 3, 4)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Add: ")

	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Hadamard(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := mustInts[field.Rat](t, 2, 2, 1, 2, 3, 4)
	b := mustInts[field.Rat](t, 2, 2, 5, 6, 7, 8)
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireDenseEqual(t, mustInts[field.Rat](t, 2, 2, 19, 22, 43, 50), got)

	// 2×3 · 3×1
	c := mustInts[field.Rat](t, 2, 3, 1, 0, -1, 2, 1, 0)
	v := mustInts[field.Rat](t, 3, 1, 3, 4, 5)
	got, err = matrix.Mul(c, v)
	require.NoError(t, err)
	requireDenseEqual(t, mustInts[field.Rat](t, 2, 1, -2, 10), got)

	_, err = matrix.Mul(a, c.Clone())
	require.NoError(t, err) // 2×2 · 2×3 is fine
	_, err = matrix.Mul(c, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTransposeScale(t *testing.T) {
	m := mustInts[field.M31](t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireDenseEqual(t, mustInts[field.M31](t, 3, 2, 1, 4, 2, 5, 3, 6), tr)

	sc, err := matrix.Scale(m, field.FromInt64[field.M31](-2))
	require.NoError(t, err)
	requireDenseEqual(t, mustInts[field.M31](t, 2, 3, -2, -4, -6, -8, -10, -12), sc)

	_, err = matrix.Transpose[field.M31](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	m := mustInts[field.P65521](t, 2, 2, 1, 2, 3, 4)
	y, err := matrix.MatVec(m, field.FromInts[field.P65521](1, 1))
	require.NoError(t, err)
	requireElems(t, field.FromInts[field.P65521](3, 7), y)

	_, err = matrix.MatVec(m, field.FromInts[field.P65521](1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec[field.P65521](m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLU_Reconstructs(t *testing.T) {
	a := mustInts[field.Rat](t, 3, 3, 4, 3, 2, 6, 3, 1, 2, 5, 7)
	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	// L is unit lower triangular, U is upper triangular.
	for i := 0; i < 3; i++ {
		d, _ := L.At(i, i)
		require.True(t, field.IsOne(d))
		for j := 0; j < i; j++ {
			u, _ := U.At(i, j)
			require.True(t, u.IsZero())
		}
		for j := i + 1; j < 3; j++ {
			l, _ := L.At(i, j)
			require.True(t, l.IsZero())
		}
	}

	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	requireDenseEqual(t, a, prod)

	l10, _ := L.At(1, 0)
	require.Equal(t, "3/2", l10.String())
}

func TestLU_Errors(t *testing.T) {
	_, _, err := matrix.LU(mustInts[field.P65521](t, 2, 2, 0, 1, 1, 0))
	require.ErrorIs(t, err, matrix.ErrSingular) // zero leading minor, no pivoting
	_, _, err = matrix.LU(mustInts[field.P65521](t, 1, 2, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, _, err = matrix.LU[field.P65521](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
