// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures over the exact fields.
//   - Element comparison through Equal so Rat values with different
//     internal representations still compare equal.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/matrix"
)

// mustInts builds an r×c matrix from row-major integers or fails the test.
func mustInts[F field.Element[F]](tb testing.TB, r, c int, vals ...int64) *matrix.Dense[F] {
	tb.Helper()
	m, err := matrix.NewFromInts[F](r, c, vals...)
	require.NoError(tb, err)

	return m
}

// requireDenseEqual asserts entry-wise equality with a readable diff.
func requireDenseEqual[F field.Element[F]](tb testing.TB, want, got *matrix.Dense[F]) {
	tb.Helper()
	require.Truef(tb, want.Equal(got), "want:\n%vgot:\n%v", want, got)
}

// requireElems asserts that two vectors agree element by element.
func requireElems[F field.Element[F]](tb testing.TB, want, got []F) {
	tb.Helper()
	require.Len(tb, got, len(want))
	for i := range want {
		require.Truef(tb, want[i].Equal(got[i]), "index %d: want %v, got %v", i, want[i], got[i])
	}
}

// fillDeterministic writes a reproducible pseudo-random pattern into m.
func fillDeterministic[F field.Element[F]](tb testing.TB, m *matrix.Dense[F], seed uint64) {
	tb.Helper()
	x := seed
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			x = x*6364136223846793005 + 1442695040888963407
			require.NoError(tb, m.Set(i, j, field.FromUint64[F](x>>33)))
		}
	}
}
