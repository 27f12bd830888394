package interpolate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/field"
)

type (
	P = field.P65521
	Q = field.Rat
)

var (
	fibonacci   = []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987}
	factorials  = []int64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600, 6227020800, 87178291200, 1307674368000}
	catalan     = []int64{1, 1, 2, 5, 14, 42, 132, 429, 1430, 4862, 16796, 58786, 208012, 742900, 2674440, 9694845}
	derangement = []int64{1, 0, 1, 2, 9, 44, 265, 1854, 14833, 133496, 1334961, 14684570, 176214841, 2290792932, 32071101049, 481066515734}
	doubleFact  = []int64{1, 1, 2, 3, 8, 15, 48, 105, 384, 945, 3840, 10395, 46080, 135135, 645120, 2027025}
)

// requireElems compares field slices with Equal, element by element.
func requireElems[F field.Element[F]](tb testing.TB, want, got []F) {
	tb.Helper()
	require.Lenf(tb, got, len(want), "want %v, got %v", want, got)
	for i := range want {
		require.Truef(tb, want[i].Equal(got[i]), "index %d: want %v, got %v", i, want[i], got[i])
	}
}

// requirePolys compares polynomial lists coefficient by coefficient.
func requirePolys[F field.Element[F]](tb testing.TB, want [][]int64, got [][]F) {
	tb.Helper()
	require.Len(tb, got, len(want))
	for j := range want {
		requireElems(tb, field.FromInts[F](want[j]...), got[j])
	}
}
