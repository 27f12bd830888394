package series_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/series"
)

type P = field.P65521

const (
	catalanTerms = "1,1,2,5,14,42,132,429,1430,4862,16796,58786,208012,742900,2674440,9694845"
	a262Terms    = "1,1,3,13,73,501,4051,37633,394353,4596553,58941091,824073141,12470162233,202976401213,3535017524403,65573803186921"
	tangentTerms = "0,1,0,2,0,16,0,272,0,7936,0,353792,0,22368256,0,1903757312"
	sampleTerms  = "3,1,4,1,5,9,2,6,5,3,5,8,9,7,9,3"
)

func mustParse[F field.Element[F]](tb testing.TB, s string) series.Fixed[F] {
	tb.Helper()
	f, err := series.Parse[F](s)
	require.NoError(tb, err)

	return f
}

// requireSeries asserts equal significant counts and equal coefficients.
func requireSeries[F field.Element[F]](tb testing.TB, want, got series.Fixed[F]) {
	tb.Helper()
	require.Equalf(tb, want.Len(), got.Len(), "len: want %v, got %v", want, got)
	require.Truef(tb, want.Equal(got), "want %v\n got %v", want, got)
}

// nonZeroGeometric is x/(1−x) = 0,1,1,1,...
func nonZeroGeometric[F field.Element[F]]() series.Fixed[F] {
	return series.Geometric[F]().Rshift()
}
