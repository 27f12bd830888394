package interpolate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/interpolate"
)

func TestFindHypergeometricFactorial(t *testing.T) {
	p, q, ok := interpolate.FindHypergeometric(field.FromInts[P](factorials...), 1)
	require.True(t, ok)
	// a(n+1) = (n+1)·a(n)
	requireElems(t, field.FromInts[P](1), p)
	requireElems(t, field.FromInts[P](1, 1), q)
}

func TestFindHypergeometricCatalan(t *testing.T) {
	p, q, ok := interpolate.FindHypergeometric(field.FromInts[Q](catalan...), 1)
	require.True(t, ok)
	// (n+2)·a(n+1) = (4n+2)·a(n), scaled so that Σ p = 1
	requireElems(t, []Q{field.NewRat(2, 3), field.NewRat(1, 3)}, p)
	requireElems(t, []Q{field.NewRat(2, 3), field.NewRat(4, 3)}, q)

	pm, qm, ok := interpolate.FindHypergeometric(field.FromInts[P](catalan...), 1)
	require.True(t, ok)
	requireElems(t, field.FromInts[P](21841, -21840), pm)
	requireElems(t, field.FromInts[P](21841, -21839), qm)
}

func TestFindHypergeometricDegreeBound(t *testing.T) {
	// a(n+1) = (2n+1)(2n+2)·a(n): (2n)!
	seq := []int64{1, 2, 24, 720, 40320, 3628800, 479001600, 87178291200}
	_, _, ok := interpolate.FindHypergeometric(field.FromInts[Q](seq...), 1)
	require.False(t, ok)

	p, q, ok := interpolate.FindHypergeometric(field.FromInts[Q](seq...), 2)
	require.True(t, ok)
	requireElems(t, field.FromInts[Q](1), p)
	requireElems(t, field.FromInts[Q](2, 6, 4), q)
}

func TestFindHypergeometricRejects(t *testing.T) {
	_, _, ok := interpolate.FindHypergeometric(field.FromInts[Q](doubleFact...), 4)
	require.False(t, ok, "double factorial is not hypergeometric")

	_, _, ok = interpolate.FindHypergeometric(field.FromInts[Q](1, 2, 3), 1)
	require.False(t, ok, "degree one needs four terms")

	_, _, ok = interpolate.FindHypergeometric(field.FromInts[Q](1), 1)
	require.False(t, ok, "too few terms")

	_, _, ok = interpolate.FindHypergeometric(field.FromInts[Q](1, 2, 3), -1)
	require.False(t, ok)
}

func TestFindHypergeometricShortPrefix(t *testing.T) {
	// degree 3 needs eight terms; fewer is a failure, not a lower degree
	seq := field.FromInts[P](1, 2, 4, 7)
	_, _, ok := interpolate.FindHypergeometric(seq, 3)
	require.False(t, ok)
	_, _, ok = interpolate.FindHypergeometric(seq, 2)
	require.False(t, ok)
	_, _, ok = interpolate.FindHypergeometric(field.FromInts[Q](1, 2, 4), 3)
	require.False(t, ok)

	// exactly 2(d+1) terms is enough to attempt the fit
	p, q, ok := interpolate.FindHypergeometric(field.FromInts[Q](1, 2), 0)
	require.True(t, ok)
	requireElems(t, field.FromInts[Q](1), p)
	requireElems(t, field.FromInts[Q](2), q)
}

func TestFindPRecursive(t *testing.T) {
	cases := []struct {
		name     string
		seq      []int64
		maxDeg   int
		maxOrder int
		want     [][]int64
		ok       bool
	}{
		// a(n+2) = (n+2)·a(n)
		{"double factorial", doubleFact, 3, 3, [][]int64{{-2, -1}, {0}, {1}}, true},
		// a(n+2) = (n+1)·(a(n+1) + a(n))
		{"derangements", derangement, 1, 3, [][]int64{{-1, -1}, {-1, -1}, {1}}, true},
		{"derangements short", derangement[:6], 1, 3, nil, false},
		{"derangements constant", derangement, 0, 3, nil, false},
		{"derangements order one", derangement, 1, 2, nil, false},
		{"factorial order one", factorials, 1, 2, [][]int64{{-1, -1}, {1}}, true},
		// zero polynomials stay in place
		{"factorial order two", factorials, 3, 3, [][]int64{{0}, {-2, -1}, {1}}, true},
		{"no order", factorials, 1, 0, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := interpolate.FindPRecursive(field.FromInts[Q](tc.seq...), tc.maxDeg, tc.maxOrder)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				requirePolys(t, tc.want, got)
			}
		})
	}
}

func TestFindPRecursivePrimeField(t *testing.T) {
	got, ok := interpolate.FindPRecursive(field.FromInts[P](doubleFact...), 3, 3)
	require.True(t, ok)
	requirePolys(t, [][]int64{{-2, -1}, {0}, {1}}, got)
}
