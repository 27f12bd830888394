package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/interpolate"
	"github.com/katalvlaran/fpseq/search"
	"github.com/katalvlaran/fpseq/seqdb"
	"github.com/katalvlaran/fpseq/series"
)

type P = field.P65521

func mustSeries(t *testing.T, s string) series.Fixed[P] {
	t.Helper()
	f, err := series.Parse[P](s)
	require.NoError(t, err)

	return f
}

func testDB(t *testing.T) *seqdb.DB[P] {
	t.Helper()

	return seqdb.New([]seqdb.Entry[P]{
		{ID: 45, Seq: mustSeries(t, "0,1,1,2,3,5,8,13,21,34,55,89")},
		{ID: 12, Seq: mustSeries(t, "1,1,1,1,1,1,1,1,1,1,1,1")},
		{ID: 79, Seq: mustSeries(t, "1,2,4,8,16,32,64,128,256,512,1024,2048")},
		{ID: 108, Seq: mustSeries(t, "1,1,2,5,14,42,132,429,1430,4862,16796,58786")},
		{ID: 27, Seq: mustSeries(t, "1,2,3,4,5,6,7,8,9,10,11,12")},
	})
}

const ones = "1,1,1,1,1,1,1,1,1,1"

func TestSearchMatches(t *testing.T) {
	db := testDB(t)
	want := []search.Match{
		{Index: 1, ID: 12, Op: "id", Cost: 0, Matched: 10, Score: 10},
		{Index: 4, ID: 27, Op: "psum", Cost: 1, Matched: 10, Score: 9},
		{Index: 2, ID: 79, Op: "binomial", Cost: 2, Matched: 10, Score: 8},
	}
	for _, workers := range []int{1, 3, 8} {
		eng, err := search.New(db, search.WithWorkers(workers), search.WithOps("id", "psum", "binomial", "lshift"))
		require.NoError(t, err)
		res, err := eng.Search(context.Background(), mustSeries(t, ones))
		require.NoError(t, err)
		assert.Equal(t, want, res.Matches, "workers=%d", workers)
	}
}

func TestSearchTopK(t *testing.T) {
	eng, err := search.New(testDB(t), search.WithTopK(2), search.WithOps("id", "psum", "binomial"))
	require.NoError(t, err)
	res, err := eng.Search(context.Background(), mustSeries(t, ones))
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, uint32(12), res.Matches[0].ID)
	assert.Equal(t, uint32(27), res.Matches[1].ID)
}

func TestSearchTiesByID(t *testing.T) {
	s := mustSeries(t, "2,3,5,7,11,13,17,19")
	db := seqdb.New([]seqdb.Entry[P]{{ID: 40, Seq: s}, {ID: 8719, Seq: s}, {ID: 6, Seq: s}})
	eng, err := search.New(db, search.WithOps("id"), search.WithWorkers(3))
	require.NoError(t, err)
	res, err := eng.Search(context.Background(), s)
	require.NoError(t, err)
	require.Len(t, res.Matches, 3)
	assert.Equal(t, []uint32{6, 40, 8719}, []uint32{res.Matches[0].ID, res.Matches[1].ID, res.Matches[2].ID})
}

func TestSearchMinMatch(t *testing.T) {
	eng, err := search.New(testDB(t), search.WithOps("id"))
	require.NoError(t, err)

	_, err = eng.Search(context.Background(), mustSeries(t, "1,1,1,1,1"))
	require.ErrorIs(t, err, search.ErrShortQuery)

	eng, err = search.New(testDB(t), search.WithOps("id"), search.WithMinMatch(4))
	require.NoError(t, err)
	res, err := eng.Search(context.Background(), mustSeries(t, "1,1,2,5,14"))
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, uint32(108), res.Matches[0].ID)
	assert.Equal(t, 5, res.Matches[0].Matched)
}

func TestSearchSkipsFailingOps(t *testing.T) {
	eng, err := search.New(testDB(t), search.WithOps("recip", "id"))
	require.NoError(t, err)
	// recip needs a nonzero constant term
	res, err := eng.Search(context.Background(), mustSeries(t, "0,1,1,2,3,5,8,13"))
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "id", res.Matches[0].Op)
	assert.Equal(t, uint32(45), res.Matches[0].ID)
}

func TestSearchFits(t *testing.T) {
	eng, err := search.New(testDB(t), search.WithOps("id", "psum", "binomial"), search.WithFitTransforms(true))
	require.NoError(t, err)
	res, err := eng.Search(context.Background(), mustSeries(t, ones))
	require.NoError(t, err)

	require.Len(t, res.Fits, 3)
	assert.Equal(t, []string{"id", "psum", "binomial"}, []string{res.Fits[0].Op, res.Fits[1].Op, res.Fits[2].Op})
	for _, f := range res.Fits {
		assert.Equal(t, interpolate.Linear, f.Recurrence.Kind)
	}
	assert.Equal(t, field.FromInts[P](1), res.Fits[0].Recurrence.Coeffs)
	assert.Equal(t, field.FromInts[P](2, -1), res.Fits[1].Recurrence.Coeffs)
	assert.Equal(t, field.FromInts[P](2), res.Fits[2].Recurrence.Coeffs)
	assert.Equal(t, field.FromInts[P](11, 12, 13, 14), res.Fits[1].Next)
	assert.Equal(t, field.FromInts[P](1024, 2048, 4096, 8192), res.Fits[2].Next)

	eng, err = search.New(testDB(t), search.WithPredict(2), search.WithFitOptions(interpolate.Options{}))
	require.NoError(t, err)
	res, err = eng.Search(context.Background(), mustSeries(t, ones))
	require.NoError(t, err)
	assert.Empty(t, res.Fits, "every family disabled")
}

func TestSearchCancelled(t *testing.T) {
	eng, err := search.New(testDB(t))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = eng.Search(ctx, mustSeries(t, ones))
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	_, err := search.New[P](nil)
	require.ErrorIs(t, err, search.ErrNilDatabase)

	_, err = search.New(testDB(t), search.WithOps("id", "nope"))
	require.ErrorIs(t, err, series.ErrUnknownOp)

	eng, err := search.New(testDB(t))
	require.NoError(t, err)
	assert.Len(t, eng.Ops(), len(series.UnaryOps[P]()))

	assert.Panics(t, func() { search.WithTopK(0) })
	assert.Panics(t, func() { search.WithMinMatch(0) })
	assert.Panics(t, func() { search.WithMinMatch(series.N + 1) })
	assert.Panics(t, func() { search.WithWorkers(-1) })
	assert.Panics(t, func() { search.WithPredict(-1) })
}
