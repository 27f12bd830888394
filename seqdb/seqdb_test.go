package seqdb_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/seqdb"
	"github.com/katalvlaran/fpseq/series"
)

type P = field.P65521

const stripped = `# OEIS Sequence Data (http://oeis.org/stripped.gz)
# Last Modified: today

A000004 ,0,0,0,0,0,0,0,0,0,0,
A000012 ,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,
A000045 ,0,1,1,2,3,5,8,13,21,34,55,89,144,233,377,610,987,1597,
  A000108 ,1,1,2,5,14,42,132,429,1430,4862,
A001057 ,0,1,-1,2,-2,3,-3,4,
A999999 ,7,x,9,
`

func mustSeries(t *testing.T, s string) series.Fixed[P] {
	t.Helper()
	f, err := series.Parse[P](s)
	require.NoError(t, err)

	return f
}

func TestRead(t *testing.T) {
	db, err := seqdb.Read[P](strings.NewReader(stripped))
	require.NoError(t, err)
	require.Equal(t, 6, db.Len())

	assert.Equal(t, uint32(4), db.At(0).ID)
	assert.Equal(t, 10, db.At(0).Seq.Len())
	assert.Equal(t, series.N, db.At(1).Seq.Len(), "terms past N are dropped")
	assert.Equal(t, "0,1,1,2,3,5,8,13,21,34,55,89,144,233,377,610", db.At(2).Seq.String())
	assert.Equal(t, uint32(108), db.At(3).ID, "leading blanks are tolerated")
	assert.Equal(t, "0,1,65520,2,65519,3,65518,4", db.At(4).Seq.String())
	assert.Equal(t, "7", db.At(5).Seq.String(), "reading stops at the first bad term")

	assert.Equal(t, seqdb.Digest(blake3.Sum256([]byte(stripped))), db.Digest())
	assert.Len(t, db.Entries(), 6)
}

func TestReadMinTerms(t *testing.T) {
	db, err := seqdb.Read[P](strings.NewReader(stripped), seqdb.WithMinTerms(9))
	require.NoError(t, err)
	require.Equal(t, 4, db.Len())
	_, err = db.Lookup(1057)
	require.ErrorIs(t, err, seqdb.ErrNotFound)

	assert.Panics(t, func() { seqdb.WithMinTerms(-1) })
	assert.Panics(t, func() { seqdb.WithMinTerms(series.N + 1) })
}

func TestReadMalformed(t *testing.T) {
	_, err := seqdb.Read[P](strings.NewReader("A000001 ,1,1\nB000002 ,1,2\n"))
	require.ErrorIs(t, err, seqdb.ErrMalformedID)
	assert.Contains(t, err.Error(), "line 2")

	db, err := seqdb.Read[P](strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, db.Len())
}

func TestLoadGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(stripped))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	// the name carries no hint; detection is by content
	path := filepath.Join(t.TempDir(), "stripped")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	db, err := seqdb.Load[P](path)
	require.NoError(t, err)
	require.Equal(t, 6, db.Len())
	assert.Equal(t, seqdb.Digest(blake3.Sum256(buf.Bytes())), db.Digest())

	plain := filepath.Join(t.TempDir(), "stripped.txt")
	require.NoError(t, os.WriteFile(plain, []byte(stripped), 0o600))
	db2, err := seqdb.Load[P](plain)
	require.NoError(t, err)
	assert.Equal(t, db.Len(), db2.Len())
	assert.NotEqual(t, db.Digest(), db2.Digest())

	_, err = seqdb.Load[P](filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLookupAndFind(t *testing.T) {
	db, err := seqdb.Read[P](strings.NewReader(stripped))
	require.NoError(t, err)

	i, err := db.Lookup(45)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	assert.Equal(t, seqdb.DefaultMinMatch, db.MinMatch())
	assert.Equal(t, []int{3}, db.Find(mustSeries(t, "1,1,2,5,14,42,132,429,1430,4862")))
	assert.True(t, db.Contains(mustSeries(t, "7")), "short queries match exactly")
	assert.False(t, db.Contains(mustSeries(t, "8")))
}

func TestFindPrefix(t *testing.T) {
	db, err := seqdb.Read[P](strings.NewReader(stripped))
	require.NoError(t, err)

	cases := []struct {
		name  string
		query string
		want  []int
	}{
		{"entry extends query", "1,1,2,5,14,42,132,429,1430", []int{3}},
		{"query extends entry", "0,0,0,0,0,0,0,0,0,0,0,0", []int{0}},
		{"shared prefix at the minimum", "0,1,1,2,3,5", []int{2}},
		{"long run of ones", "1,1,1,1,1,1,1,1", []int{1}},
		{"diverges", "1,1,2,5,14,42,132,429,1431", nil},
		{"below the minimum", "1,1,1", nil},
		{"entry shorter than the minimum", "7,8,9,10,11,12", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, db.Find(mustSeries(t, tc.query)))
		})
	}

	db, err = seqdb.Read[P](strings.NewReader(stripped), seqdb.WithMinMatch(10))
	require.NoError(t, err)
	assert.Empty(t, db.Find(mustSeries(t, "1,1,2,5,14,42,132,429,1430")))
	assert.Equal(t, []int{3}, db.Find(mustSeries(t, "1,1,2,5,14,42,132,429,1430,4862,16796")))

	assert.Panics(t, func() { seqdb.WithMinMatch(0) })
	assert.Panics(t, func() { seqdb.WithMinMatch(series.N + 1) })
}

func TestFindShiftedEntry(t *testing.T) {
	naturals := make([]int64, series.N)
	for i := range naturals {
		naturals[i] = int64(i)
	}
	x := series.FromInts[P](naturals...)
	for i := range naturals {
		naturals[i]++
	}
	y := series.FromInts[P](naturals...)
	db := seqdb.New([]seqdb.Entry[P]{{ID: 1477, Seq: x}, {ID: 27, Seq: y}})

	require.Equal(t, series.N-1, x.Lshift().Len())
	assert.Equal(t, []int{1}, db.Find(x.Lshift()))
	assert.Equal(t, []int{0}, db.Find(y.Rshift()))

	g, err := seqdb.Relations(context.Background(), db, 2)
	require.NoError(t, err)
	assert.Equal(t, []seqdb.Relation{
		{From: 0, With: -1, Op: "lshift", To: 1},
		{From: 1, With: -1, Op: "rshift", To: 0},
	}, g.Relations())
}

func TestNewDuplicates(t *testing.T) {
	ones := mustSeries(t, "1,1,1")
	db := seqdb.New([]seqdb.Entry[P]{{ID: 12, Seq: ones}, {ID: 12, Seq: ones}, {ID: 7, Seq: ones}})
	i, err := db.Lookup(12)
	require.NoError(t, err)
	assert.Equal(t, 0, i, "first A-number wins")
	assert.Equal(t, []int{0, 1, 2}, db.Find(ones))
	assert.Equal(t, seqdb.Digest{}, db.Digest())
}

func TestID(t *testing.T) {
	assert.Equal(t, "A000045", seqdb.FormatID(45))
	assert.Equal(t, "A1234567", seqdb.FormatID(1234567))

	for _, s := range []string{"A000045", "a45", "45", " A000045 "} {
		id, err := seqdb.ParseID(s)
		require.NoError(t, err, s)
		assert.Equal(t, uint32(45), id)
	}
	for _, s := range []string{"", "A", "A-1", "A+1", "Ax", "A99999999999"} {
		_, err := seqdb.ParseID(s)
		require.ErrorIs(t, err, seqdb.ErrMalformedID, s)
	}
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", seqdb.Digest(blake3.Sum256(nil)).String())
}
