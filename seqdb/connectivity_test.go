package seqdb_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/seqdb"
)

// ones; its derivative (and its Hadamard product with ones); an unrelated
// sequence that only its Hadamard product with ones reproduces
const related = `A000012 ,1,1,1,1,1,1,1,1,
A000027 ,1,2,3,4,5,6,7,
A000796 ,3,1,4,1,5,9,2,6,
`

func TestConnectivity(t *testing.T) {
	db, err := seqdb.Read[field.Rat](strings.NewReader(related))
	require.NoError(t, err)

	// lshift(ones), sqrt(A000027) and A000027/ones all reproduce a
	// seven-term prefix of ones
	want := []seqdb.Connection{
		{Index: 0, ID: 12, Count: 8},
		{Index: 1, ID: 27, Count: 5},
		{Index: 2, ID: 796, Count: 2},
	}
	for _, workers := range []int{0, 1, 4} {
		got, err := seqdb.Connectivity(context.Background(), db, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestConnectivityFullPrefix(t *testing.T) {
	db, err := seqdb.Read[field.Rat](strings.NewReader(related), seqdb.WithMinMatch(8))
	require.NoError(t, err)

	got, err := seqdb.Connectivity(context.Background(), db, 2)
	require.NoError(t, err)
	assert.Equal(t, []seqdb.Connection{
		{Index: 0, ID: 12, Count: 3},
		{Index: 1, ID: 27, Count: 3},
		{Index: 2, ID: 796, Count: 2},
	}, got)
}

func TestConnectivityCancelled(t *testing.T) {
	db, err := seqdb.Read[field.Rat](strings.NewReader(related))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = seqdb.Connectivity(ctx, db, 2)
	require.ErrorIs(t, err, context.Canceled)
}
