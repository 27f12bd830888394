package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/config"
	"github.com/katalvlaran/fpseq/seqdb"
	"github.com/katalvlaran/fpseq/series"
)

const testDB = `# test database
A000012 ,1,1,1,1,1,1,1,1,
A000027 ,1,2,3,4,5,6,7,
A000108 ,1,1,2,5,14,42,132,429,1430,4862,
A000796 ,3,1,4,1,5,9,2,6,
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stripped")
	require.NoError(t, os.WriteFile(path, []byte(testDB), 0o600))

	return path
}

func TestApply(t *testing.T) {
	out, err := run(t, "apply", "binomial", "1,1,1,1,1,1")
	require.NoError(t, err)
	assert.Equal(t, "1,2,4,8,16,32\n", out)

	out, err = run(t, "apply", "psum|psum", "1", "1", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "1,3,6,10\n", out)

	_, err = run(t, "apply", "nope", "1,1")
	require.ErrorIs(t, err, series.ErrUnknownOp)

	_, err = run(t, "apply", "id", "1,x")
	require.ErrorIs(t, err, series.ErrMalformed)
}

func TestFit(t *testing.T) {
	out, err := run(t, "fit", "--next", "4", "1", "1", "2", "3", "5", "8", "13", "21")
	require.NoError(t, err)
	assert.Contains(t, out, "linear (order 2, degree 0)\n")
	assert.Contains(t, out, "a(n) = 1*a(n-1) + 1*a(n-2)\n")
	assert.Contains(t, out, "next: 34,55,89,144\n")

	out, err = run(t, "fit", "--field", "m61", "--next", "2", "1,1,2,6,24,120,720,5040")
	require.NoError(t, err)
	assert.Contains(t, out, "hypergeometric (order 1, degree 1)")
	assert.Contains(t, out, "next: 40320,362880\n")

	out, err = run(t, "fit", "--max-order", "1", "--max-degree", "0", "1,0,1,2,9,44,265,1854,14833")
	require.NoError(t, err)
	assert.Equal(t, "no recurrence found\n", out)
}

func TestInfo(t *testing.T) {
	path := writeDB(t)
	out, err := run(t, "info", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "entries:  4\n")
	assert.Contains(t, out, "field:    p65521\n")
	assert.Contains(t, out, "blake3:   ")

	_, err = run(t, "info", "--db", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSearch(t *testing.T) {
	path := writeDB(t)
	out, err := run(t, "search", "--db", path, "--top", "1", "1,1,2,5,14,42,132,429")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "A000108  id "), out)
	assert.Contains(t, out, "id: hypergeometric recurrence")

	_, err = run(t, "search", "--db", path, "1,1,2")
	require.Error(t, err)
}

func TestConnectivity(t *testing.T) {
	path := writeDB(t)
	out, err := run(t, "connectivity", "--db", path, "--top", "2", "--workers", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "A000012 9", lines[0])
	assert.Equal(t, "A000027 5", lines[1])
}

func TestRelate(t *testing.T) {
	path := writeDB(t)
	out, err := run(t, "relate", "--db", path, "A000027", "A796")
	require.NoError(t, err)
	assert.Equal(t, "A000027 = derive(A000012)\nA000796 = hadamard(A000012, A000796)\n", out)

	_, err = run(t, "relate", "--db", path, "--max-depth", "1", "A000027", "A000796")
	require.ErrorIs(t, err, seqdb.ErrNoPath)

	_, err = run(t, "relate", "--db", path, "A000027", "A000045")
	require.ErrorIs(t, err, seqdb.ErrNotFound)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpseq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: gf4\n"), 0o600))
	_, err := run(t, "--config", path, "apply", "id", "1")
	require.ErrorIs(t, err, config.ErrInvalid)

	require.NoError(t, os.WriteFile(path, []byte("field: m31\n"), 0o600))
	out, err := run(t, "--config", path, "apply", "neg", "1,2")
	require.NoError(t, err)
	assert.Equal(t, "2147483646,2147483645\n", out)

	_, err = run(t, "--field", "gf4", "apply", "id", "1")
	require.ErrorIs(t, err, config.ErrInvalid)
}
