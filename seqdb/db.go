// SPDX-License-Identifier: MIT

package seqdb

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/series"
)

const maxTerms = series.N

// Entry is one database sequence.
type Entry[F field.Element[F]] struct {
	ID  uint32
	Seq series.Fixed[F]
}

// Digest is the BLAKE3-256 digest of a loaded file.
type Digest [32]byte

// String renders the digest as lowercase hex.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// fingerprint is the first 64 bits of a keyed BLAKE3 hash of leading
// terms; index hits are confirmed against the terms themselves.
type fingerprint uint64

// fingerprintKey separates fingerprints from content digests; ASCII,
// zero-padded to the 32 bytes blake3.NewKeyed requires.
var fingerprintKey = [32]byte{
	'f', 'p', 's', 'e', 'q', '.', 's', 'e', 'q', 'd', 'b', '.',
	'f', 'i', 'n', 'g', 'e', 'r', 'p', 'r', 'i', 'n', 't',
}

// prefixPrints returns the fingerprints of the first k significant terms
// of s for every k in 0..s.Len(). Each term is hashed with a trailing ','
// so prefixes of different lengths never share an input.
func prefixPrints[F field.Element[F]](s series.Fixed[F]) []fingerprint {
	h, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		// only a wrong key length fails, and the key is a fixed array
		panic("seqdb: blake3 keyed hash: " + err.Error())
	}
	var buf, sum []byte
	out := make([]fingerprint, 0, s.Len()+1)
	for k := 0; ; k++ {
		sum = h.Sum(sum[:0])
		out = append(out, fingerprint(binary.LittleEndian.Uint64(sum)))
		if k == s.Len() {
			return out
		}
		buf = append(append(buf[:0], s.Coeff(k).String()...), ',')
		_, _ = h.Write(buf)
	}
}

// DB is an immutable, in-memory sequence database. It is safe for
// concurrent readers.
type DB[F field.Element[F]] struct {
	entries  []Entry[F]
	byID     map[uint32]int
	exact    map[fingerprint][]int // all significant terms
	prefix   map[fingerprint][]int // every prefix of at least minMatch terms
	minMatch int
	digest   Digest
}

// newDB indexes entries; on a duplicate A-number the first entry wins.
func newDB[F field.Element[F]](entries []Entry[F], digest Digest, minMatch int) *DB[F] {
	db := &DB[F]{
		entries:  entries,
		byID:     make(map[uint32]int, len(entries)),
		exact:    make(map[fingerprint][]int, len(entries)),
		prefix:   make(map[fingerprint][]int, len(entries)),
		minMatch: minMatch,
		digest:   digest,
	}
	for i, e := range entries {
		if _, dup := db.byID[e.ID]; !dup {
			db.byID[e.ID] = i
		}
		prints := prefixPrints(e.Seq)
		n := e.Seq.Len()
		db.exact[prints[n]] = append(db.exact[prints[n]], i)
		for k := minMatch; k <= n; k++ {
			db.prefix[prints[k]] = append(db.prefix[prints[k]], i)
		}
	}

	return db
}

// New builds a database from in-memory entries (digest left zero).
// Only WithMinMatch applies; WithMinTerms filters while reading.
func New[F field.Element[F]](entries []Entry[F], opts ...Option) *DB[F] {
	o := gatherOptions(opts...)

	return newDB(append([]Entry[F](nil), entries...), Digest{}, o.minMatch)
}

// Len returns the number of entries.
func (db *DB[F]) Len() int { return len(db.entries) }

// At returns entry i. It panics when i is outside [0, Len), like a slice.
func (db *DB[F]) At(i int) Entry[F] { return db.entries[i] }

// Entries returns the entries in file order; callers must not modify it.
func (db *DB[F]) Entries() []Entry[F] { return db.entries }

// Digest returns the BLAKE3 digest of the loaded bytes.
func (db *DB[F]) Digest() Digest { return db.digest }

// Lookup returns the entry index for an A-number.
func (db *DB[F]) Lookup(id uint32) (int, error) {
	i, ok := db.byID[id]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, FormatID(id))
	}

	return i, nil
}

// MinMatch returns the shortest common prefix Find accepts.
func (db *DB[F]) MinMatch() int { return db.minMatch }

// Find returns the indices (ascending) of entries that agree with s on
// their common prefix, as series.Fixed.Equal does, when that prefix holds
// at least MinMatch terms. A query shorter than MinMatch only finds
// entries with exactly its terms.
//
// Complexity: O(Len(s)) index probes plus the confirmed hits.
func (db *DB[F]) Find(s series.Fixed[F]) []int {
	prints := prefixPrints(s)
	n := s.Len()
	if n < db.minMatch {
		return db.confirm(nil, db.exact[prints[n]], s, n, n)
	}
	// entries at least as long as s, then shorter ones that s extends
	out := db.confirm(nil, db.prefix[prints[n]], s, n, maxTerms)
	for k := db.minMatch; k < n; k++ {
		out = db.confirm(out, db.exact[prints[k]], s, k, k)
	}
	sort.Ints(out)

	return out
}

// confirm appends the candidates whose length lies in [lo, hi] and whose
// terms agree with s.
func (db *DB[F]) confirm(out, cands []int, s series.Fixed[F], lo, hi int) []int {
	for _, i := range cands {
		e := db.entries[i].Seq
		if e.Len() >= lo && e.Len() <= hi && e.Equal(s) {
			out = append(out, i)
		}
	}

	return out
}

// Contains reports whether Find(s) is non-empty.
func (db *DB[F]) Contains(s series.Fixed[F]) bool {
	return len(db.Find(s)) > 0
}
