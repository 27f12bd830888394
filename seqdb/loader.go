// SPDX-License-Identifier: MIT

package seqdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/series"
)

var log = logging.Logger("seqdb")

// gzipMagic opens every gzip member (RFC 1952).
var gzipMagic = []byte{0x1f, 0x8b}

// maxLineBytes bounds a single stripped-file line.
const maxLineBytes = 1 << 20

// Load reads the stripped database at path. Gzip input is detected by its
// magic bytes, independent of the file name.
func Load[F field.Element[F]](path string, opts ...Option) (*DB[F], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqdb: open %s: %w", path, err)
	}
	defer f.Close()

	db, err := Read[F](f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("loaded %d sequences from %s (blake3 %s)", db.Len(), path, db.Digest())

	return db, nil
}

// Read parses a stripped database from r, plain or gzip-compressed.
//
// Format:
//   - Lines starting with '#' and blank lines are skipped.
//   - Each other line is "A<digits>" followed by comma-separated integers;
//     blanks around fields and a trailing comma are tolerated.
//   - Terms are read until the first one that does not parse or until
//     series.N are kept; entries with fewer than the minimum are skipped.
//
// The digest covers every byte consumed from r.
func Read[F field.Element[F]](r io.Reader, opts ...Option) (*DB[F], error) {
	o := gatherOptions(opts...)
	hasher := blake3.New()
	raw := bufio.NewReader(io.TeeReader(r, hasher))

	var src io.Reader = raw
	if head, _ := raw.Peek(len(gzipMagic)); bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(raw)
		if err != nil {
			return nil, fmt.Errorf("seqdb: gzip: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	entries, skipped, err := parseLines[F](src, o)
	if err != nil {
		return nil, err
	}
	// trailing bytes the decoder left unread still belong to the digest
	if _, err = io.Copy(io.Discard, raw); err != nil {
		return nil, fmt.Errorf("seqdb: read: %w", err)
	}
	if skipped > 0 {
		log.Debugf("skipped %d sequences with fewer than %d terms", skipped, o.minTerms)
	}

	var d Digest
	copy(d[:], hasher.Sum(nil))

	return newDB(entries, d, o.minMatch), nil
}

func parseLines[F field.Element[F]](r io.Reader, o options) ([]Entry[F], int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		entries []Entry[F]
		skipped int
		lineNo  int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		e, err := parseLine[F](line)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if e.Seq.Len() < o.minTerms {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("seqdb: read: %w", err)
	}

	return entries, skipped, nil
}

// parseLine splits "A000045 ,0,1,1,2,3," into an Entry.
func parseLine[F field.Element[F]](line string) (Entry[F], error) {
	fields := strings.Split(line, ",")
	id, err := parseLineID(fields[0])
	if err != nil {
		return Entry[F]{}, err
	}
	terms := make([]F, 0, maxTerms)
	for _, s := range fields[1:] {
		v, err := field.Parse[F](strings.TrimSpace(s))
		if err != nil {
			break
		}
		terms = append(terms, v)
		if len(terms) == maxTerms {
			break
		}
	}

	return Entry[F]{ID: id, Seq: series.FromSlice(terms)}, nil
}

// parseLineID requires the leading 'A' that ParseID leaves optional.
func parseLineID(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "A") {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}

	return ParseID(s)
}
