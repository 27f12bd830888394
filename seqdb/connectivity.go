// SPDX-License-Identifier: MIT

package seqdb

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/series"
)

// progressEvery is the source-index stride of exploration progress logs.
const progressEvery = 1000

// Relation records that Op applied to entry From (and entry With, for a
// binary operator) yields entry To.
type Relation struct {
	From int
	With int // -1 for unary operators
	Op   string
	To   int
}

// Binary reports whether the relation has a second operand.
func (r Relation) Binary() bool { return r.With >= 0 }

// Connection is the relation count of one database entry.
type Connection struct {
	Index int
	ID    uint32
	Count uint32
}

// Connectivity counts, for every entry, the relations it takes part in.
// Each relation adds one to From, With (when binary) and To.
//
// The result is sorted by decreasing count, then by index. Cancelling ctx
// stops the scan and returns ctx's error.
//
// Complexity: O(n²) candidate constructions and lookups.
func Connectivity[F field.Element[F]](ctx context.Context, db *DB[F], workers int) ([]Connection, error) {
	counts := make([]atomic.Uint32, db.Len())
	err := explore(ctx, db, workers, func(r Relation) {
		counts[r.From].Add(1)
		if r.Binary() {
			counts[r.With].Add(1)
		}
		counts[r.To].Add(1)
	})
	if err != nil {
		return nil, err
	}

	out := make([]Connection, len(counts))
	for i := range out {
		out[i] = Connection{Index: i, ID: db.entries[i].ID, Count: counts[i].Load()}
	}
	sort.SliceStable(out, func(x, y int) bool {
		if out[x].Count != out[y].Count {
			return out[x].Count > out[y].Count
		}
		return out[x].Index < out[y].Index
	})

	return out, nil
}

// explore derives every candidate and calls visit, concurrently, for each
// one found in the database.
//
// For each entry a the unary candidates are derive, integrate, lshift,
// rshift and neg, plus reversion ("inverse") when a(0) = 0 and sqrt when
// a(0) = 1. For each later entry b the binary candidates are a+b, a−b,
// b−a, a·b, a⊙b, then b∘a if a(0) = 0 else b/a, and a∘b if b(0) = 0 else
// a/b. Candidates whose operation fails a precondition are skipped.
//
// Work is spread over workers goroutines (GOMAXPROCS when workers ≤ 0),
// one task per source entry.
func explore[F field.Element[F]](ctx context.Context, db *DB[F], workers int, visit func(Relation)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	n := db.Len()

	hit := func(c candidate[F], from, with int) {
		if c.err != nil {
			return
		}
		connectivityCandidates.Inc()
		if c.swap {
			from, with = with, from
		}
		for _, k := range db.Find(c.seq) {
			connectivityHits.Inc()
			visit(Relation{From: from, With: with, Op: c.op, To: k})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if i%progressEvery == 0 {
				log.Debugf("explore %d / %d", i, n)
			}
			a := db.entries[i].Seq
			for _, c := range unaryCandidates(a) {
				hit(c, i, -1)
			}
			for j := i + 1; j < n; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				for _, c := range pairCandidates(a, db.entries[j].Seq) {
					hit(c, i, j)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// Relations collects every relation into a graph, sorted by From, With,
// To and Op.
func Relations[F field.Element[F]](ctx context.Context, db *DB[F], workers int) (*RelationGraph, error) {
	var (
		mu   sync.Mutex
		rels []Relation
	)
	err := explore(ctx, db, workers, func(r Relation) {
		mu.Lock()
		rels = append(rels, r)
		mu.Unlock()
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(rels, func(x, y int) bool {
		a, b := rels[x], rels[y]
		switch {
		case a.From != b.From:
			return a.From < b.From
		case a.With != b.With:
			return a.With < b.With
		case a.To != b.To:
			return a.To < b.To
		}
		return a.Op < b.Op
	})

	return newRelationGraph(db.Len(), rels), nil
}

// candidate is one derived sequence. swap marks a binary candidate built
// as op(b, a) rather than op(a, b).
type candidate[F field.Element[F]] struct {
	op   string
	seq  series.Fixed[F]
	err  error
	swap bool
}

func plain[F field.Element[F]](op string, s series.Fixed[F]) candidate[F] {
	return candidate[F]{op: op, seq: s}
}

func fallible[F field.Element[F]](op string, s series.Fixed[F], err error) candidate[F] {
	return candidate[F]{op: op, seq: s, err: err}
}

func swapped[F field.Element[F]](c candidate[F]) candidate[F] {
	c.swap = true
	return c
}

func unaryCandidates[F field.Element[F]](a series.Fixed[F]) []candidate[F] {
	out := []candidate[F]{
		plain("derive", a.Derive()),
		plain("integrate", a.Integrate()),
		plain("lshift", a.Lshift()),
		plain("rshift", a.Rshift()),
		plain("neg", a.Neg()),
	}
	a0 := a.Coeff(0)
	if a0.IsZero() {
		r, err := a.Inverse()
		out = append(out, fallible("inverse", r, err))
	}
	if field.IsOne(a0) {
		r, err := a.Sqrt()
		out = append(out, fallible("sqrt", r, err))
	}

	return out
}

func pairCandidates[F field.Element[F]](a, b series.Fixed[F]) []candidate[F] {
	out := []candidate[F]{
		plain("add", a.Add(b)),
		plain("sub", a.Sub(b)),
		swapped(plain("sub", b.Sub(a))),
		plain("mul", a.Mul(b)),
		plain("hadamard", a.Hadamard(b)),
	}
	if a.Coeff(0).IsZero() {
		r, err := b.Compose(a)
		out = append(out, swapped(fallible("compose", r, err)))
	} else {
		r, err := b.Div(a)
		out = append(out, swapped(fallible("div", r, err)))
	}
	if b.Coeff(0).IsZero() {
		r, err := a.Compose(b)
		out = append(out, fallible("compose", r, err))
	} else {
		r, err := a.Div(b)
		out = append(out, fallible("div", r, err))
	}

	return out
}
