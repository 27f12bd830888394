// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/interpolate"
	"github.com/katalvlaran/fpseq/seqdb"
	"github.com/katalvlaran/fpseq/series"
)

var log = logging.Logger("search")

// chunksPerWorker splits the scan finer than the worker count so that a
// slow chunk does not idle the rest.
const chunksPerWorker = 4

// Match is one database hit.
type Match struct {
	Index   int    // entry index in the database
	ID      uint32 // A-number
	Op      string // operator applied to the query
	Cost    int    // operator cost
	Matched int    // leading terms compared, all equal
	Score   int    // Matched − Cost
}

// Fit is a recurrence found for the query or one of its transforms.
type Fit[F field.Element[F]] struct {
	Op         string
	Recurrence interpolate.Recurrence[F]
	Next       []F // predicted terms following the transform
}

// Result is the outcome of one Search.
type Result[F field.Element[F]] struct {
	Matches []Match  // best first
	Fits    []Fit[F] // query first, then transforms in operator order
}

// transform is the query after one operator.
type transform[F field.Element[F]] struct {
	op  series.UnaryOp[F]
	seq series.Fixed[F]
}

// Engine searches one database. It is safe for concurrent use.
type Engine[F field.Element[F]] struct {
	db   *seqdb.DB[F]
	ops  []series.UnaryOp[F]
	opts options
}

// New builds an Engine over db.
//
// Errors:
//   - ErrNilDatabase when db is nil.
//   - series.ErrUnknownOp when WithOps names an unregistered operator.
func New[F field.Element[F]](db *seqdb.DB[F], opts ...Option) (*Engine[F], error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	o := gatherOptions(opts...)

	ops := series.UnaryOps[F]()
	if o.ops != nil {
		ops = make([]series.UnaryOp[F], 0, len(o.ops))
		for _, name := range o.ops {
			op, err := series.LookupUnary[F](name)
			if err != nil {
				return nil, fmt.Errorf("search: %w", err)
			}
			ops = append(ops, op)
		}
	}

	return &Engine[F]{db: db, ops: ops, opts: o}, nil
}

// Ops returns the operator names in application order.
func (e *Engine[F]) Ops() []string {
	names := make([]string, len(e.ops))
	for i, op := range e.ops {
		names[i] = op.Name
	}

	return names
}

// Search matches query against the database and fits recurrences.
//
// Steps:
//  1. Apply every operator to the query. Operators whose preconditions
//     fail, or whose result is shorter than MinMatch, are skipped.
//  2. Scan the database in chunks on an errgroup bounded by Workers; for
//     each entry keep the best-scoring transform (first operator on ties).
//  3. Fit recurrences to the query and, with WithFitTransforms, to each
//     transform.
//
// Errors:
//   - ErrShortQuery when query.Len() < MinMatch.
//   - ctx's error when it is cancelled during the scan.
func (e *Engine[F]) Search(ctx context.Context, query series.Fixed[F]) (Result[F], error) {
	start := time.Now()
	defer func() { searchDuration.Observe(time.Since(start).Seconds()) }()

	if query.Len() < e.opts.minMatch {
		return Result[F]{}, fmt.Errorf("%w: %d < %d", ErrShortQuery, query.Len(), e.opts.minMatch)
	}

	var trs []transform[F]
	for _, op := range e.ops {
		t, err := op.Apply(query)
		if err != nil || t.Len() < e.opts.minMatch {
			continue
		}
		trs = append(trs, transform[F]{op: op, seq: t})
	}
	log.Debugf("%d of %d transforms usable against %d entries", len(trs), len(e.ops), e.db.Len())

	matches, err := e.scan(ctx, trs)
	if err != nil {
		return Result[F]{}, err
	}

	return Result[F]{Matches: matches, Fits: e.fit(query, trs)}, nil
}

func (e *Engine[F]) scan(ctx context.Context, trs []transform[F]) ([]Match, error) {
	top := newTopK(e.opts.topK)
	n := e.db.Len()
	if n == 0 || len(trs) == 0 {
		return top.list(), nil
	}
	chunk := max(1, n/(e.opts.workers*chunksPerWorker))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers)
	for lo := 0; lo < n; lo += chunk {
		if gctx.Err() != nil {
			break
		}
		hi := min(n, lo+chunk)
		lo := lo
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			compared := 0
			for i := lo; i < hi; i++ {
				entry := e.db.At(i)
				if m, ok := e.best(i, entry, trs); ok {
					searchMatches.Inc()
					top.insert(m)
				}
				compared += len(trs)
			}
			searchComparisons.Add(float64(compared))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return top.list(), nil
}

// best returns the highest-scoring transform matching entry.
func (e *Engine[F]) best(i int, entry seqdb.Entry[F], trs []transform[F]) (Match, bool) {
	var (
		m     Match
		found bool
	)
	for _, t := range trs {
		matched := min(t.seq.Len(), entry.Seq.Len())
		if matched < e.opts.minMatch || !t.seq.Equal(entry.Seq) {
			continue
		}
		score := matched - t.op.Cost
		if !found || score > m.Score {
			m = Match{Index: i, ID: entry.ID, Op: t.op.Name, Cost: t.op.Cost, Matched: matched, Score: score}
			found = true
		}
	}

	return m, found
}

// fit runs interpolate.Guess on the query and optionally on each transform.
func (e *Engine[F]) fit(query series.Fixed[F], trs []transform[F]) []Fit[F] {
	var fits []Fit[F]
	try := func(op string, s series.Fixed[F]) {
		terms := s.Terms()
		rec, ok := interpolate.Guess(terms, e.opts.fit)
		if !ok {
			return
		}
		next, err := rec.Extend(terms, e.opts.predict)
		if err != nil {
			log.Debugf("fit %s: %s", op, err)
			next = nil
		}
		fits = append(fits, Fit[F]{Op: op, Recurrence: rec, Next: next})
	}

	try("id", query)
	if e.opts.fitTransforms {
		for _, t := range trs {
			if t.op.Name == "id" {
				continue
			}
			try(t.op.Name, t.seq)
		}
	}

	return fits
}

// topK is a bounded, mutex-guarded list ordered by less.
type topK struct {
	mu    sync.Mutex
	k     int
	items []Match
}

func newTopK(k int) *topK {
	return &topK{k: k, items: make([]Match, 0, k+1)}
}

// less orders by score, then A-number, then index.
func less(a, b Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}

	return a.Index < b.Index
}

func (t *topK) insert(m Match) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos := sort.Search(len(t.items), func(i int) bool { return less(m, t.items[i]) })
	if pos >= t.k {
		return
	}
	t.items = append(t.items, Match{})
	copy(t.items[pos+1:], t.items[pos:])
	t.items[pos] = m
	if len(t.items) > t.k {
		t.items = t.items[:t.k]
	}
}

func (t *topK) list() []Match {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Match(nil), t.items...)
}
