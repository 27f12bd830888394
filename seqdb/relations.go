// SPDX-License-Identifier: MIT

package seqdb

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoPath is returned by Walk.PathTo for an entry the walk did not reach.
var ErrNoPath = errors.New("seqdb: no relation path")

// RelationGraph links entries through the relations found by Relations.
// Each relation connects all of its participants, in both directions.
type RelationGraph struct {
	n     int
	rels  []Relation
	byIdx [][]int // entry → indices into rels
}

func newRelationGraph(n int, rels []Relation) *RelationGraph {
	g := &RelationGraph{n: n, rels: rels, byIdx: make([][]int, n)}
	for ri, r := range rels {
		g.byIdx[r.From] = append(g.byIdx[r.From], ri)
		if r.Binary() && r.With != r.From {
			g.byIdx[r.With] = append(g.byIdx[r.With], ri)
		}
		if r.To != r.From && r.To != r.With {
			g.byIdx[r.To] = append(g.byIdx[r.To], ri)
		}
	}

	return g
}

// Relations returns every relation; callers must not modify it.
func (g *RelationGraph) Relations() []Relation { return g.rels }

// Of returns the relations entry i takes part in.
func (g *RelationGraph) Of(i int) []Relation {
	out := make([]Relation, len(g.byIdx[i]))
	for k, ri := range g.byIdx[i] {
		out[k] = g.rels[ri]
	}

	return out
}

// Walk is the breadth-first tree of a RelationGraph from one entry.
//
//   - Order:  entries in visit order.
//   - Depth:  entry → number of relations from the start.
//   - Parent: entry → the relation through which it was first reached.
type Walk struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]Relation
}

// Reach walks the graph breadth-first from start. maxDepth > 0 stops the
// walk at that many relations; 0 means no limit.
//
// Errors:
//   - ErrOutOfRange for a start outside [0, n).
//   - ctx's error when it is cancelled.
func (g *RelationGraph) Reach(ctx context.Context, start, maxDepth int) (*Walk, error) {
	if start < 0 || start >= g.n {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, start)
	}
	w := &Walk{
		Start:  start,
		Depth:  map[int]int{start: 0},
		Parent: make(map[int]Relation),
	}
	queue := []int{start}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		w.Order = append(w.Order, cur)

		next := w.Depth[cur] + 1
		if maxDepth > 0 && next > maxDepth {
			continue
		}
		for _, ri := range g.byIdx[cur] {
			r := g.rels[ri]
			for _, nbr := range [...]int{r.From, r.With, r.To} {
				if nbr < 0 {
					continue
				}
				if _, seen := w.Depth[nbr]; seen {
					continue
				}
				w.Depth[nbr] = next
				w.Parent[nbr] = r
				queue = append(queue, nbr)
			}
		}
	}

	return w, nil
}

// PathTo returns the relations linking the start to dest, start side first.
func (w *Walk) PathTo(dest int) ([]Relation, error) {
	if _, ok := w.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	var path []Relation
	for cur := dest; cur != w.Start; {
		r := w.Parent[cur]
		path = append(path, r)
		cur = parentOf(r, cur, w.Depth)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// parentOf picks the participant of r one level closer to the start.
func parentOf(r Relation, cur int, depth map[int]int) int {
	want := depth[cur] - 1
	for _, p := range [...]int{r.From, r.With, r.To} {
		if p >= 0 && p != cur {
			if d, ok := depth[p]; ok && d == want {
				return p
			}
		}
	}
	// unreachable for a tree built by Reach
	panic("seqdb: broken walk tree")
}
