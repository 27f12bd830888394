// SPDX-License-Identifier: MIT

package search

import (
	"runtime"

	"github.com/katalvlaran/fpseq/interpolate"
	"github.com/katalvlaran/fpseq/series"
)

// Defaults.
const (
	DefaultTopK     = 10
	DefaultMinMatch = 6
	// DefaultPredict is how many terms each recurrence fit predicts.
	DefaultPredict = 4
)

const (
	panicWorkersInvalid  = "search: WithWorkers: n must be >= 0"
	panicTopKInvalid     = "search: WithTopK: k must be >= 1"
	panicMinMatchInvalid = "search: WithMinMatch: m must be in [1, series.N]"
	panicPredictInvalid  = "search: WithPredict: n must be >= 0"
)

// Option configures an Engine. Constructors panic on nonsensical values.
type Option func(*options)

type options struct {
	workers       int
	topK          int
	minMatch      int
	ops           []string // nil: every registered unary operator
	fit           interpolate.Options
	fitTransforms bool
	predict       int
}

// WithWorkers bounds the scan goroutines; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithTopK keeps the k best matches.
func WithTopK(k int) Option {
	if k < 1 {
		panic(panicTopKInvalid)
	}

	return func(o *options) { o.topK = k }
}

// WithMinMatch sets the number of leading terms a hit must agree on.
func WithMinMatch(m int) Option {
	if m < 1 || m > series.N {
		panic(panicMinMatchInvalid)
	}

	return func(o *options) { o.minMatch = m }
}

// WithOps restricts the query transforms to the named unary operators, in
// the given order. Unknown names make New fail with series.ErrUnknownOp.
func WithOps(names ...string) Option {
	ops := append([]string(nil), names...)

	return func(o *options) { o.ops = ops }
}

// WithFitOptions configures recurrence fitting.
func WithFitOptions(fo interpolate.Options) Option {
	return func(o *options) { o.fit = fo }
}

// WithFitTransforms also fits recurrences to every transform of the query.
func WithFitTransforms(on bool) Option {
	return func(o *options) { o.fitTransforms = on }
}

// WithPredict sets how many terms each fit predicts.
func WithPredict(n int) Option {
	if n < 0 {
		panic(panicPredictInvalid)
	}

	return func(o *options) { o.predict = n }
}

func gatherOptions(opts ...Option) options {
	o := options{
		topK:     DefaultTopK,
		minMatch: DefaultMinMatch,
		fit:      interpolate.DefaultOptions(),
		predict:  DefaultPredict,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
