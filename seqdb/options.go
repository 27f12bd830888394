// SPDX-License-Identifier: MIT

package seqdb

const (
	// DefaultMinTerms keeps every entry with at least one known term.
	DefaultMinTerms = 1
	// DefaultMinMatch is the shortest common prefix Find accepts.
	DefaultMinMatch = 6
)

const (
	panicMinTermsInvalid = "seqdb: WithMinTerms: k must be in [0, series.N]"
	panicMinMatchInvalid = "seqdb: WithMinMatch: k must be in [1, series.N]"
)

// Option configures Read, Load and New.
type Option func(*options)

type options struct {
	minTerms int
	minMatch int
}

// WithMinTerms skips entries with fewer than k parsed terms.
// Panics when k is negative or larger than series.N.
func WithMinTerms(k int) Option {
	if k < 0 || k > maxTerms {
		panic(panicMinTermsInvalid)
	}

	return func(o *options) { o.minTerms = k }
}

// WithMinMatch sets how many leading terms Find needs in common before a
// prefix counts as a match. Panics when k is outside [1, series.N].
func WithMinMatch(k int) Option {
	if k < 1 || k > maxTerms {
		panic(panicMinMatchInvalid)
	}

	return func(o *options) { o.minMatch = k }
}

func gatherOptions(opts ...Option) options {
	o := options{minTerms: DefaultMinTerms, minMatch: DefaultMinMatch}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
