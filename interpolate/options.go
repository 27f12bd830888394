// SPDX-License-Identifier: MIT

package interpolate

// Defaults for Options.
const (
	DefaultMaxOrder  = 4
	DefaultMaxDegree = 3
)

// Options configures Guess.
//
// Fields:
//   - MaxOrder       — largest shift tried by the linear and holonomic finders.
//   - MaxDegree      — largest polynomial degree tried by the polynomial finders.
//   - Linear         — try Berlekamp–Massey.
//   - Hypergeometric — try P(n)·a(n+1) = Q(n)·a(n) for degrees 0..MaxDegree.
//   - Holonomic      — try Σ P_j(n)·a(n+j) = 0 by increasing order+degree.
//
// Example:
//
//	opts := interpolate.DefaultOptions()
//	opts.Holonomic = false // constant-coefficient and hypergeometric only
//	rec, ok := interpolate.Guess(seq, opts)
type Options struct {
	MaxOrder       int
	MaxDegree      int
	Linear         bool
	Hypergeometric bool
	Holonomic      bool
}

// DefaultOptions enables every family with the default bounds.
func DefaultOptions() Options {
	return Options{
		MaxOrder:       DefaultMaxOrder,
		MaxDegree:      DefaultMaxDegree,
		Linear:         true,
		Hypergeometric: true,
		Holonomic:      true,
	}
}
