// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for linear solves.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - The free-variable policy decides what Solve returns for a consistent
//     system whose coefficient matrix has fewer pivots than unknowns. FreeZero
//     picks the particular solution with every non-pivot unknown set to zero;
//     the interpolation engine relies on it together with its normalization row.
package matrix

// FreeVariablePolicy selects how Solve treats unknowns without a pivot.
type FreeVariablePolicy int

const (
	// FreeZero sets every free unknown to zero.
	FreeZero FreeVariablePolicy = iota
	// FreeReject fails with ErrUnderdetermined when any unknown is free.
	FreeReject
)

// String names the policy.
func (p FreeVariablePolicy) String() string {
	switch p {
	case FreeZero:
		return "zero"
	case FreeReject:
		return "reject"
	}

	return "unknown"
}

// ---------- Defaults (single source of truth) ----------

// DefaultFreeVariables is the policy used when no option is given.
const DefaultFreeVariables = FreeZero

// ---------- Internal panic messages (no magic strings) ----------

const panicFreePolicyInvalid = "matrix: WithFreeVariables: unknown policy"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	free FreeVariablePolicy // DefaultFreeVariables
}

// FreeVariables returns the configured policy.
func (o Options) FreeVariables() FreeVariablePolicy { return o.free }

// WithFreeVariables selects the free-variable policy used by Solve.
// Panics on a value outside the declared constants.
func WithFreeVariables(p FreeVariablePolicy) Option {
	if p != FreeZero && p != FreeReject {
		panic(panicFreePolicyInvalid)
	}

	return func(o *Options) { o.free = p }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{free: DefaultFreeVariables}
}

// gatherOptions applies opts over the defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ResolveOptions exposes the effective configuration for a set of options.
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts...) }
