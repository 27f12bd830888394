// SPDX-License-Identifier: MIT

package interpolate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fpseq/field"
)

// Kind names a recurrence family.
type Kind int

const (
	// Linear: a(n) = Σ c_j·a(n−j) with constant c_j.
	Linear Kind = iota
	// Hypergeometric: P(n)·a(n+1) = Q(n)·a(n).
	Hypergeometric
	// Holonomic: Σ_j P_j(n)·a(n+j) = 0.
	Holonomic
)

// String names the family.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Hypergeometric:
		return "hypergeometric"
	case Holonomic:
		return "holonomic"
	}

	return "unknown"
}

// Recurrence is a fitted recurrence.
//
// Fields:
//   - Kind   — the family it was found in.
//   - Coeffs — c₁..c_L for Linear; nil otherwise.
//   - Polys  — P_0..P_r (coefficients by increasing power of n) with
//     Σ_j P_j(n)·a(n+j) = 0. Every kind fills Polys; a Hypergeometric fit
//     P(n)·a(n+1) = Q(n)·a(n) is stored as [−Q, P].
type Recurrence[F field.Element[F]] struct {
	Kind   Kind
	Coeffs []F
	Polys  [][]F
}

// NewLinear builds a Linear recurrence from c₁..c_L.
func NewLinear[F field.Element[F]](coeffs []F) Recurrence[F] {
	l := len(coeffs)
	polys := make([][]F, l+1)
	for j := 1; j <= l; j++ {
		// a(n+L) − Σ c_j·a(n+L−j) = 0
		polys[l-j] = []F{coeffs[j-1].Neg()}
	}
	polys[l] = []F{field.One[F]()}

	return Recurrence[F]{Kind: Linear, Coeffs: coeffs, Polys: polys}
}

// NewHypergeometric builds P(n)·a(n+1) = Q(n)·a(n).
func NewHypergeometric[F field.Element[F]](p, q []F) Recurrence[F] {
	negQ := make([]F, len(q))
	for i, v := range q {
		negQ[i] = v.Neg()
	}

	return Recurrence[F]{Kind: Hypergeometric, Polys: [][]F{negQ, p}}
}

// NewHolonomic wraps the polynomials returned by FindPRecursive.
func NewHolonomic[F field.Element[F]](polys [][]F) Recurrence[F] {
	return Recurrence[F]{Kind: Holonomic, Polys: polys}
}

// Order returns the largest shift: L for Linear, len(Polys)−1 otherwise.
func (r Recurrence[F]) Order() int {
	if r.Kind == Linear {
		return len(r.Coeffs)
	}

	return max(0, len(r.Polys)-1)
}

// Degree returns the largest polynomial degree (0 for Linear).
func (r Recurrence[F]) Degree() int {
	d := 0
	for _, p := range r.Polys {
		d = max(d, len(p)-1)
	}

	return d
}

// Holds reports whether every window of seq satisfies the recurrence.
func (r Recurrence[F]) Holds(seq []F) bool {
	return holds(r.Polys, seq)
}

// Extend predicts the next n terms after seq.
//
// Errors:
//   - ErrShortSequence when len(seq) < Order().
//   - ErrDegenerate when the recurrence has no polynomials or the leading
//     polynomial vanishes at a needed index.
func (r Recurrence[F]) Extend(seq []F, n int) ([]F, error) {
	if len(r.Polys) == 0 {
		return nil, fmt.Errorf("%w: no polynomials", ErrDegenerate)
	}
	ord := r.Order()
	if len(seq) < ord {
		return nil, ErrShortSequence
	}
	all := append(make([]F, 0, len(seq)+n), seq...)
	out := make([]F, 0, n)
	lead := r.Polys[len(r.Polys)-1]
	for t := 0; t < n; t++ {
		// the new term is a(i+ord) with window start i
		i := len(all) - ord
		idx := fromInt[F](i)
		var sum F
		for j := 0; j < ord; j++ {
			sum = sum.Add(evalPoly(r.Polys[j], idx).Mul(all[i+j]))
		}
		next, err := sum.Neg().Div(evalPoly(lead, idx))
		if err != nil {
			return nil, fmt.Errorf("%w: n = %d", ErrDegenerate, i)
		}
		all = append(all, next)
		out = append(out, next)
	}

	return out, nil
}

// String renders the recurrence, e.g. "a(n) = 1*a(n-1) + 1*a(n-2)" or
// "(-2 - n)*a(n) + (1)*a(n+2) = 0".
func (r Recurrence[F]) String() string {
	var sb strings.Builder
	if r.Kind == Linear {
		sb.WriteString("a(n) =")
		if len(r.Coeffs) == 0 {
			sb.WriteString(" 0")
		}
		for j, c := range r.Coeffs {
			if j > 0 {
				sb.WriteString(" +")
			}
			fmt.Fprintf(&sb, " %s*a(n-%d)", formatElem(c), j+1)
		}

		return sb.String()
	}

	first := true
	for j, p := range r.Polys {
		if isZeroPoly(p) {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		sb.WriteString("(" + formatPoly(p) + ")*")
		if j == 0 {
			sb.WriteString("a(n)")
		} else {
			fmt.Fprintf(&sb, "a(n+%d)", j)
		}
	}
	if first {
		sb.WriteString("0")
	}
	sb.WriteString(" = 0")

	return sb.String()
}

// signed is implemented by the modular fields.
type signed interface{ Signed() int64 }

// formatElem prints the symmetric representative when the field has one.
func formatElem[F field.Element[F]](x F) string {
	if s, ok := any(x).(signed); ok {
		return fmt.Sprint(s.Signed())
	}

	return x.String()
}

// formatPoly prints Σ p[k]·nᵏ, lowest power first.
func formatPoly[F field.Element[F]](p []F) string {
	var terms []string
	for k, c := range p {
		if c.IsZero() {
			continue
		}
		s := formatElem(c)
		switch k {
		case 0:
			terms = append(terms, s)
		case 1:
			terms = append(terms, monomial(s, "n"))
		default:
			terms = append(terms, monomial(s, fmt.Sprintf("n^%d", k)))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	out := terms[0]
	for _, t := range terms[1:] {
		if strings.HasPrefix(t, "-") {
			out += " - " + t[1:]
		} else {
			out += " + " + t
		}
	}

	return out
}

// monomial renders c·v, eliding a unit coefficient.
func monomial(c, v string) string {
	switch c {
	case "1":
		return v
	case "-1":
		return "-" + v
	}

	return c + "*" + v
}

func isZeroPoly[F field.Element[F]](p []F) bool {
	for _, c := range p {
		if !c.IsZero() {
			return false
		}
	}

	return true
}
