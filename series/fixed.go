// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fpseq/field"
)

// N is the physical capacity of a Fixed series.
const N = 16

// Formatting literals.
const _termSep = ","

// Fixed is a power series truncated to N coefficients.
//   - c holds the coefficients; c[i] is the coefficient of xⁱ.
//   - cnt is the number of significant (known) leading coefficients, 0..N.
//
// The zero value is the zero series with nothing known. Fixed is a value
// type: every operation returns a new series and never mutates its operands.
// Slots at or beyond cnt carry no meaning; operations only read slots below
// the operand's cnt when computing a significant output slot.
type Fixed[F field.Element[F]] struct {
	c   [N]F
	cnt int
}

// Zero returns the series 0 known to all N terms.
func Zero[F field.Element[F]]() Fixed[F] {
	return Fixed[F]{cnt: N}
}

// Promote returns the constant series c known to all N terms.
func Promote[F field.Element[F]](c F) Fixed[F] {
	f := Zero[F]()
	f.c[0] = c

	return f
}

// Identity returns the series x.
func Identity[F field.Element[F]]() Fixed[F] {
	f := Zero[F]()
	f.c[1] = field.One[F]()

	return f
}

// One returns the constant series 1.
func One[F field.Element[F]]() Fixed[F] {
	return Promote(field.One[F]())
}

// FromSlice keeps the first N values of xs; cnt = min(len(xs), N).
func FromSlice[F field.Element[F]](xs []F) Fixed[F] {
	var f Fixed[F]
	f.cnt = copy(f.c[:], xs)

	return f
}

// FromInts is FromSlice over machine integers.
func FromInts[F field.Element[F]](xs ...int64) Fixed[F] {
	return FromSlice(field.FromInts[F](xs...))
}

// Parse reads comma-separated decimal terms ("1, 1, 2, 5"); surrounding
// blanks are trimmed, only the first N terms are read.
//
// Errors:
//   - ErrMalformed wrapping the field error for an empty input or any bad term.
func Parse[F field.Element[F]](s string) (Fixed[F], error) {
	var f Fixed[F]
	for i, t := range strings.SplitN(s, _termSep, N+1) {
		if i == N {
			break
		}
		v, err := field.Parse[F](strings.TrimSpace(t))
		if err != nil {
			return Fixed[F]{}, fmt.Errorf("%w: term %d: %w", ErrMalformed, i, err)
		}
		f.c[i] = v
		f.cnt++
	}

	return f, nil
}

// Coeff returns the coefficient of xⁱ, or zero for i outside [0, N).
func (f Fixed[F]) Coeff(i int) F {
	if i < 0 || i >= N {
		var zero F
		return zero
	}

	return f.c[i]
}

// Len returns the number of significant coefficients.
func (f Fixed[F]) Len() int { return f.cnt }

// Terms returns a copy of the significant coefficients.
func (f Fixed[F]) Terms() []F {
	out := make([]F, f.cnt)
	copy(out, f.c[:f.cnt])

	return out
}

// Truncate limits the significant count to k (k < 0 is treated as 0).
func (f Fixed[F]) Truncate(k int) Fixed[F] {
	f.cnt = clampCount(min(f.cnt, k))

	return f
}

// IsZero reports whether every significant coefficient is zero.
func (f Fixed[F]) IsZero() bool {
	for i := 0; i < f.cnt; i++ {
		if !f.c[i].IsZero() {
			return false
		}
	}

	return true
}

// IsConstant reports whether every significant coefficient past the first is zero.
func (f Fixed[F]) IsConstant() bool { return f.Lshift().IsZero() }

// Equal compares the first min(f.Len(), g.Len()) coefficients.
func (f Fixed[F]) Equal(g Fixed[F]) bool {
	n := min(f.cnt, g.cnt)
	for i := 0; i < n; i++ {
		if !f.c[i].Equal(g.c[i]) {
			return false
		}
	}

	return true
}

// Compare orders f and g lexicographically over their shared prefix.
// It returns -1, 0 or +1; 0 exactly when Equal holds.
func (f Fixed[F]) Compare(g Fixed[F]) int {
	n := min(f.cnt, g.cnt)
	for i := 0; i < n; i++ {
		if c := f.c[i].Cmp(g.c[i]); c != 0 {
			return c
		}
	}

	return 0
}

// String joins the significant coefficients with ",".
func (f Fixed[F]) String() string {
	var sb strings.Builder
	for i := 0; i < f.cnt; i++ {
		if i > 0 {
			sb.WriteString(_termSep)
		}
		sb.WriteString(f.c[i].String())
	}

	return sb.String()
}

// Lshift drops the constant term: (f − f(0)) / x. The count shrinks by one.
func (f Fixed[F]) Lshift() Fixed[F] {
	var r Fixed[F]
	copy(r.c[:N-1], f.c[1:])
	r.cnt = clampCount(f.cnt - 1)

	return r
}

// Rshift multiplies by x. The count grows by one, capped at N.
func (f Fixed[F]) Rshift() Fixed[F] {
	var r Fixed[F]
	copy(r.c[1:], f.c[:N-1])
	r.cnt = clampCount(f.cnt + 1)

	return r
}

// clampCount keeps a significant count inside [0, N].
func clampCount(n int) int {
	return max(0, min(N, n))
}

// small returns the integer n as an element of F.
func small[F field.Element[F]](n int) F {
	if n < 0 {
		return field.FromInt64[F](int64(n))
	}

	return field.FromUint64[F](uint64(n))
}

// smallInv returns 1/n in F for 1 ≤ n ≤ N. Every supported field has
// characteristic above N, so failure is a programming error.
func smallInv[F field.Element[F]](n int) F {
	inv, err := small[F](n).Inv()
	if err != nil {
		panic(fmt.Sprintf("series: %d is not invertible in this field", n))
	}

	return inv
}
