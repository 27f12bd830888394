// SPDX-License-Identifier: MIT

package series

import "github.com/katalvlaran/fpseq/field"

// Add returns f + g; cnt = min(f.Len(), g.Len()).
func (f Fixed[F]) Add(g Fixed[F]) Fixed[F] {
	r := Fixed[F]{cnt: min(f.cnt, g.cnt)}
	for i := 0; i < N; i++ {
		r.c[i] = f.c[i].Add(g.c[i])
	}

	return r
}

// Sub returns f − g; cnt = min(f.Len(), g.Len()).
func (f Fixed[F]) Sub(g Fixed[F]) Fixed[F] {
	r := Fixed[F]{cnt: min(f.cnt, g.cnt)}
	for i := 0; i < N; i++ {
		r.c[i] = f.c[i].Sub(g.c[i])
	}

	return r
}

// Neg returns −f.
func (f Fixed[F]) Neg() Fixed[F] {
	r := Fixed[F]{cnt: f.cnt}
	for i := 0; i < N; i++ {
		r.c[i] = f.c[i].Neg()
	}

	return r
}

// Scale multiplies every coefficient by a.
func (f Fixed[F]) Scale(a F) Fixed[F] {
	r := Fixed[F]{cnt: f.cnt}
	for i := 0; i < N; i++ {
		r.c[i] = a.Mul(f.c[i])
	}

	return r
}

// Mul returns the Cauchy product f·g truncated to N terms;
// cnt = min(f.Len(), g.Len()).
func (f Fixed[F]) Mul(g Fixed[F]) Fixed[F] {
	r := Fixed[F]{cnt: min(f.cnt, g.cnt)}
	for i := 0; i < N; i++ {
		if f.c[i].IsZero() {
			continue
		}
		for j := 0; j < N-i; j++ {
			r.c[i+j] = r.c[i+j].Add(f.c[i].Mul(g.c[j]))
		}
	}

	return r
}

// Div returns q with q·g = f, by long division:
// q[i] = (f[i] − Σ_{j<i} q[j]·g[i−j]) / g[0].
//
// Errors:
//   - ErrNotInvertible when g[0] = 0.
func (f Fixed[F]) Div(g Fixed[F]) (Fixed[F], error) {
	inv, err := g.c[0].Inv()
	if err != nil || g.cnt == 0 {
		return Fixed[F]{}, ErrNotInvertible
	}
	q := Fixed[F]{c: f.c, cnt: min(f.cnt, g.cnt)}
	for i := 0; i < N; i++ {
		q.c[i] = q.c[i].Mul(inv)
		if q.c[i].IsZero() {
			continue
		}
		for j := i + 1; j < N; j++ {
			q.c[j] = q.c[j].Sub(q.c[i].Mul(g.c[j-i]))
		}
	}

	return q, nil
}

// Recip returns 1/f.
func (f Fixed[F]) Recip() (Fixed[F], error) {
	return One[F]().Div(f)
}

// Pow returns fᵏ by square-and-multiply; negative k goes through Recip.
//
// Errors:
//   - ErrNotInvertible when k < 0 and f[0] = 0.
func (f Fixed[F]) Pow(k int) (Fixed[F], error) {
	b := f
	if k < 0 {
		var err error
		if b, err = f.Recip(); err != nil {
			return Fixed[F]{}, err
		}
		k = -k
	}
	res := One[F]()
	for e := uint(k); e > 0; e >>= 1 {
		if e&1 == 1 {
			res = res.Mul(b)
		}
		b = b.Mul(b)
	}

	return res, nil
}

// RatPow returns f^(p/q) for q ≥ 1.
//
// Implementation:
//   - q = 1 is Pow(p).
//   - Otherwise f[0] must be one and the q-th root r (with r[0] = 1) is refined
//     one term at a time: with k the first index where f − r^q is nonzero,
//     r += (f − r^q)[k]·xᵏ / q. Each step fixes index k and never disturbs
//     lower indices, so at most N steps are needed. Then Pow(p).
//
// Errors:
//   - ErrExponent when q < 1.
//   - ErrNonUnit when q > 1 and f[0] ≠ 1.
//   - ErrNotInvertible when p < 0 and the root is not invertible.
func (f Fixed[F]) RatPow(p, q int) (Fixed[F], error) {
	if q < 1 {
		return Fixed[F]{}, ErrExponent
	}
	if q == 1 {
		return f.Pow(p)
	}
	if f.cnt == 0 || !field.IsOne(f.c[0]) {
		return Fixed[F]{}, ErrNonUnit
	}

	invQ := smallInv[F](q)
	r := One[F]()
	for iter := 0; iter < N; iter++ {
		rq, _ := r.Pow(q) // q > 0 never fails
		diff := f.Sub(rq)
		k := diff.leadingIndex()
		if k < 0 {
			break
		}
		r.c[k] = r.c[k].Add(diff.c[k].Mul(invQ))
	}
	r.cnt = f.cnt

	return r.Pow(p)
}

// Sqrt returns the square root with constant term one.
func (f Fixed[F]) Sqrt() (Fixed[F], error) {
	return f.RatPow(1, 2)
}

// leadingIndex returns the first significant index holding a nonzero
// coefficient, or -1 if there is none.
func (f Fixed[F]) leadingIndex() int {
	for i := 0; i < f.cnt; i++ {
		if !f.c[i].IsZero() {
			return i
		}
	}

	return -1
}

