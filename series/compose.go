// SPDX-License-Identifier: MIT

package series

// Compose returns f∘g = Σ f[k]·gᵏ for g[0] = 0.
//
// Implementation:
//   - Horner's scheme over the significant coefficients of f:
//     r ← r·g + f[k] for k = Len−1 down to 0. Truncating every product to
//     N terms is exact because g has no constant term.
//
// Returns:
//   - f∘g with cnt = min(f.Len(), g.Len()).
//
// Errors:
//   - ErrComposeConstant when g[0] ≠ 0.
//
// Complexity:
//   - Time O(N³).
func (f Fixed[F]) Compose(g Fixed[F]) (Fixed[F], error) {
	if !g.c[0].IsZero() {
		return Fixed[F]{}, ErrComposeConstant
	}
	r := Zero[F]()
	for k := f.cnt - 1; k >= 0; k-- {
		r = r.Mul(g)
		r.c[0] = r.c[0].Add(f.c[k])
	}
	r.cnt = min(f.cnt, g.cnt)

	return r, nil
}

// Inverse returns the compositional inverse r with f(r(x)) = x.
//
// Implementation:
//   - Stage 1: require f[0] = 0 and f[1] ≠ 0 (both significant).
//   - Stage 2: fixed-point iteration r ← x / (f/x)(r). If r is correct
//     modulo x^m then the next iterate is correct modulo x^(m+1), so Len
//     rounds starting from r = 0 reach full precision.
//
// Errors:
//   - ErrReversion when the preconditions fail.
//
// Complexity:
//   - Time O(N⁴) at N = 16.
func (f Fixed[F]) Inverse() (Fixed[F], error) {
	if f.cnt < 2 || !f.c[0].IsZero() || f.c[1].IsZero() {
		return Fixed[F]{}, ErrReversion
	}
	tail := f.Lshift()
	r := Fixed[F]{cnt: f.cnt}
	for i := 0; i < f.cnt; i++ {
		c, err := tail.Compose(r)
		if err != nil {
			return Fixed[F]{}, err
		}
		inv, err := c.Recip()
		if err != nil {
			return Fixed[F]{}, err
		}
		r = inv.Rshift()
	}

	return r, nil
}

// Hadamard returns the coefficientwise product f⊙g; cnt = min.
func (f Fixed[F]) Hadamard(g Fixed[F]) Fixed[F] {
	r := Fixed[F]{cnt: min(f.cnt, g.cnt)}
	for i := 0; i < N; i++ {
		r.c[i] = f.c[i].Mul(g.c[i])
	}

	return r
}

// PointDiv returns the coefficientwise quotient f[i]/g[i]; cnt = min.
//
// Errors:
//   - ErrZeroTerm when a significant g[i] is zero.
func (f Fixed[F]) PointDiv(g Fixed[F]) (Fixed[F], error) {
	r := Fixed[F]{cnt: min(f.cnt, g.cnt)}
	for i := 0; i < r.cnt; i++ {
		q, err := f.c[i].Div(g.c[i])
		if err != nil {
			return Fixed[F]{}, ErrZeroTerm
		}
		r.c[i] = q
	}

	return r, nil
}

// ExpMul is the product of exponential generating functions:
// c[n] = Σ_k C(n,k)·f[k]·g[n−k]; cnt = min.
func (f Fixed[F]) ExpMul(g Fixed[F]) Fixed[F] {
	binom := binomialTable[F]()
	r := Fixed[F]{cnt: min(f.cnt, g.cnt)}
	for n := 0; n < N; n++ {
		var s F
		for k := 0; k <= n; k++ {
			s = s.Add(binom[n][k].Mul(f.c[k]).Mul(g.c[n-k]))
		}
		r.c[n] = s
	}

	return r
}
