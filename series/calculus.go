// SPDX-License-Identifier: MIT

package series

import "github.com/katalvlaran/fpseq/field"

// Derive returns f′: [xⁱ]f′ = (i+1)·f[i+1]. The count shrinks by one.
func (f Fixed[F]) Derive() Fixed[F] {
	r := f.Lshift()
	for i := 0; i < N-1; i++ {
		r.c[i] = r.c[i].Mul(small[F](i + 1))
	}

	return r
}

// Integrate returns ∫f with zero constant: [xⁱ]∫f = f[i−1]/i.
// The count grows by one, capped at N.
func (f Fixed[F]) Integrate() Fixed[F] {
	r := f.Rshift()
	for i := 1; i < N; i++ {
		r.c[i] = r.c[i].Mul(smallInv[F](i))
	}

	return r
}

// Exp returns exp(f) for f[0] = 0, from h′ = f′·h:
// h[0] = 1, n·h[n] = Σ_{k=1..n} k·f[k]·h[n−k].
//
// Errors:
//   - ErrComposeConstant when f[0] ≠ 0.
func (f Fixed[F]) Exp() (Fixed[F], error) {
	if !f.c[0].IsZero() {
		return Fixed[F]{}, ErrComposeConstant
	}
	h := Fixed[F]{cnt: f.cnt}
	h.c[0] = field.One[F]()
	for n := 1; n < N; n++ {
		var s F
		for k := 1; k <= n; k++ {
			s = s.Add(small[F](k).Mul(f.c[k]).Mul(h.c[n-k]))
		}
		h.c[n] = s.Mul(smallInv[F](n))
	}

	return h, nil
}

// Log returns log(f) for f[0] = 1, from f′ = f·g′:
// g[0] = 0, g[n] = f[n] − (1/n)·Σ_{k=1..n−1} k·g[k]·f[n−k].
//
// Errors:
//   - ErrNonUnit when f[0] ≠ 1.
func (f Fixed[F]) Log() (Fixed[F], error) {
	if f.cnt == 0 || !field.IsOne(f.c[0]) {
		return Fixed[F]{}, ErrNonUnit
	}
	g := Fixed[F]{cnt: f.cnt}
	for n := 1; n < N; n++ {
		var s F
		for k := 1; k < n; k++ {
			s = s.Add(small[F](k).Mul(g.c[k]).Mul(f.c[n-k]))
		}
		g.c[n] = f.c[n].Sub(s.Mul(smallInv[F](n)))
	}

	return g, nil
}

// LogDerive returns the logarithmic derivative f′/f.
//
// Errors:
//   - ErrNotInvertible when f[0] = 0.
func (f Fixed[F]) LogDerive() (Fixed[F], error) {
	return f.Derive().Div(f)
}

// ExpInteg returns exp(∫f).
func (f Fixed[F]) ExpInteg() Fixed[F] {
	r, _ := f.Integrate().Exp() // ∫f has zero constant term

	return r
}
