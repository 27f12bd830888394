// SPDX-License-Identifier: MIT
// Package: series
//
// Number-theoretic transforms. These follow the offset-1 convention of the
// reference sequence database: series index i holds sequence term a(i+1),
// so divisibility is taken on i+1. The significant count is preserved.

package series

import "github.com/katalvlaran/fpseq/field"

// at1 returns a(n) = f[n−1] for 1 ≤ n ≤ N.
func (f Fixed[F]) at1(n int) F { return f.c[n-1] }

// Mobius: b(n) = Σ_{d|n} μ(n/d)·a(d).
func (f Fixed[F]) Mobius() Fixed[F] {
	r := Fixed[F]{cnt: f.cnt}
	for n := 1; n <= N; n++ {
		var s F
		for _, d := range divisors[n] {
			switch mobius[n/d] {
			case 1:
				s = s.Add(f.at1(d))
			case -1:
				s = s.Sub(f.at1(d))
			}
		}
		r.c[n-1] = s
	}

	return r
}

// MobiusInv: b(n) = Σ_{d|n} a(d).
func (f Fixed[F]) MobiusInv() Fixed[F] {
	r := Fixed[F]{cnt: f.cnt}
	for n := 1; n <= N; n++ {
		var s F
		for _, d := range divisors[n] {
			s = s.Add(f.at1(d))
		}
		r.c[n-1] = s
	}

	return r
}

// Dirichlet is the Dirichlet convolution c(n) = Σ_{d|n} a(d)·b(n/d); cnt = min.
func (f Fixed[F]) Dirichlet(g Fixed[F]) Fixed[F] {
	r := Fixed[F]{cnt: min(f.cnt, g.cnt)}
	for n := 1; n <= N; n++ {
		var s F
		for _, d := range divisors[n] {
			s = s.Add(f.at1(d).Mul(g.at1(n / d)))
		}
		r.c[n-1] = s
	}

	return r
}

// productTransform expands 1 + Σ b(n)xⁿ from its logarithmic derivative
// coefficients c: n·b(n) = Σ_{k=1..n} c(k)·b(n−k), b(0) = 1.
func productTransform[F field.Element[F]](c *[N + 1]F, cnt int) Fixed[F] {
	var b [N + 1]F
	b[0] = field.One[F]()
	for n := 1; n <= N; n++ {
		var s F
		for k := 1; k <= n; k++ {
			s = s.Add(c[k].Mul(b[n-k]))
		}
		b[n] = s.Mul(smallInv[F](n))
	}
	r := Fixed[F]{cnt: cnt}
	copy(r.c[:], b[1:])

	return r
}

// logDerivCoeffs inverts productTransform: c(n) = n·b(n) − Σ_{k<n} c(k)·b(n−k).
func (f Fixed[F]) logDerivCoeffs() [N + 1]F {
	var c [N + 1]F
	for n := 1; n <= N; n++ {
		s := small[F](n).Mul(f.at1(n))
		for k := 1; k < n; k++ {
			// b(n−k) with b(0) never reached since k < n
			s = s.Sub(c[k].Mul(f.at1(n - k)))
		}
		c[n] = s
	}

	return c
}

// Euler: 1 + Σ b(n)xⁿ = Π (1 − xⁿ)^(−a(n)),
// via c(k) = Σ_{d|k} d·a(d).
func (f Fixed[F]) Euler() Fixed[F] {
	var c [N + 1]F
	for k := 1; k <= N; k++ {
		for _, d := range divisors[k] {
			c[k] = c[k].Add(small[F](d).Mul(f.at1(d)))
		}
	}

	return productTransform(&c, f.cnt)
}

// EulerInv undoes Euler: recover c, then a(n) = (1/n)·Σ_{d|n} μ(n/d)·c(d).
func (f Fixed[F]) EulerInv() Fixed[F] {
	c := f.logDerivCoeffs()
	r := Fixed[F]{cnt: f.cnt}
	for n := 1; n <= N; n++ {
		var s F
		for _, d := range divisors[n] {
			switch mobius[n/d] {
			case 1:
				s = s.Add(c[d])
			case -1:
				s = s.Sub(c[d])
			}
		}
		r.c[n-1] = s.Mul(smallInv[F](n))
	}

	return r
}

// weighSign is (−1)^(k/d+1).
func weighSign(k, d int) bool { return (k/d)%2 == 1 }

// Powerset (weigh): 1 + Σ b(n)xⁿ = Π (1 + xⁿ)^a(n),
// via c(k) = Σ_{d|k} (−1)^(k/d+1)·d·a(d).
func (f Fixed[F]) Powerset() Fixed[F] {
	var c [N + 1]F
	for k := 1; k <= N; k++ {
		for _, d := range divisors[k] {
			term := small[F](d).Mul(f.at1(d))
			if weighSign(k, d) {
				c[k] = c[k].Add(term)
			} else {
				c[k] = c[k].Sub(term)
			}
		}
	}

	return productTransform(&c, f.cnt)
}

// PowersetInv undoes Powerset by solving for a(k) in increasing k
// (the d = k term has sign +1).
func (f Fixed[F]) PowersetInv() Fixed[F] {
	c := f.logDerivCoeffs()
	var a [N + 1]F
	for k := 1; k <= N; k++ {
		s := c[k]
		for _, d := range divisors[k] {
			if d == k {
				break
			}
			term := small[F](d).Mul(a[d])
			if weighSign(k, d) {
				s = s.Sub(term)
			} else {
				s = s.Add(term)
			}
		}
		a[k] = s.Mul(smallInv[F](k))
	}
	r := Fixed[F]{cnt: f.cnt}
	copy(r.c[:], a[1:])

	return r
}
