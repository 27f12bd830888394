// SPDX-License-Identifier: MIT
// Package: series
//
// Purpose:
//   - Combinatorial triangles and sequences used by the named transforms,
//     computed directly in F by the usual recurrences (row n, column k).
//   - Integer divisor data for the offset-1 number-theoretic transforms.

package series

import "github.com/katalvlaran/fpseq/field"

// triangle is a lower-triangular N×N table; entries with k > n are zero.
type triangle[F field.Element[F]] [N][N]F

// binomialTable: C(n,k) by Pascal's rule.
func binomialTable[F field.Element[F]]() *triangle[F] {
	var t triangle[F]
	one := field.One[F]()
	for n := 0; n < N; n++ {
		t[n][0] = one
		for k := 1; k <= n; k++ {
			t[n][k] = t[n-1][k-1].Add(t[n-1][k])
		}
	}

	return &t
}

// stirling2Table: S2(n+1,k) = k·S2(n,k) + S2(n,k−1), S2(0,0) = 1.
func stirling2Table[F field.Element[F]]() *triangle[F] {
	var t triangle[F]
	t[0][0] = field.One[F]()
	for n := 1; n < N; n++ {
		for k := 1; k <= n; k++ {
			t[n][k] = small[F](k).Mul(t[n-1][k]).Add(t[n-1][k-1])
		}
	}

	return &t
}

// stirling1Table: signed s(n+1,k) = s(n,k−1) − n·s(n,k), s(0,0) = 1.
func stirling1Table[F field.Element[F]]() *triangle[F] {
	var t triangle[F]
	t[0][0] = field.One[F]()
	for n := 1; n < N; n++ {
		for k := 1; k <= n; k++ {
			t[n][k] = t[n-1][k-1].Sub(small[F](n - 1).Mul(t[n-1][k]))
		}
	}

	return &t
}

// lahTable: L(n+1,k) = (n+k)·L(n,k) + L(n,k−1), L(0,0) = 1,
// equivalently L(n,k) = C(n−1,k−1)·n!/k!.
func lahTable[F field.Element[F]]() *triangle[F] {
	var t triangle[F]
	t[0][0] = field.One[F]()
	for n := 1; n < N; n++ {
		for k := 1; k <= n; k++ {
			t[n][k] = small[F](n - 1 + k).Mul(t[n-1][k]).Add(t[n-1][k-1])
		}
	}

	return &t
}

// zigzag returns the Euler zigzag numbers E_0..E_{N−1} (1,1,1,2,5,16,61,...)
// from the Seidel–Entringer triangle: E(n,k) = E(n,k−1) + E(n−1,n−k).
func zigzag[F field.Element[F]]() [N]F {
	var prev, cur [N]F
	var out [N]F
	prev[0] = field.One[F]()
	out[0] = prev[0]
	for n := 1; n < N; n++ {
		cur[0] = field.Zero[F]()
		for k := 1; k <= n; k++ {
			cur[k] = cur[k-1].Add(prev[n-k])
		}
		out[n] = cur[n]
		prev, cur = cur, prev
	}

	return out
}

// factorials returns 0!..(N−1)!.
func factorials[F field.Element[F]]() [N]F {
	var out [N]F
	out[0] = field.One[F]()
	for n := 1; n < N; n++ {
		out[n] = out[n-1].Mul(small[F](n))
	}

	return out
}

// mobius holds μ(n) for 1 ≤ n ≤ N (index 0 unused).
var mobius = func() [N + 1]int {
	var mu [N + 1]int
	mu[1] = 1
	for n := 2; n <= N; n++ {
		// μ(n) = −Σ_{d|n, d<n} μ(d)
		s := 0
		for d := 1; d < n; d++ {
			if n%d == 0 {
				s += mu[d]
			}
		}
		mu[n] = -s
	}

	return mu
}()

// divisors lists the divisors of n (1 ≤ n ≤ N) in increasing order.
var divisors = func() [N + 1][]int {
	var out [N + 1][]int
	for n := 1; n <= N; n++ {
		for d := 1; d <= n; d++ {
			if n%d == 0 {
				out[n] = append(out[n], d)
			}
		}
	}

	return out
}()
