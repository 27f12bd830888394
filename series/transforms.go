// SPDX-License-Identifier: MIT

package series

import "github.com/katalvlaran/fpseq/field"

// applyTriangle returns b[n] = Σ_{k≤n} sign(n−k)·t[n][k]·a[k] with cnt preserved.
// alternate selects the (−1)^(n−k) sign.
func (f Fixed[F]) applyTriangle(t *triangle[F], alternate bool) Fixed[F] {
	r := Fixed[F]{cnt: f.cnt}
	for n := 0; n < N; n++ {
		var s F
		for k := 0; k <= n; k++ {
			term := t[n][k].Mul(f.c[k])
			if alternate && (n-k)%2 == 1 {
				s = s.Sub(term)
			} else {
				s = s.Add(term)
			}
		}
		r.c[n] = s
	}

	return r
}

// Binomial: b[n] = Σ_k C(n,k)·a[k].
func (f Fixed[F]) Binomial() Fixed[F] {
	return f.applyTriangle(binomialTable[F](), false)
}

// BinomialInv: b[n] = Σ_k (−1)^(n−k)·C(n,k)·a[k].
func (f Fixed[F]) BinomialInv() Fixed[F] {
	return f.applyTriangle(binomialTable[F](), true)
}

// Stirling: b[n] = Σ_k S2(n,k)·a[k].
func (f Fixed[F]) Stirling() Fixed[F] {
	return f.applyTriangle(stirling2Table[F](), false)
}

// StirlingInv: b[n] = Σ_k s(n,k)·a[k] with signed Stirling numbers of the first kind.
func (f Fixed[F]) StirlingInv() Fixed[F] {
	return f.applyTriangle(stirling1Table[F](), false)
}

// Lah: b[n] = Σ_k L(n,k)·a[k].
func (f Fixed[F]) Lah() Fixed[F] {
	return f.applyTriangle(lahTable[F](), false)
}

// LahInv: b[n] = Σ_k (−1)^(n−k)·L(n,k)·a[k].
func (f Fixed[F]) LahInv() Fixed[F] {
	return f.applyTriangle(lahTable[F](), true)
}

// Bous is the boustrophedon transform: b[n] = Σ_k C(n,k)·a[k]·E[n−k]
// with E the Euler zigzag numbers.
func (f Fixed[F]) Bous() Fixed[F] {
	binom := binomialTable[F]()
	e := zigzag[F]()
	r := Fixed[F]{cnt: f.cnt}
	for n := 0; n < N; n++ {
		var s F
		for k := 0; k <= n; k++ {
			s = s.Add(binom[n][k].Mul(f.c[k]).Mul(e[n-k]))
		}
		r.c[n] = s
	}

	return r
}

// BousInv undoes Bous by forward substitution (E[0] = 1):
// a[n] = b[n] − Σ_{k<n} C(n,k)·a[k]·E[n−k].
func (f Fixed[F]) BousInv() Fixed[F] {
	binom := binomialTable[F]()
	e := zigzag[F]()
	r := Fixed[F]{cnt: f.cnt}
	for n := 0; n < N; n++ {
		s := f.c[n]
		for k := 0; k < n; k++ {
			s = s.Sub(binom[n][k].Mul(r.c[k]).Mul(e[n-k]))
		}
		r.c[n] = s
	}

	return r
}

// PartialSums: b[n] = Σ_{k≤n} a[k].
func (f Fixed[F]) PartialSums() Fixed[F] {
	r := Fixed[F]{cnt: f.cnt}
	var s F
	for n := 0; n < N; n++ {
		s = s.Add(f.c[n])
		r.c[n] = s
	}

	return r
}

// PartialProducts: b[n] = Π_{k≤n} a[k].
func (f Fixed[F]) PartialProducts() Fixed[F] {
	r := Fixed[F]{cnt: f.cnt}
	p := field.One[F]()
	for n := 0; n < N; n++ {
		p = p.Mul(f.c[n])
		r.c[n] = p
	}

	return r
}

// Delta is the forward difference b[n] = a[n+1] − a[n]; the count shrinks by one.
func (f Fixed[F]) Delta() Fixed[F] {
	r := Fixed[F]{cnt: clampCount(f.cnt - 1)}
	for n := 0; n < N-1; n++ {
		r.c[n] = f.c[n+1].Sub(f.c[n])
	}

	return r
}

// T019 is the second difference b[n] = a[n+2] − 2·a[n+1] + a[n];
// the count shrinks by two.
func (f Fixed[F]) T019() Fixed[F] {
	r := Fixed[F]{cnt: clampCount(f.cnt - 2)}
	for n := 0; n < N-2; n++ {
		r.c[n] = f.c[n+2].Sub(f.c[n+1].Add(f.c[n+1])).Add(f.c[n])
	}

	return r
}

// Point: b[n] = n·a[n].
func (f Fixed[F]) Point() Fixed[F] {
	r := Fixed[F]{cnt: f.cnt}
	for n := 0; n < N; n++ {
		r.c[n] = small[F](n).Mul(f.c[n])
	}

	return r
}

// Laplace maps an exponential generating function to an ordinary one: b[n] = n!·a[n].
func (f Fixed[F]) Laplace() Fixed[F] {
	fact := factorials[F]()
	r := Fixed[F]{cnt: f.cnt}
	for n := 0; n < N; n++ {
		r.c[n] = fact[n].Mul(f.c[n])
	}

	return r
}

// LaplaceInv: b[n] = a[n]/n!.
func (f Fixed[F]) LaplaceInv() Fixed[F] {
	fact := factorials[F]()
	r := Fixed[F]{cnt: f.cnt}
	for n := 0; n < N; n++ {
		inv, _ := fact[n].Inv() // n < N is below every supported characteristic
		r.c[n] = inv.Mul(f.c[n])
	}

	return r
}
