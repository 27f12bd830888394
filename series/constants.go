// SPDX-License-Identifier: MIT

package series

import "github.com/katalvlaran/fpseq/field"

// Geometric returns 1/(1−x) = 1 + x + x² + ...
func Geometric[F field.Element[F]]() Fixed[F] {
	f := Zero[F]()
	one := field.One[F]()
	for i := range f.c {
		f.c[i] = one
	}

	return f
}

// Exp returns eˣ = Σ xⁿ/n!.
func Exp[F field.Element[F]]() Fixed[F] {
	return Geometric[F]().LaplaceInv()
}

// trig returns Σ over n ≡ parity (mod 2) of (−1)^⌊n/2⌋·xⁿ/n!.
func trig[F field.Element[F]](parity int) Fixed[F] {
	e := Exp[F]()
	f := Zero[F]()
	for n := parity; n < N; n += 2 {
		if (n/2)%2 == 0 {
			f.c[n] = e.c[n]
		} else {
			f.c[n] = e.c[n].Neg()
		}
	}

	return f
}

// Sin returns sin x.
func Sin[F field.Element[F]]() Fixed[F] { return trig[F](1) }

// Cos returns cos x.
func Cos[F field.Element[F]]() Fixed[F] { return trig[F](0) }

// Tan returns tan x = sin x / cos x.
func Tan[F field.Element[F]]() Fixed[F] {
	t, _ := Sin[F]().Div(Cos[F]()) // cos has constant term 1

	return t
}

// Log1p returns log(1+x) = Σ_{n≥1} (−1)^(n+1)·xⁿ/n.
func Log1p[F field.Element[F]]() Fixed[F] {
	f := Zero[F]()
	for n := 1; n < N; n++ {
		f.c[n] = smallInv[F](n)
		if n%2 == 0 {
			f.c[n] = f.c[n].Neg()
		}
	}

	return f
}

// Atan returns arctan x = Σ_{n odd} (−1)^((n−1)/2)·xⁿ/n.
func Atan[F field.Element[F]]() Fixed[F] {
	f := Zero[F]()
	for n := 1; n < N; n += 2 {
		f.c[n] = smallInv[F](n)
		if n%4 == 3 {
			f.c[n] = f.c[n].Neg()
		}
	}

	return f
}
