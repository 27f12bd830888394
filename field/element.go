// SPDX-License-Identifier: MIT

package field

import "fmt"

// Element is the arithmetic contract shared by every coefficient type.
// The type parameter is the implementing type itself, so that methods accept
// and return concrete values without boxing.
//
// Every method must work on the zero value of F, which represents 0.
type Element[F any] interface {
	fmt.Stringer
	// Add returns x + y.
	Add(y F) F
	// Sub returns x - y.
	Sub(y F) F
	// Mul returns x * y.
	Mul(y F) F
	// Neg returns -x.
	Neg() F
	// Inv returns 1/x, or ErrDivisionByZero when x is zero.
	Inv() (F, error)
	// Div returns x/y, or ErrDivisionByZero when y is zero.
	Div(y F) (F, error)
	// Equal reports whether x == y.
	Equal(y F) bool
	// Cmp orders representatives: -1, 0 or +1.
	Cmp(y F) int
	// IsZero reports whether x is the additive identity.
	IsZero() bool
	// SetUint64 returns the element congruent to v. The receiver is ignored.
	SetUint64(v uint64) F
	// SetString parses a decimal literal. The receiver is ignored.
	SetString(s string) (F, error)
}

// Zero returns the additive identity of F.
func Zero[F Element[F]]() F {
	var element F

	return element.SetUint64(0)
}

// One returns the multiplicative identity of F.
func One[F Element[F]]() F {
	var element F

	return element.SetUint64(1)
}

// FromUint64 returns the element of F congruent to v.
func FromUint64[F Element[F]](v uint64) F {
	var element F

	return element.SetUint64(v)
}

// FromInt64 returns the element of F congruent to v, negatives included.
func FromInt64[F Element[F]](v int64) F {
	var element F
	if v >= 0 {
		return element.SetUint64(uint64(v))
	}
	// -(v+1)+1 avoids overflow on math.MinInt64.
	abs := uint64(-(v + 1)) + 1

	return element.SetUint64(abs).Neg()
}

// FromInts converts a list of machine integers.
func FromInts[F Element[F]](vs ...int64) []F {
	out := make([]F, len(vs))
	for i, v := range vs {
		out[i] = FromInt64[F](v)
	}

	return out
}

// Parse parses a decimal literal into F.
func Parse[F Element[F]](s string) (F, error) {
	var element F

	return element.SetString(s)
}

// IsOne reports whether x is the multiplicative identity.
func IsOne[F Element[F]](x F) bool {
	return x.Equal(One[F]())
}

// Pow returns x^e by square-and-multiply.
func Pow[F Element[F]](x F, e uint64) F {
	acc := One[F]()
	for e > 0 {
		if e&1 == 1 {
			acc = acc.Mul(x)
		}
		x = x.Mul(x)
		e >>= 1
	}

	return acc
}
