// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
	"strings"
)

// Rat is an exact rational number. The zero value is 0. Every operation
// allocates a fresh big.Rat, so values never share mutable state.
type Rat struct {
	v *big.Rat
}

var _ Element[Rat] = Rat{}

// NewRat returns num/den. It panics when den is zero.
func NewRat(num, den int64) Rat {
	if den == 0 {
		panic("field: NewRat: zero denominator")
	}

	return Rat{v: big.NewRat(num, den)}
}

func (x Rat) rat() *big.Rat {
	if x.v == nil {
		return new(big.Rat)
	}

	return x.v
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat { return Rat{v: new(big.Rat).Add(x.rat(), y.rat())} }

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat { return Rat{v: new(big.Rat).Sub(x.rat(), y.rat())} }

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat { return Rat{v: new(big.Rat).Mul(x.rat(), y.rat())} }

// Neg returns -x.
func (x Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(x.rat())} }

// Inv returns 1/x.
func (x Rat) Inv() (Rat, error) {
	if x.IsZero() {
		return Rat{}, ErrDivisionByZero
	}

	return Rat{v: new(big.Rat).Inv(x.rat())}, nil
}

// Div returns x / y.
func (x Rat) Div(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ErrDivisionByZero
	}

	return Rat{v: new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Equal reports whether x == y.
func (x Rat) Equal(y Rat) bool { return x.rat().Cmp(y.rat()) == 0 }

// Cmp orders by value.
func (x Rat) Cmp(y Rat) int { return x.rat().Cmp(y.rat()) }

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool { return x.v == nil || x.v.Sign() == 0 }

// SetUint64 returns v as a rational.
func (Rat) SetUint64(v uint64) Rat { return Rat{v: new(big.Rat).SetUint64(v)} }

// SetString accepts an optionally signed integer, or a fraction a/b of two
// such integers with b != 0.
func (Rat) SetString(s string) (Rat, error) {
	num, den, frac := strings.Cut(s, "/")
	if !isDecimal(num) || (frac && (!isDecimal(den) || strings.HasPrefix(den, "-"))) {
		return Rat{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		// big.Rat rejects a zero denominator.
		return Rat{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	return Rat{v: v}, nil
}

// Big returns a copy of the underlying value.
func (x Rat) Big() *big.Rat { return new(big.Rat).Set(x.rat()) }

// String prints "a" for integers and "a/b" otherwise.
func (x Rat) String() string { return x.rat().RatString() }

// isDecimal matches the field literal grammar: optional '-', then digits.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
