// SPDX-License-Identifier: MIT

package field

import "strconv"

// ModulusP65521 is the largest prime below 2^16.
const ModulusP65521 = 65521

// P65521 is an integer modulo 65521, always held in reduced form [0, p).
type P65521 uint32

var _ Element[P65521] = P65521(0)

// reduceOnce maps a value below 2p into [0, p) without a branch.
func (P65521) reduceOnce(a uint32) P65521 {
	x := a - ModulusP65521
	// Underflow sets the high bit; add p back in that case.
	x += (x >> 31) * ModulusP65521

	return P65521(x)
}

// Add returns x + y mod p.
func (x P65521) Add(y P65521) P65521 { return x.reduceOnce(uint32(x) + uint32(y)) }

// Sub returns x - y mod p.
func (x P65521) Sub(y P65521) P65521 {
	return x.reduceOnce(uint32(x) + ModulusP65521 - uint32(y))
}

// Mul returns x * y mod p. The product of two residues fits in 32 bits.
func (x P65521) Mul(y P65521) P65521 {
	return P65521(uint32(x) * uint32(y) % ModulusP65521)
}

// Neg returns -x mod p.
func (x P65521) Neg() P65521 {
	if x == 0 {
		return 0
	}

	return ModulusP65521 - x
}

// Inv returns x^(p-2) through a fixed addition chain.
// p-2 = 0xFFEF = ((0xF << 4 | 0xF) << 4 | 0xE) << 4 | 0xF.
func (x P65521) Inv() (P65521, error) {
	if x == 0 {
		return 0, ErrDivisionByZero
	}
	x2 := x.Mul(x)
	x3 := x2.Mul(x)
	x6 := x3.Mul(x3)
	x7 := x6.Mul(x)
	x14 := x7.Mul(x7)
	x15 := x14.Mul(x)

	t := x15.sqr4().Mul(x15) // x^0xFF
	t = t.sqr4().Mul(x14)    // x^0xFFE
	t = t.sqr4().Mul(x15)    // x^0xFFEF

	return t, nil
}

func (x P65521) sqr4() P65521 {
	for i := 0; i < 4; i++ {
		x = x.Mul(x)
	}

	return x
}

// Div returns x / y mod p.
func (x P65521) Div(y P65521) (P65521, error) {
	inv, err := y.Inv()
	if err != nil {
		return 0, err
	}

	return x.Mul(inv), nil
}

// Equal reports whether x == y.
func (x P65521) Equal(y P65521) bool { return x == y }

// Cmp compares representatives.
func (x P65521) Cmp(y P65521) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

// IsZero reports whether x == 0.
func (x P65521) IsZero() bool { return x == 0 }

// SetUint64 returns v mod p.
func (P65521) SetUint64(v uint64) P65521 { return P65521(v % ModulusP65521) }

// SetString parses an optionally signed decimal literal.
func (P65521) SetString(s string) (P65521, error) { return parseDecimal[P65521](s) }

// Uint64 returns the representative in [0, p).
func (x P65521) Uint64() uint64 { return uint64(x) }

// Signed returns the representative closest to zero, in (-p/2, p/2].
func (x P65521) Signed() int64 {
	if x > ModulusP65521/2 {
		return int64(x) - ModulusP65521
	}

	return int64(x)
}

// String prints the representative in [0, p).
func (x P65521) String() string { return strconv.FormatUint(uint64(x), 10) }
