// SPDX-License-Identifier: MIT

package field

import (
	"math/bits"
	"strconv"
)

// Mersenne moduli.
const (
	ModulusM31 = 1<<31 - 1
	ModulusM61 = 1<<61 - 1
)

// M31 is an integer modulo 2^31-1 in reduced form.
type M31 uint32

// M61 is an integer modulo 2^61-1 in reduced form.
type M61 uint64

var (
	_ Element[M31] = M31(0)
	_ Element[M61] = M61(0)
)

// invEuclid inverts a modulo m (a != 0, gcd(a, m) = 1) with the extended
// Euclidean algorithm. Intermediate cofactors stay within ±2m, which fits
// int64 for every modulus below 2^62.
func invEuclid(a, m uint64) uint64 {
	var (
		t, newT int64 = 0, 1
		r, newR       = int64(m), int64(a)
	)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if t < 0 {
		t += int64(m)
	}

	return uint64(t)
}

// ---------- M31 ----------

// Add returns x + y mod 2^31-1.
func (x M31) Add(y M31) M31 {
	s := uint32(x) + uint32(y)
	if s >= ModulusM31 {
		s -= ModulusM31
	}

	return M31(s)
}

// Sub returns x - y mod 2^31-1.
func (x M31) Sub(y M31) M31 {
	if x >= y {
		return x - y
	}

	return x + ModulusM31 - y
}

// Mul folds the 62-bit product with 2^31 ≡ 1; the folded sum is below 2p,
// so one conditional subtraction finishes the reduction.
func (x M31) Mul(y M31) M31 {
	t := uint64(x) * uint64(y)
	r := (t & ModulusM31) + (t >> 31)
	if r >= ModulusM31 {
		r -= ModulusM31
	}

	return M31(r)
}

// Neg returns -x mod 2^31-1.
func (x M31) Neg() M31 {
	if x == 0 {
		return 0
	}

	return ModulusM31 - x
}

// Inv returns 1/x.
func (x M31) Inv() (M31, error) {
	if x == 0 {
		return 0, ErrDivisionByZero
	}

	return M31(invEuclid(uint64(x), ModulusM31)), nil
}

// Div returns x / y.
func (x M31) Div(y M31) (M31, error) {
	inv, err := y.Inv()
	if err != nil {
		return 0, err
	}

	return x.Mul(inv), nil
}

// Equal reports whether x == y.
func (x M31) Equal(y M31) bool { return x == y }

// Cmp compares representatives.
func (x M31) Cmp(y M31) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

// IsZero reports whether x == 0.
func (x M31) IsZero() bool { return x == 0 }

// SetUint64 returns v mod 2^31-1.
func (M31) SetUint64(v uint64) M31 { return M31(v % ModulusM31) }

// SetString parses an optionally signed decimal literal.
func (M31) SetString(s string) (M31, error) { return parseDecimal[M31](s) }

// Uint64 returns the representative in [0, p).
func (x M31) Uint64() uint64 { return uint64(x) }

// Signed returns the representative closest to zero.
func (x M31) Signed() int64 {
	if x > ModulusM31/2 {
		return int64(x) - ModulusM31
	}

	return int64(x)
}

// String prints the representative in [0, p).
func (x M31) String() string { return strconv.FormatUint(uint64(x), 10) }

// ---------- M61 ----------

// Add returns x + y mod 2^61-1.
func (x M61) Add(y M61) M61 {
	s := uint64(x) + uint64(y)
	if s >= ModulusM61 {
		s -= ModulusM61
	}

	return M61(s)
}

// Sub returns x - y mod 2^61-1.
func (x M61) Sub(y M61) M61 {
	if x >= y {
		return x - y
	}

	return x + ModulusM61 - y
}

// Mul folds the 122-bit product hi·2^64 + lo with 2^61 ≡ 1.
// (lo >> 61) | (hi << 3) is the product shifted right by 61 and is below p-2,
// so the folded sum stays below 2p.
func (x M61) Mul(y M61) M61 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	r := (lo & ModulusM61) + (lo>>61 | hi<<3)
	if r >= ModulusM61 {
		r -= ModulusM61
	}

	return M61(r)
}

// Neg returns -x mod 2^61-1.
func (x M61) Neg() M61 {
	if x == 0 {
		return 0
	}

	return ModulusM61 - x
}

// Inv returns 1/x.
func (x M61) Inv() (M61, error) {
	if x == 0 {
		return 0, ErrDivisionByZero
	}

	return M61(invEuclid(uint64(x), ModulusM61)), nil
}

// Div returns x / y.
func (x M61) Div(y M61) (M61, error) {
	inv, err := y.Inv()
	if err != nil {
		return 0, err
	}

	return x.Mul(inv), nil
}

// Equal reports whether x == y.
func (x M61) Equal(y M61) bool { return x == y }

// Cmp compares representatives.
func (x M61) Cmp(y M61) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

// IsZero reports whether x == 0.
func (x M61) IsZero() bool { return x == 0 }

// SetUint64 returns v mod 2^61-1.
func (M61) SetUint64(v uint64) M61 { return M61(v % ModulusM61) }

// SetString parses an optionally signed decimal literal.
func (M61) SetString(s string) (M61, error) { return parseDecimal[M61](s) }

// Uint64 returns the representative in [0, p).
func (x M61) Uint64() uint64 { return uint64(x) }

// Signed returns the representative closest to zero.
func (x M61) Signed() int64 {
	if x > ModulusM61/2 {
		return int64(x) - ModulusM61
	}

	return int64(x)
}

// String prints the representative in [0, p).
func (x M61) String() string { return strconv.FormatUint(uint64(x), 10) }
