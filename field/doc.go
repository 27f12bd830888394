// SPDX-License-Identifier: MIT

// Package field provides the exact coefficient arithmetic used by every other
// package of fpseq.
//
// What & Why:
//
//	A field element is an immutable value: Add, Sub, Mul and Neg return a new
//	value and never touch the receiver. Division is the only partial operation
//	and is surfaced as an error (ErrDivisionByZero) instead of a panic, so that
//	callers probing many operand combinations can skip bad ones cheaply.
//
//	Concrete fields:
//	  - P65521 — the largest prime below 2^16. Products fit in 32 bits, so a
//	    single remainder reduces them. Inversion is a fixed addition chain to p−2.
//	  - M31    — the Mersenne prime 2^31−1. Products are folded with 2^31 ≡ 1.
//	  - M61    — the Mersenne prime 2^61−1. 122-bit products come from bits.Mul64
//	    and are folded with 2^61 ≡ 1.
//	  - Rat    — arbitrary-precision rationals over math/big.
//
//	The generic contract is Element[F]. Helpers such as Zero, One and Parse are
//	written against it, so algorithms in matrix, series and interpolate are
//	instantiated once per field at compile time.
//
// Complexity:
//
//	Add/Sub/Neg/Mul on the modular types are O(1) and branch-light.
//	Inv is O(log p). Rat operations cost the size of their numerators and denominators.
package field
