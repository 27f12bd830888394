// Package series implements truncated formal power series over an exact field.
//
// 🚀 What is a truncated power series?
//
//	A power series f(x) = Σ f[i]·xⁱ kept to its first N = 16 coefficients,
//	together with a count of how many of those coefficients are known.
//	Operations that need more input terms than are known shrink the count,
//	so a result never claims more precision than its operands carry.
//
// ✨ Key features:
//   - Fixed[F]: value type, fixed array storage, allocation-free arithmetic
//   - ring operations, division, integer and rational powers
//   - composition, compositional inverse (reversion), exp / log
//   - the named sequence transforms (binomial, Stirling, Lah, boustrophedon,
//     Möbius, Euler, powerset, Laplace, partial sums/products, ...)
//   - an operator vocabulary (UnaryOps / BinaryOps) for search engines
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fpseq/field"
//	  "github.com/katalvlaran/fpseq/series"
//	)
//
//	cat, _ := series.Parse[field.P65521]("1,1,2,5,14,42,132,429")
//	sq := cat.Mul(cat).Rshift().Add(series.Promote(field.One[field.P65521]()))
//	fmt.Println(sq.Equal(cat)) // true: C = 1 + x·C²
//
// Preconditions (zero divisor, nonzero inner constant term, non-unit root
// argument, ...) are reported as errors wrapping ErrInvalidOperand, never
// as panics, so callers probing many operator combinations can skip the
// failing ones cheaply.
//
// Performance:
//
//   - Ring operations: O(N) or O(N²)
//   - Compose / Exp / Log: O(N²) to O(N³)
//   - Inverse (reversion): O(N⁴), N = 16
package series
