// SPDX-License-Identifier: MIT

// Package fpseq identifies integer sequences by exact arithmetic over
// finite fields: truncated power series, named sequence transforms,
// recurrence fitting and a reference-database search.
//
// 🚀 What is fpseq?
//
//	A generic, exact toolkit that brings together:
//		• Fields: the prime fields P65521, M31, M61 and the rationals
//		• Matrices: Dense[F] kernels, RREF, determinant, rank, Solve, Inverse
//		• Power series: Fixed[F] with N = 16 coefficients and a full transform vocabulary
//		• Interpolation: Berlekamp–Massey, hypergeometric and holonomic fitting
//		• Database: the stripped reference file, plain or gzip, BLAKE3 indexed
//		• Search: parallel transform-and-match with a bounded top-K
//
// ✨ Why modular arithmetic?
//
//   - Terms of famous sequences overflow int64 within a few dozen indices;
//     reduced mod a prime they fit a machine word and compare in O(1).
//   - Every algorithm is written once against field.Element and runs over
//     any field, so a hit found mod 65521 can be rechecked mod 2^61−1 or
//     over the rationals.
//
// Under the hood:
//
//	field/       — Element[F] contract, P65521, M31, M61, Rat
//	matrix/      — Dense[F], element-wise kernels, LU, RREF, Solve, Inverse
//	series/      — Fixed[F], ring and calculus, transforms, operator registry
//	interpolate/ — linear / hypergeometric / holonomic recurrences, Guess
//	seqdb/       — stripped-file loader, A-number and fingerprint indexes, relation graph
//	search/      — query engine with prometheus metrics
//	config/      — YAML configuration
//	cmd/fpseq/   — the command-line tool
//
// Quick example:
//
//	seq := field.FromInts[field.P65521](1, 1, 2, 3, 5, 8, 13, 21)
//	c, _ := interpolate.FindLinearRecurrence(seq, 4) // [1 1]: a(n) = a(n−1) + a(n−2)
//
//	go install github.com/katalvlaran/fpseq/cmd/fpseq@latest
package fpseq
