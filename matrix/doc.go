// SPDX-License-Identifier: MIT

// Package matrix provides dense linear algebra over any exact field.
//
// What & Why:
//
//	Dense[F] is a row-major table of field.Element values. Because the
//	coefficients are exact (prime fields or rationals), elimination never
//	needs magnitude pivoting: any nonzero entry is a valid pivot, and results
//	are bit-for-bit reproducible.
//
//	The package provides:
//	  - Element-wise kernels: Add, Sub, Scale, Hadamard, Transpose.
//	  - Products: Mul, MatVec.
//	  - Factorizations: LU (Doolittle, no pivoting), RREF (with determinant,
//	    rank and pivot columns).
//	  - Systems: Solve (with an explicit free-variable policy), Inverse, Det, Rank.
//
//	Rank-deficient systems are resolved by policy, never silently: the default
//	FreeZero policy sets every unknown without a pivot to zero, and FreeReject
//	returns ErrUnderdetermined instead. See WithFreeVariables.
//
// Complexity:
//
//	NewDense O(r·c); At/Set O(1); Mul O(r·k·c); RREF, Solve, Inverse, Det O(r·c·min(r,c)).
package matrix
