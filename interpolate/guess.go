// SPDX-License-Identifier: MIT

package interpolate

import "github.com/katalvlaran/fpseq/field"

// Guess searches for the cheapest recurrence that fits seq.
//
// Ladder:
//  1. Linear (Berlekamp–Massey), accepted only when at least one term beyond
//     the 2L needed to determine an order-L recurrence confirms it.
//  2. Hypergeometric for degree 0..MaxDegree.
//  3. Holonomic over (order, degree) with order ≥ 2, by increasing
//     order+degree, then by order.
//
// Polynomial fits must also hold on at least one window beyond the rows
// used to solve for them, so an exactly determined system is not a fit.
//
// Returns:
//   - the first fit and true, or ok = false when no family fits.
func Guess[F field.Element[F]](seq []F, opts Options) (Recurrence[F], bool) {
	if opts.Linear {
		if coeffs, ok := FindLinearRecurrence(seq, opts.MaxOrder); ok && 2*len(coeffs) < len(seq) {
			return NewLinear(coeffs), true
		}
	}
	if opts.Hypergeometric {
		for d := 0; d <= opts.MaxDegree; d++ {
			// 2d+1 equations over len−1 windows
			if !confirmed(len(seq)-1, 2*d+1) {
				break
			}
			if p, q, ok := FindHypergeometric(seq, d); ok {
				return NewHypergeometric(p, q), true
			}
		}
	}
	if opts.Holonomic {
		for total := 2; total <= opts.MaxOrder+opts.MaxDegree; total++ {
			for ord := 2; ord <= opts.MaxOrder && ord <= total; ord++ {
				d := total - ord
				if d > opts.MaxDegree {
					continue
				}
				// ord shifts need ord+1 polynomials
				if !confirmed(len(seq)-ord, (ord+1)*(d+1)-1) {
					continue
				}
				if polys, ok := FindPRecursive(seq, d, ord+1); ok {
					return NewHolonomic(polys), true
				}
			}
		}
	}

	return Recurrence[F]{}, false
}

// confirmed reports whether windows exceed the equations solved.
func confirmed(windows, equations int) bool {
	return windows > equations
}
