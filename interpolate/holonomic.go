// SPDX-License-Identifier: MIT

package interpolate

import (
	"errors"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/matrix"
)

// FindHypergeometric fits P(n)·a(n+1) = Q(n)·a(n) with deg P, deg Q ≤ maxDeg,
// normalised so that the coefficients of P sum to one.
//
// Implementation:
//   - Stage 1: size = 2(maxDeg+1) unknowns interleaved as q_j at column 2j
//     and p_j at column 2j+1. Fail when maxDeg < 0 or size > len(seq).
//   - Stage 2: rows n = 0..size−2 hold a(n)·nʲ and −a(n+1)·nʲ; the last row
//     is Σ p_j = 1.
//   - Stage 3: solve (free unknowns set to zero), strip trailing zero
//     coefficients, then verify every n in 0..len(seq)−2.
//
// Returns:
//   - p, q (coefficients by increasing power) and true, or ok = false.
func FindHypergeometric[F field.Element[F]](seq []F, maxDeg int) (p, q []F, ok bool) {
	if maxDeg < 0 {
		return nil, nil, false
	}
	size := 2 * (maxDeg + 1)
	if size > len(seq) {
		return nil, nil, false
	}

	a, err := matrix.NewDense[F](size, size)
	if err != nil {
		return nil, nil, false
	}
	targ := make([]F, size)
	for i := 0; i < size-1; i++ {
		pow := field.One[F]()
		n := fromInt[F](i)
		for j := 0; j <= maxDeg; j++ {
			mustSet(a, i, 2*j, seq[i].Mul(pow))
			mustSet(a, i, 2*j+1, seq[i+1].Mul(pow).Neg())
			pow = pow.Mul(n)
		}
		targ[i] = field.Zero[F]()
	}
	for j := 0; j <= maxDeg; j++ {
		mustSet(a, size-1, 2*j+1, field.One[F]())
	}
	targ[size-1] = field.One[F]()

	x, ok := solve(a, targ)
	if !ok {
		return nil, nil, false
	}
	for i := 0; i < size; i += 2 {
		q = append(q, x[i])
		p = append(p, x[i+1])
	}
	p, q = trimPoly(p), trimPoly(q)

	for i := 0; i+1 < len(seq); i++ {
		n := fromInt[F](i)
		if !evalPoly(p, n).Mul(seq[i+1]).Equal(evalPoly(q, n).Mul(seq[i])) {
			return nil, nil, false
		}
	}

	return p, q, true
}

// FindPRecursive fits Σ_{j<maxOrder} P_j(n)·a(n+j) = 0 with deg P_j ≤ maxDeg,
// normalised so that the coefficients of the leading polynomial sum to one.
//
// Implementation:
//   - Stage 1: size = maxOrder·(maxDeg+1) unknowns; column maxOrder·k + j is
//     the coefficient of nᵏ in P_j. Fail when maxOrder < 1 or
//     size + maxOrder ≥ len(seq) + 3 (not enough terms for the rows).
//   - Stage 2: rows n = 0..size−2 hold a(n+j)·nᵏ; the last row sums the
//     leading polynomial's coefficients to one.
//   - Stage 3: solve, strip trailing zero coefficients of each polynomial,
//     then verify every window n = 0..len(seq)−maxOrder.
//
// Zero polynomials are kept so that P_j still multiplies a(n+j).
//
// Returns:
//   - maxOrder polynomials (coefficients by increasing power) and true.
func FindPRecursive[F field.Element[F]](seq []F, maxDeg, maxOrder int) ([][]F, bool) {
	if maxOrder < 1 || maxDeg < 0 {
		return nil, false
	}
	size := maxOrder * (maxDeg + 1)
	if size+maxOrder >= len(seq)+3 {
		return nil, false
	}

	a, err := matrix.NewDense[F](size, size)
	if err != nil {
		return nil, false
	}
	targ := make([]F, size)
	for i := 0; i < size-1; i++ {
		pow := field.One[F]()
		n := fromInt[F](i)
		for k := 0; k <= maxDeg; k++ {
			for j := 0; j < maxOrder; j++ {
				mustSet(a, i, maxOrder*k+j, seq[i+j].Mul(pow))
			}
			pow = pow.Mul(n)
		}
		targ[i] = field.Zero[F]()
	}
	for k := 0; k <= maxDeg; k++ {
		mustSet(a, size-1, maxOrder*k+maxOrder-1, field.One[F]())
	}
	targ[size-1] = field.One[F]()

	x, ok := solve(a, targ)
	if !ok {
		return nil, false
	}
	polys := make([][]F, maxOrder)
	for i, v := range x {
		polys[i%maxOrder] = append(polys[i%maxOrder], v)
	}
	for j := range polys {
		polys[j] = trimPoly(polys[j])
	}

	if !holds(polys, seq) {
		return nil, false
	}

	return polys, true
}

// holds checks Σ_j P_j(n)·a(n+j) = 0 on every window of seq.
func holds[F field.Element[F]](polys [][]F, seq []F) bool {
	r := len(polys)
	for i := 0; i+r <= len(seq); i++ {
		n := fromInt[F](i)
		var sum F
		for j, p := range polys {
			sum = sum.Add(evalPoly(p, n).Mul(seq[i+j]))
		}
		if !sum.IsZero() {
			return false
		}
	}

	return true
}

// solve wraps matrix.Solve; an inconsistent system is an ordinary "no fit".
func solve[F field.Element[F]](a *matrix.Dense[F], b []F) ([]F, bool) {
	x, err := matrix.Solve(a, b)
	if err != nil {
		if !errors.Is(err, matrix.ErrInconsistent) {
			// shapes are built here; anything else is a programming error
			panic(err)
		}
		return nil, false
	}

	return x, true
}

// mustSet writes an in-range entry.
func mustSet[F field.Element[F]](a *matrix.Dense[F], i, j int, v F) {
	if err := a.Set(i, j, v); err != nil {
		panic(err)
	}
}

// evalPoly evaluates Σ p[k]·nᵏ by Horner's rule.
func evalPoly[F field.Element[F]](p []F, n F) F {
	var s F
	for k := len(p) - 1; k >= 0; k-- {
		s = s.Mul(n).Add(p[k])
	}

	return s
}

// trimPoly drops trailing zero coefficients, keeping at least one.
func trimPoly[F field.Element[F]](p []F) []F {
	for len(p) > 1 && p[len(p)-1].IsZero() {
		p = p[:len(p)-1]
	}

	return p
}

// fromInt maps a non-negative index into F.
func fromInt[F field.Element[F]](i int) F {
	return field.FromUint64[F](uint64(i))
}
