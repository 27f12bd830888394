// SPDX-License-Identifier: MIT

package interpolate

import "github.com/katalvlaran/fpseq/field"

// FindLinearRecurrence runs Berlekamp–Massey over seq and returns the
// coefficients c₁..c_L of the shortest recurrence a(n) = Σ c_j·a(n−j)
// consistent with every term, provided L ≤ maxOrder.
//
// Algorithm:
//   - C is the current connection polynomial (C[0] = 1) of order L, B the
//     polynomial saved at the last length change, b its discrepancy and m
//     the number of steps since then.
//   - For each i: d = seq[i] + Σ_{j=1..L} C[j]·seq[i−j]. If d = 0 only m grows.
//     Otherwise, when 2L ≤ i the order grows to i+1−L and the resized C is
//     snapshotted; then C[j] −= (d/b)·B[j−m]. After a growth B takes the
//     snapshot, b = d and m = 1.
//   - Fail as soon as L exceeds maxOrder, and again after the last term.
//
// Returns:
//   - −C[1..L] and true; an all-zero prefix yields an empty recurrence.
//
// Complexity:
//   - Time O(len(seq)·L), Space O(L).
func FindLinearRecurrence[F field.Element[F]](seq []F, maxOrder int) ([]F, bool) {
	one := field.One[F]()
	var (
		m, l = 1, 0
		b    = one
		cp   = []F{one}
		bp   = []F{one}
	)
	for i := range seq {
		if l > maxOrder {
			return nil, false
		}
		d := seq[i]
		for j := 1; j <= l; j++ {
			d = d.Add(cp[j].Mul(seq[i-j]))
		}
		if d.IsZero() {
			m++
			continue
		}

		grow := 2*l <= i
		var snapshot []F
		if grow {
			l = i + 1 - l
			for len(cp) < l+1 {
				cp = append(cp, field.Zero[F]())
			}
			snapshot = append([]F(nil), cp...)
		}
		a, _ := d.Div(b) // b is a recorded nonzero discrepancy
		for j := m; j < len(cp) && j-m < len(bp); j++ {
			cp[j] = cp[j].Sub(a.Mul(bp[j-m]))
		}
		m++
		if grow {
			bp = snapshot
			b = d
			m = 1
		}
	}
	if l > maxOrder {
		return nil, false
	}

	res := make([]F, l)
	for i := 1; i <= l; i++ {
		res[i-1] = cp[i].Neg()
	}

	return res, true
}
