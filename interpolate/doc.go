// Package interpolate recognises recurrences in integer sequences given as
// field elements.
//
// 🚀 What does it find?
//
//	Three nested families of recurrences, cheapest first:
//	  • linear with constant coefficients  a(n) = c₁a(n−1) + … + c_L a(n−L)
//	  • hypergeometric                     P(n)·a(n+1) = Q(n)·a(n)
//	  • P-recursive (holonomic)            Σ_j P_j(n)·a(n+j) = 0
//
// ✨ Key features:
//   - Berlekamp–Massey for the minimal constant-coefficient recurrence
//   - exact linear algebra (package matrix) for the polynomial families
//   - every fit is re-verified against the whole prefix before it is returned
//   - Guess walks the families by increasing cost and returns a Recurrence
//     that can check itself (Holds) and predict further terms (Extend)
//
// ⚙️ Usage:
//
//	seq := field.FromInts[field.P65521](0, 1, 1, 2, 3, 5, 8, 13, 21, 34)
//	coeffs, ok := interpolate.FindLinearRecurrence(seq, 4) // [1 1], true
//
//	rec, ok := interpolate.Guess(seq, interpolate.DefaultOptions())
//	next, _ := rec.Extend(seq, 3) // 55, 89, 144
//
// "No fit" is an ordinary outcome and is reported as ok == false, never as
// an error.
package interpolate
