// SPDX-License-Identifier: MIT

package series

import "github.com/katalvlaran/fpseq/field"

// PowerSeries is the operation set shared by truncated power series types.
// S is the implementing type itself and F its coefficient field.
type PowerSeries[S any, F field.Element[F]] interface {
	Coeff(i int) F
	Len() int
	Truncate(k int) S
	Equal(g S) bool

	Add(g S) S
	Sub(g S) S
	Neg() S
	Scale(a F) S
	Mul(g S) S
	Div(g S) (S, error)
	Pow(k int) (S, error)
	RatPow(p, q int) (S, error)
	Sqrt() (S, error)

	Lshift() S
	Rshift() S
	Derive() S
	Integrate() S

	Compose(g S) (S, error)
	Inverse() (S, error)
	Hadamard(g S) S
}

// Compile-time assertions.
var (
	_ PowerSeries[Fixed[field.P65521], field.P65521] = Fixed[field.P65521]{}
	_ PowerSeries[Fixed[field.Rat], field.Rat]       = Fixed[field.Rat]{}
)
