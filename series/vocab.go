// SPDX-License-Identifier: MIT
// Package: series
//
// Purpose:
//   - Name every operator so search engines and command lines can enumerate
//     and chain them. Each entry carries a cost used to rank matches: a
//     match through a cheap, common transform beats one through an exotic chain.

package series

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fpseq/field"
)

// Operator chain separator accepted by ApplyChain callers ("binomial|euler").
const ChainSep = "|"

// UnaryOp is a named single-operand operator.
type UnaryOp[F field.Element[F]] struct {
	Name  string
	Cost  int
	Apply func(f Fixed[F]) (Fixed[F], error)
}

// BinaryOp is a named two-operand operator.
type BinaryOp[F field.Element[F]] struct {
	Name  string
	Cost  int
	Apply func(f, g Fixed[F]) (Fixed[F], error)
}

// total lifts an operator that cannot fail.
func total[F field.Element[F]](fn func(Fixed[F]) Fixed[F]) func(Fixed[F]) (Fixed[F], error) {
	return func(f Fixed[F]) (Fixed[F], error) { return fn(f), nil }
}

// total2 lifts a binary operator that cannot fail.
func total2[F field.Element[F]](fn func(Fixed[F], Fixed[F]) Fixed[F]) func(Fixed[F], Fixed[F]) (Fixed[F], error) {
	return func(f, g Fixed[F]) (Fixed[F], error) { return fn(f, g), nil }
}

// UnaryOps returns the unary vocabulary in a fixed order, cheapest first.
func UnaryOps[F field.Element[F]]() []UnaryOp[F] {
	return []UnaryOp[F]{
		{Name: "id", Cost: 0, Apply: total(func(f Fixed[F]) Fixed[F] { return f })},
		{Name: "neg", Cost: 1, Apply: total(Fixed[F].Neg)},
		{Name: "lshift", Cost: 1, Apply: total(Fixed[F].Lshift)},
		{Name: "rshift", Cost: 1, Apply: total(Fixed[F].Rshift)},
		{Name: "psum", Cost: 1, Apply: total(Fixed[F].PartialSums)},
		{Name: "delta", Cost: 1, Apply: total(Fixed[F].Delta)},
		{Name: "derive", Cost: 1, Apply: total(Fixed[F].Derive)},
		{Name: "integrate", Cost: 1, Apply: total(Fixed[F].Integrate)},
		{Name: "point", Cost: 1, Apply: total(Fixed[F].Point)},
		{Name: "binomial", Cost: 2, Apply: total(Fixed[F].Binomial)},
		{Name: "binomialinv", Cost: 2, Apply: total(Fixed[F].BinomialInv)},
		{Name: "laplace", Cost: 2, Apply: total(Fixed[F].Laplace)},
		{Name: "laplaceinv", Cost: 2, Apply: total(Fixed[F].LaplaceInv)},
		{Name: "t019", Cost: 2, Apply: total(Fixed[F].T019)},
		{Name: "pprod", Cost: 2, Apply: total(Fixed[F].PartialProducts)},
		{Name: "recip", Cost: 2, Apply: Fixed[F].Recip},
		{Name: "sqrt", Cost: 2, Apply: Fixed[F].Sqrt},
		{Name: "exp", Cost: 2, Apply: Fixed[F].Exp},
		{Name: "log", Cost: 2, Apply: Fixed[F].Log},
		{Name: "logderive", Cost: 2, Apply: Fixed[F].LogDerive},
		{Name: "expinteg", Cost: 2, Apply: total(Fixed[F].ExpInteg)},
		{Name: "stirling", Cost: 3, Apply: total(Fixed[F].Stirling)},
		{Name: "stirlinginv", Cost: 3, Apply: total(Fixed[F].StirlingInv)},
		{Name: "euler", Cost: 3, Apply: total(Fixed[F].Euler)},
		{Name: "eulerinv", Cost: 3, Apply: total(Fixed[F].EulerInv)},
		{Name: "mobius", Cost: 3, Apply: total(Fixed[F].Mobius)},
		{Name: "mobiusinv", Cost: 3, Apply: total(Fixed[F].MobiusInv)},
		{Name: "powerset", Cost: 3, Apply: total(Fixed[F].Powerset)},
		{Name: "powersetinv", Cost: 3, Apply: total(Fixed[F].PowersetInv)},
		{Name: "lah", Cost: 3, Apply: total(Fixed[F].Lah)},
		{Name: "lahinv", Cost: 3, Apply: total(Fixed[F].LahInv)},
		{Name: "bous", Cost: 3, Apply: total(Fixed[F].Bous)},
		{Name: "bousinv", Cost: 3, Apply: total(Fixed[F].BousInv)},
		{Name: "inverse", Cost: 4, Apply: Fixed[F].Inverse},
	}
}

// BinaryOps returns the binary vocabulary in a fixed order, cheapest first.
func BinaryOps[F field.Element[F]]() []BinaryOp[F] {
	return []BinaryOp[F]{
		{Name: "add", Cost: 1, Apply: total2(Fixed[F].Add)},
		{Name: "sub", Cost: 1, Apply: total2(Fixed[F].Sub)},
		{Name: "mul", Cost: 2, Apply: total2(Fixed[F].Mul)},
		{Name: "div", Cost: 2, Apply: Fixed[F].Div},
		{Name: "hadamard", Cost: 2, Apply: total2(Fixed[F].Hadamard)},
		{Name: "pointdiv", Cost: 2, Apply: Fixed[F].PointDiv},
		{Name: "expmul", Cost: 3, Apply: total2(Fixed[F].ExpMul)},
		{Name: "dirichlet", Cost: 3, Apply: total2(Fixed[F].Dirichlet)},
		{Name: "compose", Cost: 3, Apply: Fixed[F].Compose},
	}
}

// LookupUnary finds a unary operator by name (case-insensitive).
func LookupUnary[F field.Element[F]](name string) (UnaryOp[F], error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, op := range UnaryOps[F]() {
		if op.Name == key {
			return op, nil
		}
	}

	return UnaryOp[F]{}, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// LookupBinary finds a binary operator by name (case-insensitive).
func LookupBinary[F field.Element[F]](name string) (BinaryOp[F], error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, op := range BinaryOps[F]() {
		if op.Name == key {
			return op, nil
		}
	}

	return BinaryOp[F]{}, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// ApplyChain applies the named unary operators left to right.
//
// Errors:
//   - ErrUnknownOp for an unregistered name (nothing is applied).
//   - the first operator failure, wrapped with the operator name.
func ApplyChain[F field.Element[F]](f Fixed[F], names []string) (Fixed[F], error) {
	ops := make([]UnaryOp[F], 0, len(names))
	for _, name := range names {
		op, err := LookupUnary[F](name)
		if err != nil {
			return Fixed[F]{}, err
		}
		ops = append(ops, op)
	}
	for _, op := range ops {
		var err error
		if f, err = op.Apply(f); err != nil {
			return Fixed[F]{}, fmt.Errorf("%s: %w", op.Name, err)
		}
	}

	return f, nil
}

// ChainCost sums the costs of the named unary operators; unknown names cost nothing.
func ChainCost[F field.Element[F]](names []string) int {
	cost := 0
	for _, name := range names {
		if op, err := LookupUnary[F](name); err == nil {
			cost += op.Cost
		}
	}

	return cost
}
