// SPDX-License-Identifier: MIT

package field

import "fmt"

// parseDecimal builds an element digit by digit as x*10 + d inside the field,
// so literals larger than any machine word reduce correctly.
// Accepted grammar: optional '-' followed by one or more ASCII digits.
func parseDecimal[F Element[F]](s string) (F, error) {
	var (
		acc  F
		neg  bool
		body = s
	)
	if len(body) > 0 && body[0] == '-' {
		neg = true
		body = body[1:]
	}
	if len(body) == 0 {
		return acc, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	ten := acc.SetUint64(10)
	acc = acc.SetUint64(0)
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return acc.SetUint64(0), fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		acc = acc.Mul(ten).Add(acc.SetUint64(uint64(c - '0')))
	}
	if neg {
		acc = acc.Neg()
	}

	return acc, nil
}
