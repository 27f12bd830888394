// SPDX-License-Identifier: MIT

package seqdb

import (
	"fmt"
	"strconv"
	"strings"
)

// idWidth is the zero-padded digit count of a printed A-number.
const idWidth = 6

// FormatID renders an A-number, e.g. 45 → "A000045".
func FormatID(id uint32) string {
	return fmt.Sprintf("A%0*d", idWidth, id)
}

// ParseID accepts "A000045", "a45" or a bare "45".
func ParseID(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == 'A' || s[0] == 'a') {
		s = s[1:]
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}

	return uint32(v), nil
}
