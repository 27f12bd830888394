// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/matrix"
)

// TestDefaultOptions_Documented verifies that the zero-option snapshot equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.ResolveOptions()
	require.Equal(t, matrix.DefaultFreeVariables, o.FreeVariables())
	require.Equal(t, matrix.FreeZero, o.FreeVariables())
}

// TestOptions_LastWriterWins ensures repeated options resolve in order and nil is skipped.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.ResolveOptions(matrix.WithFreeVariables(matrix.FreeReject), nil, matrix.WithFreeVariables(matrix.FreeZero))
	require.Equal(t, matrix.FreeZero, o.FreeVariables())

	o = matrix.ResolveOptions(matrix.WithFreeVariables(matrix.FreeZero), matrix.WithFreeVariables(matrix.FreeReject))
	require.Equal(t, matrix.FreeReject, o.FreeVariables())
}

func TestWithFreeVariables_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { matrix.WithFreeVariables(matrix.FreeVariablePolicy(42)) })
}

func TestFreeVariablePolicy_String(t *testing.T) {
	require.Equal(t, "zero", matrix.FreeZero.String())
	require.Equal(t, "reject", matrix.FreeReject.String())
	require.Equal(t, "unknown", matrix.FreeVariablePolicy(-1).String())
}
