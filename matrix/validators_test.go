// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fpseq/field"
	"github.com/katalvlaran/fpseq/matrix"
)

func TestValidators(t *testing.T) {
	a := mustInts[field.P65521](t, 2, 2, 1, 2, 3, 4)
	b := mustInts[field.P65521](t, 2, 3, 1, 2, 3, 4, 5, 6)

	require.NoError(t, matrix.ValidateNotNil(a))
	require.ErrorIs(t, matrix.ValidateNotNil[field.P65521](nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameShape(a, a))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSquare(a))
	require.ErrorIs(t, matrix.ValidateSquare(b), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateVecLen(field.FromInts[field.P65521](1, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(field.FromInts[field.P65521](1), 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen[field.P65521](nil, 2), matrix.ErrNilMatrix)
}
