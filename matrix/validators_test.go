// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microsim/matrix"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestValidateShapeAndIndices(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, matrix.ValidateShape(m, 2, 2))
	require.ErrorIs(t, matrix.ValidateShape(m, 3, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 2, 2), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateRowIndex(m, 1))
	require.ErrorIs(t, matrix.ValidateRowIndex(m, 2), matrix.ErrOutOfRange)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	S := MustFrom(t, [][]float64{{1, 2}, {2, 1}})
	require.NoError(t, matrix.ValidateSymmetric(S, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{S}, 0))

	A := MustFrom(t, [][]float64{{1, 2}, {3, 1}})
	require.ErrorIs(t, matrix.ValidateSymmetric(A, 0.5), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(hide{A}, 0.5), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(A, 1))
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
}
