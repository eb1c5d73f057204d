// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/microsim/matrix"
)

func TestGonumInterop(t *testing.T) {
	t.Parallel()

	A := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	g, err := matrix.ToGonum(hide{A})
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	// The product computed by gonum must match the kernel's.
	var gp mat.Dense
	gp.Mul(g, g.T())
	back, err := matrix.FromGonum(&gp)
	require.NoError(t, err)
	At, _ := matrix.Transpose(A)
	kp, err := matrix.Mul(A, At)
	require.NoError(t, err)
	require.True(t, matrix.Equal(kp, back))

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
