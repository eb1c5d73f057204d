// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/vector"
)

func TestSignedArea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		u, v []float64
		want float64
	}{
		{"ccw unit square", []float64{1, 0}, []float64{0, 1}, 1},
		{"cw unit square", []float64{0, 1}, []float64{1, 0}, -1},
		{"parallel", []float64{2, 4}, []float64{1, 2}, 0},
		{"general", []float64{3, 1}, []float64{1, 2}, 5},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := vector.SignedArea(tc.u, tc.v)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			// signed area equals Det2 of the matrix with columns u, v
			m := matrix.MustDenseFrom([][]float64{{tc.u[0], tc.v[0]}, {tc.u[1], tc.v[1]}})
			det, err := matrix.Det2(m)
			require.NoError(t, err)
			require.Equal(t, det, got)
		})
	}

	_, err := vector.SignedArea([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestCross(t *testing.T) {
	t.Parallel()

	got, err := vector.Cross([]float64{1, 0, 0}, []float64{0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, got)

	u, v := []float64{1, 2, 3}, []float64{-2, 0.5, 4}
	c, err := vector.Cross(u, v)
	require.NoError(t, err)
	du, _ := vector.Dot(c, u)
	dv, _ := vector.Dot(c, v)
	require.InDelta(t, 0, du, 1e-12)
	require.InDelta(t, 0, dv, 1e-12)

	_, err = vector.Cross([]float64{1, 2}, []float64{3, 4})
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestAngle(t *testing.T) {
	t.Parallel()

	a, err := vector.Angle([]float64{1, 0}, []float64{0, 2})
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, a, 1e-15)

	a, err = vector.Angle([]float64{1, 1}, []float64{-1, -1})
	require.NoError(t, err)
	require.InDelta(t, math.Pi, a, 1e-7) // acos is ill-conditioned near -1
}

func TestProject(t *testing.T) {
	t.Parallel()

	p, err := vector.Project([]float64{3, 4}, []float64{2, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 0}, p)

	// residual is orthogonal to the line
	u, onto := []float64{1, 5}, []float64{2, 1}
	p, err = vector.Project(u, onto)
	require.NoError(t, err)
	r, _ := vector.Sub(u, p)
	d, _ := vector.Dot(r, onto)
	require.InDelta(t, 0, d, 1e-12)
}

func TestWeightedInner(t *testing.T) {
	t.Parallel()

	u, v := []float64{1, 2}, []float64{3, -1}
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	got, err := vector.WeightedInner(u, v, I)
	require.NoError(t, err)
	dot, _ := vector.Dot(u, v)
	require.Equal(t, dot, got)

	W := matrix.MustDenseFrom([][]float64{{2, 0.5}, {0.5, 1}})
	// uᵀWv = [1,2]·[5.5, 0.5] = 6.5
	got, err = vector.WeightedInner(u, v, W)
	require.NoError(t, err)
	require.InDelta(t, 6.5, got, 1e-15)

	n, err := vector.WeightedNorm([]float64{1, 0}, W)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, n, 1e-15)

	a, err := vector.WeightedAngle([]float64{1, 0}, []float64{0, 1}, I)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, a, 1e-15)

	a, err = vector.WeightedAngle([]float64{0, 0}, []float64{0, 1}, W)
	require.NoError(t, err)
	require.Equal(t, 0.0, a)

	for _, x := range []float64{1e4, 1e200} {
		a, err = vector.WeightedAngle([]float64{x, 0}, []float64{0, x}, I)
		require.NoError(t, err)
		require.InDelta(t, math.Pi/2, a, 1e-15, "x=%g", x)
	}

	_, err = vector.WeightedInner(u, v, matrix.MustDenseFrom([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = vector.WeightedInner(u, v, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
