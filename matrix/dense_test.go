// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microsim/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 6},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			// immediately after creation all elements should be 0
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(shape[0], shape[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	CompareExact(t, src, m)

	// copy semantics: editing the literal does not leak into the matrix
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	require.Panics(t, func() { matrix.MustDenseFrom([][]float64{{1}, {2, 3}}) })
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 7)
	require.Equal(t, 7.0, MustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, -1.0, MustAt(t, c, 0, 0))
}

func TestDense_DoApplyString(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	var sum float64
	var visited int
	m.Do(func(_, _ int, v float64) bool {
		sum += v
		visited++
		return visited < 3 // stop after three cells
	})
	require.Equal(t, 6.0, sum)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	CompareExact(t, [][]float64{{10, 20}, {30, 40}}, m)
	require.ErrorIs(t, m.Apply(func(_, _ int, _ float64) float64 { return math.NaN() }), matrix.ErrNaNInf)

	require.Equal(t, "[1, 2]\n[3, 4]\n", MustFrom(t, [][]float64{{1, 2}, {3, 4}}).String())
}

func TestToRows_Fallback(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	fast, err := matrix.ToRows(m)
	require.NoError(t, err)
	slow, err := matrix.ToRows(hide{m})
	require.NoError(t, err)
	require.Equal(t, fast, slow)

	var nilDense *matrix.Dense
	_, err = matrix.ToRows(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
