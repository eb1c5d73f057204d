// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/microsim/matrix"
)

// Shared tolerances for float comparisons.
const (
	rtolTiny = 1e-12
	atolTiny = 1e-9
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFrom BUILDS a *Dense from a 2D literal or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "AllClose=false (rtol=%g, atol=%g)\n%v\nvs\n%v", rtol, atol, a, b)
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1) // 0*2-1=-1 || 1*2-1=1
		}
	}

	return m
}
