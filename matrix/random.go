// SPDX-License-Identifier: MIT

// Package matrix - random generation.
//
// Visualizations fill matrices with small integers (floor of a uniform draw
// in [lo, hi)) so that every entry stays readable on screen. The caller owns
// the *rand.Rand; nothing here touches global random state.
package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// maxInvertibleAttempts caps the rejection loop of RandomInvertible2.
const maxInvertibleAttempts = 1000

// randInt draws an integer in [lo, hi).
func randInt(rng *rand.Rand, lo, hi int) float64 {
	return float64(lo + rng.IntN(hi-lo))
}

// Random returns a rows×cols matrix with integer entries drawn from [lo, hi).
//
// Errors:
//   - ErrNilMatrix (nil rng), ErrBadBounds (hi <= lo), ErrInvalidDimensions.
func Random(rng *rand.Rand, rows, cols, lo, hi int) (*Dense, error) {
	if rng == nil {
		return nil, matrixErrorf("Random", ErrNilMatrix)
	}
	if hi <= lo {
		return nil, matrixErrorf("Random", fmt.Errorf("[%d,%d): %w", lo, hi, ErrBadBounds))
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("Random", err)
	}
	for idx := range m.data {
		m.data[idx] = randInt(rng, lo, hi)
	}

	return m, nil
}

// RandomSymmetric returns an n×n symmetric matrix: the upper triangle and the
// diagonal are drawn from [lo, hi), the lower triangle mirrors it.
func RandomSymmetric(rng *rand.Rand, n, lo, hi int) (*Dense, error) {
	if rng == nil {
		return nil, matrixErrorf("RandomSymmetric", ErrNilMatrix)
	}
	if hi <= lo {
		return nil, matrixErrorf("RandomSymmetric", fmt.Errorf("[%d,%d): %w", lo, hi, ErrBadBounds))
	}
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf("RandomSymmetric", err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v = randInt(rng, lo, hi)
			m.data[i*n+j] = v
			m.data[j*n+i] = v // mirror
		}
	}

	return m, nil
}

// RandomInvertible2 draws 2×2 integer matrices from [lo, hi) until
// |det| ≥ minAbsDet (DefaultMinAbsDet in the visualizations).
//
// Errors:
//   - ErrBadBounds for an empty range or a negative/non-finite minAbsDet.
//   - ErrSingular when no acceptable matrix turned up within the attempt cap
//     (e.g. a range that only contains 0).
func RandomInvertible2(rng *rand.Rand, lo, hi int, minAbsDet float64) (*Dense, error) {
	if isNonFinite(minAbsDet) || minAbsDet < 0 {
		return nil, matrixErrorf("RandomInvertible2", ErrBadBounds)
	}
	for attempt := 0; attempt < maxInvertibleAttempts; attempt++ {
		m, err := Random(rng, 2, 2, lo, hi)
		if err != nil {
			return nil, matrixErrorf("RandomInvertible2", err)
		}
		if math.Abs(det2(m.data[0], m.data[1], m.data[2], m.data[3])) >= minAbsDet {
			return m, nil
		}
	}

	return nil, matrixErrorf("RandomInvertible2", ErrSingular)
}
