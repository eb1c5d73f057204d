// SPDX-License-Identifier: MIT

// Package matrix - low-rank (LoRA-style) factorization helpers.
//
// A d×k weight update ΔW is approximated by B·A with B ∈ R^{d×r} and
// A ∈ R^{r×k}; only r·(d+k) parameters are trained instead of d·k.
package matrix

import "fmt"

// LowRank returns the parameter accounting for a rank-r factorization of a
// d×k update.
//
// Errors:
//   - ErrInvalidDimensions (d or k ≤ 0), ErrBadRank (r outside [1, min(d,k)]).
func LowRank(d, k, r int) (LowRankParams, error) {
	if d <= 0 || k <= 0 {
		return LowRankParams{}, matrixErrorf("LowRank", ErrInvalidDimensions)
	}
	if r < 1 || r > min(d, k) {
		return LowRankParams{}, matrixErrorf("LowRank", fmt.Errorf("r=%d not in [1,%d]: %w", r, min(d, k), ErrBadRank))
	}
	full := d * k
	factor := r * (d + k)

	return LowRankParams{
		D:       d,
		K:       k,
		R:       r,
		Full:    full,
		Factor:  factor,
		Savings: (1 - float64(factor)/float64(full)) * 100,
	}, nil
}

// LowRankProduct returns ΔW = B·A, checking that the inner dimension is
// shared. The rank of the result is at most B.Cols().
func LowRankProduct(b, a Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(b, a); err != nil {
		return nil, matrixErrorf("LowRankProduct", err)
	}

	return Mul(b, a)
}
