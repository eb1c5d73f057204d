// SPDX-License-Identifier: MIT

// Package laws is a randomized sweep over the algebraic identities the
// kernel and the visualizations promise: inverse round trips, determinant
// rules for products and row operations, transpose involution, cosine
// extremes, kernel agreement, pure sim updates and lossless render encoding.
//
// Every law draws its inputs from the generator it is handed, so a sweep is
// reproducible from its seed.
package laws

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Tolerances used by the numeric laws.
const (
	identityTol = 1e-9  // A·A⁻¹ against I
	detRelTol   = 1e-9  // relative, for determinants of small integer matrices
	cosineTol   = 1e-12 // cos(u,u) = 1, cos(u,-u) = -1
)

var (
	// ErrViolation marks a law that did not hold.
	ErrViolation = errors.New("laws: violation")
	// ErrBadEpsilon rejects a singular epsilon that is not finite and positive.
	ErrBadEpsilon = errors.New("laws: singular epsilon must be finite and > 0")
)

// Law is one identity checked against random input.
type Law struct {
	Name  string
	Check func(rng *rand.Rand, eps float64) error
}

// All returns every law in sweep order.
func All() []Law {
	return []Law{
		{"inverse-identity", inverseIdentity},
		{"det-multiplicative", detMultiplicative},
		{"det-row-ops", detRowOps},
		{"transpose-involution", transposeInvolution},
		{"cosine-extremes", cosineExtremes},
		{"det3-agrees", det3Agrees},
		{"inverse-agrees", inverseAgrees},
		{"sim-purity", simPurity},
		{"render-roundtrip", renderRoundTrip},
	}
}

// Run checks every law n times with a generator seeded from seed and
// returns the number of checks made. eps is the singular epsilon handed to
// the kernel. tick, when not nil, is called after each completed iteration.
// The sweep stops at the first violation; the error wraps ErrViolation and
// names the law and the iteration.
func Run(n int, seed uint64, eps float64, tick func()) (int, error) {
	return RunLaws(All(), n, seed, eps, tick)
}

// RunLaws is Run over an explicit law set.
func RunLaws(laws []Law, n int, seed uint64, eps float64, tick func()) (int, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || !(eps > 0) {
		return 0, fmt.Errorf("%w, got %v", ErrBadEpsilon, eps)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	checked := 0
	for i := 0; i < n; i++ {
		for _, l := range laws {
			checked++
			if err := l.Check(rng, eps); err != nil {
				return checked, fmt.Errorf("%s (iteration %d): %w", l.Name, i, err)
			}
		}
		if tick != nil {
			tick()
		}
	}

	return checked, nil
}

// violation wraps ErrViolation with a description.
func violation(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrViolation)
}

// closeRel reports |got-want| ≤ tol·max(1, |want|).
func closeRel(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}
