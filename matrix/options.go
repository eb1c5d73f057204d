// SPDX-License-Identifier: MIT

// Package matrix: numeric policy and functional options.
// This file defines:
//   - documented defaults (constants), the single source of truth for tolerances,
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - One documented singularity epsilon applied uniformly by every caller.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularEpsilon is the magnitude threshold below which a 2×2
	// determinant is treated as zero: |det| < 1e-4 ⇒ singular.
	DefaultSingularEpsilon = 1e-4

	// NearSingularThreshold marks |det| values small enough to warn about.
	// It never refuses an inverse; it only selects StatusNearSingular.
	NearSingularThreshold = 0.1

	// DefaultEpsilon is the tolerance for structural checks (symmetry, AllClose).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultMinAbsDet is the smallest |det| RandomInvertible2 accepts.
	DefaultMinAbsDet = 0.5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularEpsilonInvalid = "matrix: WithSingularEpsilon: eps must be finite and > 0"
	panicEpsilonInvalid         = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	singularEps float64 // > 0; DefaultSingularEpsilon
	eps         float64 // >= 0; DefaultEpsilon
}

// WithSingularEpsilon overrides the singularity threshold used by Inverse2,
// IsSingular2 and Classify2.
// Panics unless eps is finite and positive: with eps == 0 the test
// |det| < eps never fires and a zero determinant would be inverted.
func WithSingularEpsilon(eps float64) Option {
	if isNonFinite(eps) || !(eps > 0) {
		panic(panicSingularEpsilonInvalid)
	}

	return func(o *Options) { o.singularEps = eps }
}

// WithEpsilon sets the structural tolerance used by symmetry checks.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		singularEps: DefaultSingularEpsilon,
		eps:         DefaultEpsilon,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
