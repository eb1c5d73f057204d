// SPDX-License-Identifier: MIT

// Package vector - reductions and elementwise arithmetic over []float64.
//
// Every function validates its operands first (non-empty, equal lengths,
// finite) and then delegates the arithmetic to gonum's floats package.
// Inputs are never mutated; results are freshly allocated.
package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opDot       = "Dot"
	opNorm      = "Norm"
	opCosine    = "CosineSimilarity"
	opDistance  = "EuclideanDistance"
	opNormalize = "Normalize"
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
)

// validate checks a single operand: non-empty and finite.
func validate(u []float64) error {
	if len(u) == 0 {
		return ErrEmpty
	}
	if floats.HasNaN(u) {
		return ErrNaNInf
	}
	for _, x := range u {
		if math.IsInf(x, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// validatePair composite: validate(u) → validate(v) → equal lengths.
func validatePair(u, v []float64) error {
	if err := validate(u); err != nil {
		return err
	}
	if err := validate(v); err != nil {
		return err
	}
	if len(u) != len(v) {
		return ErrDimensionMismatch
	}

	return nil
}

// Dot returns Σ uᵢvᵢ.
//
// Errors:
//   - ErrEmpty, ErrNaNInf, ErrDimensionMismatch.
func Dot(u, v []float64) (float64, error) {
	if err := validatePair(u, v); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	return floats.Dot(u, v), nil
}

// Norm returns the Euclidean length √(Σ uᵢ²).
func Norm(u []float64) (float64, error) {
	if err := validate(u); err != nil {
		return 0, vectorErrorf(opNorm, err)
	}

	return floats.Norm(u, 2), nil
}

// CosineSimilarity returns ⟨u,v⟩ / (‖u‖‖v‖) clamped to [-1, 1].
// When either vector has zero length the result is 0 (no error, no NaN).
func CosineSimilarity(u, v []float64) (float64, error) {
	if err := validatePair(u, v); err != nil {
		return 0, vectorErrorf(opCosine, err)
	}

	return cosine(u, v), nil
}

// cosine assumes validated operands. Each side is first divided by its
// largest |xᵢ|, so the dot product and the norms stay within [−n, n] and
// neither can overflow or underflow.
func cosine(u, v []float64) float64 {
	mu, mv := maxAbs(u), maxAbs(v)
	if mu == 0 || mv == 0 {
		return 0
	}
	hu, hv := divided(u, mu), divided(v, mv)

	return clamp(floats.Dot(hu, hv)/(floats.Norm(hu, 2)*floats.Norm(hv, 2)), -1, 1)
}

// maxAbs returns max |uᵢ|.
func maxAbs(u []float64) float64 {
	m := 0.0
	for _, x := range u {
		m = math.Max(m, math.Abs(x))
	}
	return m
}

// divided returns u/s elementwise. Dividing, rather than scaling by 1/s,
// stays finite for subnormal s.
func divided(u []float64, s float64) []float64 {
	out := make([]float64, len(u))
	for i, x := range u {
		out[i] = x / s
	}
	return out
}

// direction returns u/‖u‖, or nil for the zero vector. u is brought to
// max |uᵢ| = 1 before the norm is taken.
func direction(u []float64) []float64 {
	m := maxAbs(u)
	if m == 0 {
		return nil
	}
	w := divided(u, m)

	return divided(w, floats.Norm(w, 2))
}

// clamp bounds x to [lo, hi]; rounding can push a cosine just past ±1.
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// EuclideanDistance returns ‖u − v‖.
func EuclideanDistance(u, v []float64) (float64, error) {
	if err := validatePair(u, v); err != nil {
		return 0, vectorErrorf(opDistance, err)
	}

	return floats.Distance(u, v, 2), nil
}

// Normalize returns u/‖u‖. The zero vector normalizes to a zero vector of the
// same length.
func Normalize(u []float64) ([]float64, error) {
	if err := validate(u); err != nil {
		return nil, vectorErrorf(opNormalize, err)
	}
	d := direction(u)
	if d == nil {
		return make([]float64, len(u)), nil
	}

	return d, nil
}

// Add returns u + v.
func Add(u, v []float64) ([]float64, error) {
	if err := validatePair(u, v); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return floats.AddTo(make([]float64, len(u)), u, v), nil
}

// Sub returns u − v.
func Sub(u, v []float64) ([]float64, error) {
	if err := validatePair(u, v); err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return floats.SubTo(make([]float64, len(u)), u, v), nil
}

// Scale returns k·u.
func Scale(u []float64, k float64) ([]float64, error) {
	if err := validate(u); err != nil {
		return nil, vectorErrorf(opScale, err)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, vectorErrorf(opScale, ErrNaNInf)
	}

	return floats.ScaleTo(make([]float64, len(u)), k, u), nil
}
