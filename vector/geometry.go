// SPDX-License-Identifier: MIT

// Package vector - planar and spatial geometry, projections and weighted
// inner products.
package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/microsim/matrix"
)

// DegenerateNorm is the length below which a weighted angle is reported as 0.
const DegenerateNorm = 1e-4

const (
	opAngle         = "Angle"
	opSignedArea    = "SignedArea"
	opCross         = "Cross"
	opProject       = "Project"
	opWeightedInner = "WeightedInner"
	opWeightedNorm  = "WeightedNorm"
	opWeightedAngle = "WeightedAngle"
)

// Angle returns the angle between u and v in radians, in [0, π].
// A zero vector yields 0.
func Angle(u, v []float64) (float64, error) {
	if err := validatePair(u, v); err != nil {
		return 0, vectorErrorf(opAngle, err)
	}
	if maxAbs(u) == 0 || maxAbs(v) == 0 {
		return 0, nil
	}

	return math.Acos(cosine(u, v)), nil
}

// SignedArea returns u.x·v.y − u.y·v.x, the determinant of the 2×2 matrix
// with columns u and v. Positive when v lies counter-clockwise of u.
//
// Errors:
//   - ErrDimensionMismatch unless both vectors have length 2.
func SignedArea(u, v []float64) (float64, error) {
	if err := validatePair(u, v); err != nil {
		return 0, vectorErrorf(opSignedArea, err)
	}
	if len(u) != 2 {
		return 0, vectorErrorf(opSignedArea, fmt.Errorf("len %d, want 2: %w", len(u), ErrDimensionMismatch))
	}

	return u[0]*v[1] - u[1]*v[0], nil
}

// Cross returns u × v for 3-D vectors.
func Cross(u, v []float64) ([]float64, error) {
	if err := validatePair(u, v); err != nil {
		return nil, vectorErrorf(opCross, err)
	}
	if len(u) != 3 {
		return nil, vectorErrorf(opCross, fmt.Errorf("len %d, want 3: %w", len(u), ErrDimensionMismatch))
	}

	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}, nil
}

// Project returns the orthogonal projection of u onto the line spanned by
// onto: (⟨u,onto⟩/⟨onto,onto⟩)·onto. A zero onto projects to the zero vector.
func Project(u, onto []float64) ([]float64, error) {
	if err := validatePair(u, onto); err != nil {
		return nil, vectorErrorf(opProject, err)
	}
	out := make([]float64, len(u))
	oo := floats.Dot(onto, onto)
	if oo == 0 {
		return out, nil
	}

	return floats.ScaleTo(out, floats.Dot(u, onto)/oo, onto), nil
}

// WeightedInner returns ⟨u,v⟩_W = uᵀWv for a square W with side len(u).
// With W = I it equals Dot.
//
// Errors:
//   - ErrEmpty, ErrNaNInf, ErrDimensionMismatch; matrix errors from W
//     (matrix.ErrNilMatrix, matrix.ErrDimensionMismatch) pass through wrapped.
func WeightedInner(u, v []float64, w matrix.Matrix) (float64, error) {
	if err := validatePair(u, v); err != nil {
		return 0, vectorErrorf(opWeightedInner, err)
	}
	if err := matrix.ValidateShape(w, len(u), len(u)); err != nil {
		return 0, vectorErrorf(opWeightedInner, err)
	}
	wv, err := matrix.MatVec(w, v)
	if err != nil {
		return 0, vectorErrorf(opWeightedInner, err)
	}

	return floats.Dot(u, wv), nil
}

// WeightedNorm returns √⟨u,u⟩_W. A W that is not positive definite can make
// ⟨u,u⟩_W negative; that case reports 0.
func WeightedNorm(u []float64, w matrix.Matrix) (float64, error) {
	ip, err := WeightedInner(u, u, w)
	if err != nil {
		return 0, vectorErrorf(opWeightedNorm, err)
	}
	if ip <= 0 {
		return 0, nil
	}

	return math.Sqrt(ip), nil
}

// WeightedAngle returns the angle between u and v measured by ⟨·,·⟩_W.
// Either W-norm below DegenerateNorm yields 0. The angle is computed on
// copies brought to max |xᵢ| = 1, so huge or tiny inputs cannot overflow.
func WeightedAngle(u, v []float64, w matrix.Matrix) (float64, error) {
	if err := validatePair(u, v); err != nil {
		return 0, vectorErrorf(opWeightedAngle, err)
	}
	su, sv := maxAbs(u), maxAbs(v)
	if su == 0 || sv == 0 {
		return 0, nil
	}
	hu, hv := divided(u, su), divided(v, sv)

	nu, err := WeightedNorm(hu, w)
	if err != nil {
		return 0, vectorErrorf(opWeightedAngle, err)
	}
	nv, err := WeightedNorm(hv, w)
	if err != nil {
		return 0, vectorErrorf(opWeightedAngle, err)
	}
	if su*nu < DegenerateNorm || sv*nv < DegenerateNorm {
		return 0, nil
	}
	ip, err := WeightedInner(hu, hv, w)
	if err != nil {
		return 0, vectorErrorf(opWeightedAngle, err)
	}
	c := ip / nu / nv
	if math.IsNaN(c) {
		return 0, nil
	}

	return math.Acos(clamp(c, -1, 1)), nil
}
