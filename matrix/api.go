// SPDX-License-Identifier: MIT
// Package matrix: constructors and convenience facades.
//
// Purpose:
//   - Provide intention-revealing constructors (zeros, identity, rotation).
//   - Compose canonical kernels into small helpers without duplicating loops.
//
// Determinism & Policy:
//   - Facades never change the numeric policy of underlying kernels.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rotation2 returns the counter-clockwise rotation by theta radians:
//
//	[[cos θ, −sin θ],
//	 [sin θ,  cos θ]]
//
// Its determinant is 1 for every theta.
func Rotation2(theta float64) (*Dense, error) {
	if isNonFinite(theta) {
		return nil, matrixErrorf("Rotation2", ErrNaNInf)
	}
	s, c := math.Sincos(theta)

	return &Dense{r: 2, c: 2, data: []float64{c, -s, s, c}, validateNaNInf: DefaultValidateNaNInf}, nil
}

// ---------- Compositions ----------

// Symmetrize returns (m + mᵀ)/2. Composition: Transpose → Add → Scale.
// Requires a square matrix.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return Scale(sum, 0.5)
}

// IsSymmetric reports whether m is square and |m[i,j] - m[j,i]| ≤ eps for all
// pairs; eps defaults to DefaultEpsilon (override with WithEpsilon).
// Non-square input is reported as false, not as an error.
func IsSymmetric(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf("IsSymmetric", err)
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	err := ValidateSymmetric(m, gatherOptions(opts...).eps)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrAsymmetry) {
		return false, nil
	}

	return false, matrixErrorf("IsSymmetric", err)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN is never close to anything; equal infinities are close.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	x, err := flatten(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	y, err := flatten(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for idx := range x {
		if !closeTo(x[idx], y[idx], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// closeTo is the scalar relation behind AllClose.
func closeTo(x, y, rtol, atol float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}

	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}

// Equal reports exact element-wise equality of two same-shape matrices.
// Shape differences report false.
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	x, errA := flatten(a)
	y, errB := flatten(b)
	if errA != nil || errB != nil {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// Format renders m with a fixed number of decimals per entry, one row per line.
// Values with |v| < 0.5·10^-prec print as 0 so display never shows "-0.00".
func Format(m Matrix, prec int) (string, error) {
	rows, err := ToRows(m)
	if err != nil {
		return "", matrixErrorf("Format", err)
	}
	cut := 0.5 * math.Pow(10, -float64(prec))
	var s string
	for _, row := range rows {
		s += _fmtRowOpen
		for j, v := range row {
			if math.Abs(v) < cut {
				v = 0
			}
			s += fmt.Sprintf("%.*f", prec, v)
			if j+1 < len(row) {
				s += _fmtSep
			}
		}
		s += _fmtRowClose
	}

	return s, nil
}
