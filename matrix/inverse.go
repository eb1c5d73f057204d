// SPDX-License-Identifier: MIT

// Package matrix - inverses.
//
// Two entry points with deliberately different failure semantics:
//   - Inverse2 (2×2, closed form): a singular input is an expected,
//     user-reachable state and is reported through Inversion.Singular.
//   - Inverse (n×n, LU with partial pivoting): an exactly singular input is
//     reported as ErrSingular.
package matrix

import "math"

const (
	opInverse2 = "Inverse2"
	opInverse  = "Inverse"
	opLU       = "LU"
)

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Inverse2 inverts a 2×2 matrix A = [[a,b],[c,d]] with the adjugate formula
//
//	A⁻¹ = (1/det)·[[d, -b], [-c, a]],  det = ad − bc.
//
// Implementation:
//   - Stage 1: ValidateShape(m, 2, 2); resolve the singular epsilon from opts.
//   - Stage 2: compute det; if |det| < eps return Inversion{Det, Singular: true}.
//   - Stage 3: otherwise allocate the inverse.
//
// Behavior highlights:
//   - The threshold is magnitude-based, not exact-zero: |det| < 1e-4 is singular
//     by default, so floating-point residue never yields a huge "inverse".
//   - A singular result is not an error; only a wrong shape is.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(1), Space O(1).
func Inverse2(m Matrix, opts ...Option) (Inversion, error) {
	if err := ValidateShape(m, 2, 2); err != nil {
		return Inversion{}, matrixErrorf(opInverse2, err)
	}
	o := gatherOptions(opts...)
	e, err := flatten(m)
	if err != nil {
		return Inversion{}, matrixErrorf(opInverse2, err)
	}

	a, b, c, d := e[0], e[1], e[2], e[3]
	det := det2(a, b, c, d)
	if math.Abs(det) < o.singularEps {
		return Inversion{Det: det, Singular: true}, nil
	}

	inv, err := NewDense(2, 2)
	if err != nil {
		return Inversion{}, matrixErrorf(opInverse2, err)
	}
	invDet := 1 / det
	inv.data[0] = d * invDet
	inv.data[1] = -b * invDet
	inv.data[2] = -c * invDet
	inv.data[3] = a * invDet

	return Inversion{Inverse: inv, Det: det}, nil
}

// IsSingular2 reports whether |det(m)| < eps for a 2×2 matrix.
func IsSingular2(m Matrix, opts ...Option) (bool, error) {
	det, err := Det2(m)
	if err != nil {
		return false, err
	}

	return math.Abs(det) < gatherOptions(opts...).singularEps, nil
}

// Classify2 maps a 2×2 matrix to a display Status:
// singular below eps, near-singular below NearSingularThreshold, else invertible.
func Classify2(m Matrix, opts ...Option) (Status, error) {
	det, err := Det2(m)
	if err != nil {
		return StatusSingular, err
	}

	return ClassifyDet(det, opts...), nil
}

// ClassifyDet is Classify2 for an already computed determinant.
func ClassifyDet(det float64, opts ...Option) Status {
	abs := math.Abs(det)
	switch {
	case abs < gatherOptions(opts...).singularEps:
		return StatusSingular
	case abs < NearSingularThreshold:
		return StatusNearSingular
	default:
		return StatusInvertible
	}
}

// LU computes the factorization P·A = L·U with partial pivoting: L is unit
// lower triangular, U upper triangular, and perm[i] names the row of A that
// ended up in row i.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy it into a flat workspace.
//   - Stage 2: For each column pick the row with the largest |pivot|, swap it
//     up, then eliminate below it, storing multipliers in place of the zeros.
//   - Stage 3: Split the workspace into L and U.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (a column with no non-zero
//     pivot candidate, i.e. A is exactly singular).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (L, U *Dense, perm []int, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()
	a, err := flatten(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var factor float64
	for k = 0; k < n; k++ {
		p = k
		for i = k + 1; i < n; i++ {
			if math.Abs(a[i*n+k]) > math.Abs(a[p*n+k]) {
				p = i
			}
		}
		if a[p*n+k] == ZeroPivot {
			return nil, nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			factor = a[i*n+k] / a[k*n+k]
			a[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= factor * a[k*n+j]
			}
		}
	}

	if L, err = NewDense(n, n); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	if U, err = NewDense(n, n); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse computes A⁻¹ for any square matrix via the pivoted LU and one
// pair of triangular solves per basis column.
//
// Implementation:
//   - Stage 1: LU(m) → L (unit lower), U (upper), perm.
//   - Stage 2: for each column e_col: forward solve L*y = P*e_col, backward
//     solve U*x = y, write x into column col.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	L, U, perm, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := L.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward: L*y = P*e_col, where (P*e_col)[i] = 1 iff perm[i] == col.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward: U*x = y (pivots are non-zero after LU)
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
