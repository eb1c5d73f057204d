// SPDX-License-Identifier: MIT

// Package matrix - determinants.
//
// Det2 and Det3 are the closed-form 2×2 and 3×3 (Sarrus) formulas the
// visualizations display term by term; Det covers any square matrix through
// Gaussian elimination with partial pivoting.
package matrix

import "math"

const (
	opDet2 = "Det2"
	opDet3 = "Det3"
	opDet  = "Det"
)

// flatten returns a row-major copy of m's entries.
// *Dense is copied directly; other implementations go through At.
func flatten(m Matrix) ([]float64, error) {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)
		return out, nil
	}

	out := make([]float64, r*c)
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}

// Det2 returns a00*a11 - a01*a10 for a 2×2 matrix.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m is not 2×2.
//
// Complexity:
//   - Time O(1), Space O(1).
func Det2(m Matrix) (float64, error) {
	if err := ValidateShape(m, 2, 2); err != nil {
		return 0, matrixErrorf(opDet2, err)
	}
	a, err := flatten(m)
	if err != nil {
		return 0, matrixErrorf(opDet2, err)
	}

	return det2(a[0], a[1], a[2], a[3]), nil
}

// det2 is the bare formula; callers own the layout.
func det2(a, b, c, d float64) float64 { return a*d - b*c }

// Det3 returns the determinant of a 3×3 matrix by the rule of Sarrus:
//
//	a(ei − fh) − b(di − fg) + c(dh − eg)
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when m is not 3×3.
func Det3(m Matrix) (float64, error) {
	if err := ValidateShape(m, 3, 3); err != nil {
		return 0, matrixErrorf(opDet3, err)
	}
	a, err := flatten(m)
	if err != nil {
		return 0, matrixErrorf(opDet3, err)
	}

	// Three down-diagonals minus three up-diagonals.
	down := a[0]*a[4]*a[8] + a[1]*a[5]*a[6] + a[2]*a[3]*a[7]
	up := a[2]*a[4]*a[6] + a[0]*a[5]*a[7] + a[1]*a[3]*a[8]

	return down - up, nil
}

// Det returns the determinant of any square matrix.
//
// Implementation:
//   - Stage 1: NotNil → Square; 1×1, 2×2 and 3×3 short-circuit to the closed forms.
//   - Stage 2: forward elimination on a private copy with partial pivoting
//     (largest |a[p][col]| below the diagonal); each row swap flips the sign.
//   - Stage 3: product of the pivots; an exactly zero pivot column yields 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	n := m.Rows()
	a, err := flatten(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	switch n {
	case 1:
		return a[0], nil
	case 2:
		return det2(a[0], a[1], a[2], a[3]), nil
	case 3:
		return Det3(m)
	}

	det := 1.0
	var col, row, p, j int
	var factor float64
	for col = 0; col < n; col++ {
		// Partial pivot: pick the largest magnitude in this column.
		p = col
		for row = col + 1; row < n; row++ {
			if math.Abs(a[row*n+col]) > math.Abs(a[p*n+col]) {
				p = row
			}
		}
		if a[p*n+col] == 0 {
			return 0, nil // whole column below the diagonal is zero
		}
		if p != col {
			for j = 0; j < n; j++ {
				a[col*n+j], a[p*n+j] = a[p*n+j], a[col*n+j]
			}
			det = -det
		}
		det *= a[col*n+col]

		// Eliminate below the pivot.
		for row = col + 1; row < n; row++ {
			factor = a[row*n+col] / a[col*n+col]
			if factor == 0 {
				continue
			}
			for j = col; j < n; j++ {
				a[row*n+j] -= factor * a[col*n+j]
			}
		}
	}

	return det, nil
}
