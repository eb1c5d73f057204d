// SPDX-License-Identifier: MIT

// Package matrix - converters to and from gonum's mat package, so kernel
// results can be handed to (or checked against) gonum routines.
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a fresh *mat.Dense.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	data, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// FromGonum copies any gonum matrix into a fresh *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (empty gonum matrix), ErrNaNInf.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return out, nil
}
