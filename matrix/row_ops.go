// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Each operation returns a NEW matrix and leaves its input untouched, so the
// caller can keep the original next to the modified copy. Effects on the
// determinant: SwapRows negates it, ScaleRow(k) multiplies it by k,
// AddRowMultiple leaves it unchanged.
package matrix

import "fmt"

const (
	opSwapRows       = "SwapRows"
	opScaleRow       = "ScaleRow"
	opAddRowMultiple = "AddRowMultiple"
)

// copyDense returns a fresh *Dense holding m's entries.
func copyDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	data, err := flatten(m)
	if err != nil {
		return nil, err
	}

	return &Dense{r: m.Rows(), c: m.Cols(), data: data, validateNaNInf: DefaultValidateNaNInf}, nil
}

// SwapRows returns a copy of m with rows i and j exchanged.
// i == j yields an unchanged copy.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func SwapRows(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, j); err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}
	out, err := copyDense(m)
	if err != nil {
		return nil, matrixErrorf(opSwapRows, err)
	}

	c := out.c
	for col := 0; col < c; col++ {
		out.data[i*c+col], out.data[j*c+col] = out.data[j*c+col], out.data[i*c+col]
	}

	return out, nil
}

// ScaleRow returns a copy of m with row i multiplied by k.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange, ErrNaNInf (non-finite k).
func ScaleRow(m Matrix, i int, k float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRow, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(opScaleRow, err)
	}
	if isNonFinite(k) {
		return nil, matrixErrorf(opScaleRow, ErrNaNInf)
	}
	out, err := copyDense(m)
	if err != nil {
		return nil, matrixErrorf(opScaleRow, err)
	}

	c := out.c
	for col := 0; col < c; col++ {
		out.data[i*c+col] *= k
	}

	return out, nil
}

// AddRowMultiple returns a copy of m with row dst replaced by dst + k·src.
// dst must differ from src (adding a multiple of a row to itself is a scaling).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad index or dst == src), ErrNaNInf.
func AddRowMultiple(m Matrix, dst, src int, k float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddRowMultiple, err)
	}
	if err := ValidateRowIndex(m, dst); err != nil {
		return nil, matrixErrorf(opAddRowMultiple, err)
	}
	if err := ValidateRowIndex(m, src); err != nil {
		return nil, matrixErrorf(opAddRowMultiple, err)
	}
	if dst == src {
		return nil, matrixErrorf(opAddRowMultiple, fmt.Errorf("dst == src == %d: %w", dst, ErrOutOfRange))
	}
	if isNonFinite(k) {
		return nil, matrixErrorf(opAddRowMultiple, ErrNaNInf)
	}
	out, err := copyDense(m)
	if err != nil {
		return nil, matrixErrorf(opAddRowMultiple, err)
	}

	c := out.c
	for col := 0; col < c; col++ {
		out.data[dst*c+col] += k * out.data[src*c+col]
	}

	return out, nil
}
