// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions.
//
// A singular 2×2 matrix is NOT an error in this package: Inverse2 reports it
// through Inversion.Singular so callers can still render a "no inverse" state.
// ErrSingular is reserved for the general n×n Inverse/LU kernels.

package matrix

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> dimension mismatch -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Mul where a.Cols != b.Rows, Det2 on a 3×3,
	// or ragged rows handed to NewDenseFrom.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the supplied tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by the n×n LU/Inverse kernels when a column has
	// no non-zero pivot left, i.e. the matrix is exactly singular.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBadRank indicates a low-rank request with r outside [1, min(d,k)].
	ErrBadRank = errors.New("matrix: rank out of range")

	// ErrBadBounds indicates an empty or non-finite random range.
	ErrBadBounds = errors.New("matrix: invalid value bounds")
)
