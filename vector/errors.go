// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All kernels return these sentinels wrapped with an operation tag via
// vectorErrorf; callers match them with errors.Is.
//
// A zero vector is NOT an error: similarity, angle and normalization define
// sentinel results for it (0, 0 and the zero vector respectively).

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths, or a
	// fixed-dimension kernel (SignedArea, Cross) handed the wrong length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrEmpty indicates a zero-length (or nil) vector.
	ErrEmpty = errors.New("vector: empty vector")

	// ErrNaNInf signals a NaN or ±Inf component.
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")
)

// vectorErrorf wraps err with an operation tag, preserving it via %w.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
