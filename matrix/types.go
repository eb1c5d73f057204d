// SPDX-License-Identifier: MIT

// Package matrix: domain types used by the dense kernels.
// This file contains ONLY domain-facing types; errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any implementation and take a flat-slice fast path when
// handed a *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Inversion is the result of Inverse2.
// A singular input is a normal, expected outcome: Singular is true, Inverse is
// nil and Det still carries the (near-zero) determinant for display.
type Inversion struct {
	Inverse  *Dense  // (1/det)·adj(A); nil when Singular
	Det      float64 // det(A), always populated
	Singular bool    // |Det| < singular epsilon
}

// Status classifies a 2×2 matrix for display: invertible, near-singular
// (|det| below NearSingularThreshold but above epsilon) or singular.
type Status int

// Status values.
const (
	StatusInvertible Status = iota
	StatusNearSingular
	StatusSingular
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusInvertible:
		return "invertible"
	case StatusNearSingular:
		return "near-singular"
	case StatusSingular:
		return "singular"
	default:
		return "unknown"
	}
}

// LowRankParams holds the parameter accounting of a rank-r factorization
// ΔW ≈ B·A with B ∈ R^{d×r} and A ∈ R^{r×k}.
type LowRankParams struct {
	D, K, R int
	Full    int     // d·k
	Factor  int     // r·(d+k)
	Savings float64 // percent of Full saved, (1 - Factor/Full)·100
}
