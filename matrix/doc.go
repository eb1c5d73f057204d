// Package matrix is the matrix half of the microsim linear-algebra kernel.
//
// It provides a row-major Dense type behind the Matrix interface and pure
// kernels over small matrices (2×2 up to roughly 10×10):
//
//   - Add, Sub, Scale, Mul, Transpose, MatVec
//   - Det2, Det3 (Sarrus) and Det (partial pivoting)
//   - Inverse2 (closed form, singular result instead of an error), LU, Inverse
//   - SwapRows, ScaleRow, AddRowMultiple (each returns a new matrix)
//   - Rotation2, NewIdentity, Random*, Symmetrize, IsSymmetric, LowRank
//
// Inputs are never mutated. Dimension mismatches are reported as
// ErrDimensionMismatch; a 2×2 matrix with |det| < DefaultSingularEpsilon is
// reported through Inversion.Singular.
package matrix
