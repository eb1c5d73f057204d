// Package vector is the vector half of the microsim linear-algebra kernel.
//
// Vectors are plain []float64 (length 2 or 3 in the visualizations, any
// equal length ≥ 1 for the generic kernels). Derived quantities such as the
// norm or the normalized form are recomputed on every call.
//
// Degenerate input is not an error: CosineSimilarity and Angle return 0 for
// a zero vector, Normalize and Project return the zero vector.
package vector
