// Package render holds the draw command list returned by every
// visualization, a shared colour palette, and a JSON encoding of lists with
// optional zstd compression.
//
// Surfaces that actually paint a list live in subpackages (see vgsurface).
package render
