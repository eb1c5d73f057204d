// SPDX-License-Identifier: MIT

package sim

import (
	"math"

	"github.com/katalvlaran/microsim/matrix"
)

const (
	// DefaultWidth and DefaultHeight size every render unless WithCanvas
	// overrides them.
	DefaultWidth  = 500.0
	DefaultHeight = 400.0
)

const (
	panicCanvasInvalid          = "sim: WithCanvas: width and height must be finite and > 0"
	panicSingularEpsilonInvalid = "sim: WithSingularEpsilon: eps must be finite and > 0"
)

// Option configures New.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	width, height float64
	singularEps   float64
}

// WithCanvas sets the render size in logical pixels.
// Panics when either side is not a finite positive number.
func WithCanvas(w, h float64) Option {
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		panic(panicCanvasInvalid)
	}

	return func(o *Options) { o.width, o.height = w, h }
}

// WithSingularEpsilon sets the singularity threshold forwarded to the kernel.
// Panics unless eps is finite and positive.
func WithSingularEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || !(eps > 0) {
		panic(panicSingularEpsilonInvalid)
	}

	return func(o *Options) { o.singularEps = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		width:       DefaultWidth,
		height:      DefaultHeight,
		singularEps: matrix.DefaultSingularEpsilon,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// frame is the part of every state fixed at construction.
type frame struct {
	w, h float64
	eps  float64
}

func (f frame) kernel() []matrix.Option {
	return []matrix.Option{matrix.WithSingularEpsilon(f.eps)}
}
