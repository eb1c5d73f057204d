// SPDX-License-Identifier: MIT

package sim

import (
	"slices"

	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
)

// Row operations shown by detprops. Each is applied to the original matrix,
// never chained.
const (
	opNone      = "none"
	opSwap      = "swap"
	opScale     = "scale"
	opAddRow    = "addrow"
	opTranspose = "transpose"
)

var detPropsControls = []Control{
	{Name: "k", Kind: Slider, Label: "k", Min: -3, Max: 3, Step: 0.5, Default: 2},
	{Name: opSwap, Kind: Button, Label: "Swap Rows"},
	{Name: opScale, Kind: Button, Label: "Scale Row"},
	{Name: opAddRow, Kind: Button, Label: "Add Rows"},
	{Name: opTranspose, Kind: Button, Label: "Transpose"},
	{Name: "reset", Kind: Button, Label: "Reset"},
	{Name: "random", Kind: Button, Label: "Random"},
}

var detPropsStart = [2][2]float64{{2, 1}, {3, 4}}

// detProps compares det(A) with det(A') after one elementary operation.
type detProps struct {
	frame
	orig [2][2]float64
	op   string
	k    float64

	mod             [2][2]float64
	detOrig, detMod float64
}

func newDetProps(f frame) (Sim, error) {
	return detProps{frame: f, orig: detPropsStart, op: opNone, k: 2}.eval()
}

func (s detProps) Name() string        { return "detprops" }
func (s detProps) Controls() []Control { return slices.Clone(detPropsControls) }

func (s detProps) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "k":
		s.k = e.Value
	case opSwap, opScale, opAddRow, opTranspose:
		s.op = e.Control
	case "reset":
		s.orig, s.op = detPropsStart, opNone
	case "random":
		r, err := matrix.Random(seeded(e.Value), 2, 2, -5, 6)
		if err != nil {
			return nil, simErrorf(s.Name(), err)
		}
		if s.orig, err = array2(r); err != nil {
			return nil, simErrorf(s.Name(), err)
		}
		s.op = opNone
	}

	return s.eval()
}

func (s detProps) eval() (Sim, error) {
	a, err := dense2(s.orig)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	var m *matrix.Dense
	switch s.op {
	case opSwap:
		m, err = matrix.SwapRows(a, 0, 1)
	case opScale:
		m, err = matrix.ScaleRow(a, 0, s.k)
	case opAddRow:
		m, err = matrix.AddRowMultiple(a, 1, 0, s.k)
	case opTranspose:
		m, err = matrix.Transpose(a)
	default:
		m = a
	}
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.mod, err = array2(m); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.detOrig, err = matrix.Det2(a); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.detMod, err = matrix.Det2(m); err != nil {
		return nil, simErrorf(s.Name(), err)
	}

	return s, nil
}

// explain returns the property the current operation demonstrates and the
// matching identity with numbers filled in.
func (s detProps) explain() (string, string) {
	o, m := compact(s.detOrig), compact(s.detMod)
	switch s.op {
	case opSwap:
		return "Swapping rows negates the determinant", "det(A') = -det(A) = " + m
	case opScale:
		return "Scaling a row by k multiplies det by k", "det(A') = k x det(A) = " + compact(s.k) + " x " + o + " = " + m
	case opAddRow:
		return "Adding a multiple of one row to another: det unchanged", "det(A') = det(A) = " + o
	case opTranspose:
		return "Transposing does not change the determinant", "det(A') = det(A) = " + o
	default:
		return "Click an operation button to explore properties", "det(A) = " + o
	}
}

func (s detProps) Readout() []Reading {
	rule, _ := s.explain()
	return []Reading{
		{Label: "op", Text: s.op},
		{Label: "det", Value: s.detOrig},
		{Label: "det_modified", Value: s.detMod},
		{Label: "rule", Text: rule},
	}
}

func (s detProps) Render() *render.List {
	l := canvas(s.frame, "Determinant Properties")
	const cell = 40.0
	left, right := s.w*0.25, s.w*0.75

	grid(l, left-cell, 55, cell, rows2(s.orig), "A", render.Alpha(render.Primary, 50), render.Primary, nil)
	grid(l, right-cell, 55, cell, rows2(s.mod), "A'", render.Alpha(render.Secondary, 50), render.Secondary, nil)
	centered(l, left, 170, "det(A) = "+compact(s.detOrig), labelSize, render.Ink)
	centered(l, right, 170, "det(A') = "+compact(s.detMod), labelSize, render.Ink)

	for _, v := range []struct {
		x   float64
		m   [2][2]float64
		det float64
	}{{left, s.orig, s.detOrig}, {right, s.mod, s.detMod}} {
		p := plane{origin: f64.Vec2{v.x, 250}, unit: 12}
		p.axes(l, 5)
		c := signColor(matrix.ClassifyDet(v.det, s.kernel()...), v.det)
		p.parallelogram(l, []float64{v.m[0][0], v.m[1][0]}, []float64{v.m[0][1], v.m[1][1]}, c)
	}

	rule, identity := s.explain()
	boxY := s.h - 60
	l.Rect(10, boxY, s.w-20, 50, render.FillStroke(render.Alpha(render.Highlight, 40), render.Grid, 1))
	label(l, 20, boxY+20, rule, smallSize, render.Ink)
	label(l, 20, boxY+40, identity, smallSize+1, render.Axis)

	return l
}
