// SPDX-License-Identifier: MIT

package sim

import (
	"math"
	"slices"

	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
	"github.com/katalvlaran/microsim/vector"
)

var det2Controls = []Control{
	{Name: "a", Kind: Slider, Label: "a", Min: -10, Max: 10, Step: 0.1, Default: 3},
	{Name: "b", Kind: Slider, Label: "b", Min: -10, Max: 10, Step: 0.1, Default: 1},
	{Name: "c", Kind: Slider, Label: "c", Min: -10, Max: 10, Step: 0.1, Default: 2},
	{Name: "d", Kind: Slider, Label: "d", Min: -10, Max: 10, Step: 0.1, Default: 4},
	{Name: "random", Kind: Button, Label: "Random"},
	{Name: "identity", Kind: Button, Label: "Identity"},
	{Name: "singular", Kind: Button, Label: "Singular"},
}

// det2 is the 2×2 determinant calculator: A = [[a, b], [c, d]] with its
// determinant and the parallelogram spanned by the columns.
type det2 struct {
	frame
	m [2][2]float64

	det    float64
	area   float64 // signed area of the column parallelogram
	status matrix.Status
}

func newDet2(f frame) (Sim, error) {
	return det2{frame: f, m: [2][2]float64{{3, 1}, {2, 4}}}.eval()
}

func (s det2) Name() string        { return "det2" }
func (s det2) Controls() []Control { return slices.Clone(det2Controls) }

func (s det2) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "a":
		s.m[0][0] = e.Value
	case "b":
		s.m[0][1] = e.Value
	case "c":
		s.m[1][0] = e.Value
	case "d":
		s.m[1][1] = e.Value
	case "random":
		r, err := matrix.Random(seeded(e.Value), 2, 2, -5, 6)
		if err != nil {
			return nil, simErrorf(s.Name(), err)
		}
		if s.m, err = array2(r); err != nil {
			return nil, simErrorf(s.Name(), err)
		}
	case "identity":
		s.m = [2][2]float64{{1, 0}, {0, 1}}
	case "singular":
		s.m = [2][2]float64{{2, 4}, {1, 2}}
	}

	return s.eval()
}

func (s det2) eval() (Sim, error) {
	a, err := dense2(s.m)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.det, err = matrix.Det2(a); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	col1 := []float64{s.m[0][0], s.m[1][0]}
	col2 := []float64{s.m[0][1], s.m[1][1]}
	if s.area, err = vector.SignedArea(col1, col2); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	s.status = matrix.ClassifyDet(s.det, s.kernel()...)

	return s, nil
}

func (s det2) orientation() string {
	switch {
	case s.status == matrix.StatusSingular:
		return "singular"
	case s.det > 0:
		return "preserves orientation"
	default:
		return "reverses orientation"
	}
}

func (s det2) Readout() []Reading {
	return []Reading{
		{Label: "det", Value: s.det},
		{Label: "area", Value: math.Abs(s.area)},
		{Label: "orientation", Text: s.orientation()},
	}
}

func (s det2) Render() *render.List {
	l := canvas(s.frame, "2x2 Determinant Calculator")
	a, b, c, d := s.m[0][0], s.m[0][1], s.m[1][0], s.m[1][1]

	grid(l, 40, 70, 50, rows2(s.m), "A", render.Background, render.Axis, nil)

	x, y := 30.0, 230.0
	label(l, x, y, "det(A) = ad - bc", labelSize, render.Ink)
	label(l, x, y+24, "= ("+compact(a)+")("+compact(d)+") - ("+compact(b)+")("+compact(c)+")", labelSize, render.Ink)
	label(l, x, y+48, "= "+compact(s.det), labelSize+2, render.Ink)
	var note string
	switch s.orientation() {
	case "singular":
		note = "(Singular - not invertible)"
	case "preserves orientation":
		note = "(Non-singular, preserves orientation)"
	default:
		note = "(Non-singular, reverses orientation)"
	}
	label(l, x, y+72, note, smallSize, signColor(s.status, s.det))

	// Geometric view.
	cx, cy := s.w*0.7, s.h*0.5
	l.Rect(cx-110, cy-120, 220, 240, render.FillStroke(render.Alpha(render.Background, 200), render.Grid, 1))
	centered(l, cx, cy-102, "Geometric View", smallSize, render.Ink)
	p := plane{origin: f64.Vec2{cx, cy}, unit: 25}
	p.axes(l, 3)
	col1 := []float64{a, c}
	col2 := []float64{b, d}
	p.parallelogram(l, col1, col2, signColor(s.status, s.det))
	l.Arrow(p.at(0, 0), p.vec(col1), render.Stroke(render.Danger, 2))
	l.Arrow(p.at(0, 0), p.vec(col2), render.Stroke(render.Primary, 2))
	centered(l, cx, cy+108, "Area = |"+compact(s.det)+"| = "+compact(math.Abs(s.area)), smallSize, render.Ink)

	return l
}
