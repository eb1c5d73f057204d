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

var signedAreaControls = []Control{
	{Name: "ux", Kind: Slider, Label: "u.x", Min: -5, Max: 5, Step: 0.1, Default: 2},
	{Name: "uy", Kind: Slider, Label: "u.y", Min: -5, Max: 5, Step: 0.1, Default: 1},
	{Name: "vx", Kind: Slider, Label: "v.x", Min: -5, Max: 5, Step: 0.1, Default: 1},
	{Name: "vy", Kind: Slider, Label: "v.y", Min: -5, Max: 5, Step: 0.1, Default: 2},
	{Name: "reset", Kind: Button, Label: "Reset"},
}

var (
	signedAreaU = [2]float64{2, 1}
	signedAreaV = [2]float64{1, 2}
)

// signedArea shows det([u v]) as the oriented area of the parallelogram.
type signedArea struct {
	frame
	u, v [2]float64

	area   float64
	status matrix.Status
}

func newSignedArea(f frame) (Sim, error) {
	return signedArea{frame: f, u: signedAreaU, v: signedAreaV}.eval()
}

func (s signedArea) Name() string        { return "signedarea" }
func (s signedArea) Controls() []Control { return slices.Clone(signedAreaControls) }

func (s signedArea) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "ux":
		s.u[0] = e.Value
	case "uy":
		s.u[1] = e.Value
	case "vx":
		s.v[0] = e.Value
	case "vy":
		s.v[1] = e.Value
	case "reset":
		s.u, s.v = signedAreaU, signedAreaV
	}

	return s.eval()
}

func (s signedArea) eval() (Sim, error) {
	var err error
	if s.area, err = vector.SignedArea(s.u[:], s.v[:]); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	s.status = matrix.ClassifyDet(s.area, s.kernel()...)

	return s, nil
}

func (s signedArea) orientation() string {
	switch {
	case s.status == matrix.StatusSingular:
		return "parallel"
	case s.area > 0:
		return "counterclockwise"
	default:
		return "clockwise"
	}
}

func (s signedArea) Readout() []Reading {
	return []Reading{
		{Label: "signed_area", Value: s.area},
		{Label: "area", Value: math.Abs(s.area)},
		{Label: "orientation", Text: s.orientation()},
	}
}

func (s signedArea) Render() *render.List {
	l := canvas(s.frame, "Signed Area Visualizer")
	side := min(s.w*0.6, s.h-60)
	p := plane{origin: f64.Vec2{10 + side/2, 45 + side/2}, unit: side / 13}
	p.axes(l, 6)

	c := signColor(s.status, s.area)
	p.parallelogram(l, s.u[:], s.v[:], c)
	o := p.at(0, 0)
	l.Arrow(o, p.vec(s.u[:]), render.Stroke(render.Primary, 2.5))
	l.Arrow(o, p.vec(s.v[:]), render.Stroke(render.Danger, 2.5))
	tip := p.vec(s.u[:])
	label(l, tip[0]+6, tip[1]-6, "u = ("+num(s.u[0], 1)+", "+num(s.u[1], 1)+")", smallSize, render.Primary)
	tip = p.vec(s.v[:])
	label(l, tip[0]+6, tip[1]-6, "v = ("+num(s.v[0], 1)+", "+num(s.v[1], 1)+")", smallSize, render.Danger)

	x, y := 25+side, 70.0
	l.Rect(x-5, y-15, s.w-x-5, 90, render.FillStroke(render.Background, render.Grid, 1))
	label(l, x, y, "Signed Area:", labelSize, render.Ink)
	centered(l, x+(s.w-x-10)/2, y+32, num(s.area, 2), 22, c)
	var note string
	switch s.orientation() {
	case "parallel":
		note = "(Parallel vectors)"
	case "counterclockwise":
		note = "(CCW orientation)"
	default:
		note = "(CW orientation)"
	}
	centered(l, x+(s.w-x-10)/2, y+58, note, smallSize, render.Muted)

	a, b, cc, d := s.u[0], s.v[0], s.u[1], s.v[1]
	y += 110
	label(l, x, y, "ad - bc =", smallSize, render.Ink)
	label(l, x, y+20, "("+num(a, 1)+")("+num(d, 1)+") - ("+num(b, 1)+")("+num(cc, 1)+")", smallSize, render.Ink)
	label(l, x, y+40, "= "+num(a*d, 1)+" - "+num(b*cc, 1)+" = "+num(s.area, 2), smallSize, render.Ink)

	return l
}
