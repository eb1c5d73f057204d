// SPDX-License-Identifier: MIT

package sim

import (
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
)

var rotationControls = []Control{
	{Name: "angle", Kind: Slider, Label: "Angle (deg)", Min: -360, Max: 360, Step: 1, Default: 45},
	{Name: "shape", Kind: Select, Label: "Shape", Options: []string{"f", "arrow", "square", "triangle"}},
	{Name: "circle", Kind: Checkbox, Label: "Unit Circle", Default: 1},
	{Name: "arc", Kind: Checkbox, Label: "Show Arc", Default: 1},
}

// stroke is one piece of a shape outline in math units.
type stroke struct {
	pts    [][]float64
	closed bool
}

// shapes are drawn one unit = rotUnit pixels; "f" shows orientation since it
// has no symmetry.
var shapes = map[string][]stroke{
	"f": {
		{pts: [][]float64{{0, -0.8}, {0, 0.8}, {0.5, 0.8}}},
		{pts: [][]float64{{0, 0}, {0.35, 0}}},
	},
	"arrow": {
		{pts: [][]float64{{0, 0}, {1, 0}}},
		{pts: [][]float64{{1, 0}, {0.8125, 0.1}, {0.8125, -0.1}}, closed: true},
	},
	"square": {
		{pts: [][]float64{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}, closed: true},
	},
	"triangle": {
		{pts: [][]float64{
			{0.6, 0},
			{0.6 * math.Cos(2*math.Pi/3), 0.6 * math.Sin(2*math.Pi/3)},
			{0.6 * math.Cos(4*math.Pi/3), 0.6 * math.Sin(4*math.Pi/3)},
		}, closed: true},
	},
}

const rotUnit = 80.0

// rotation applies R(θ) = [[cos θ, -sin θ], [sin θ, cos θ]] to a shape and
// the standard basis.
type rotation struct {
	frame
	deg          float64
	shape        string
	circle, arcs bool

	r       *matrix.Dense
	det     float64
	rotated []stroke
	e1, e2  []float64
}

func newRotation(f frame) (Sim, error) {
	return rotation{frame: f, deg: 45, shape: "f", circle: true, arcs: true}.eval()
}

func (s rotation) Name() string        { return "rotation" }
func (s rotation) Controls() []Control { return slices.Clone(rotationControls) }

func (s rotation) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "angle":
		s.deg = e.Value
	case "shape":
		s.shape = e.Option
	case "circle":
		s.circle = e.Value == 1
	case "arc":
		s.arcs = e.Value == 1
	}

	return s.eval()
}

func (s rotation) eval() (Sim, error) {
	var err error
	if s.r, err = matrix.Rotation2(s.deg * math.Pi / 180); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.det, err = matrix.Det2(s.r); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.e1, err = matrix.MatVec(s.r, []float64{1, 0}); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.e2, err = matrix.MatVec(s.r, []float64{0, 1}); err != nil {
		return nil, simErrorf(s.Name(), err)
	}

	src := shapes[s.shape]
	s.rotated = make([]stroke, len(src))
	for i, st := range src {
		pts := make([][]float64, len(st.pts))
		for k, p := range st.pts {
			if pts[k], err = matrix.MatVec(s.r, p); err != nil {
				return nil, simErrorf(s.Name(), err)
			}
		}
		s.rotated[i] = stroke{pts: pts, closed: st.closed}
	}

	return s, nil
}

func (s rotation) Readout() []Reading {
	rad := s.deg * math.Pi / 180
	return []Reading{
		{Label: "angle_deg", Value: s.deg},
		{Label: "cos", Value: math.Cos(rad)},
		{Label: "sin", Value: math.Sin(rad)},
		{Label: "det", Value: s.det},
	}
}

func drawStrokes(l *render.List, p plane, strokes []stroke, c color.RGBA) {
	for _, st := range strokes {
		pts := make([]f64.Vec2, len(st.pts))
		for i, q := range st.pts {
			pts[i] = p.vec(q)
		}
		if st.closed {
			l.Polygon(pts, render.FillStroke(render.Alpha(c, 80), c, 2))
			continue
		}
		for i := 1; i < len(pts); i++ {
			l.Line(pts[i-1], pts[i], render.Stroke(c, 2))
		}
	}
}

func (s rotation) Render() *render.List {
	l := canvas(s.frame, "2D Rotation")
	p := plane{origin: f64.Vec2{s.w * 0.38, s.h * 0.55}, unit: rotUnit}
	p.axes(l, 2)
	o := p.at(0, 0)

	if s.circle {
		l.Circle(o, rotUnit, render.Stroke(render.Muted, 1))
	}
	l.Arrow(o, p.at(1, 0), render.Stroke(render.Alpha(render.Secondary, 100), 1))
	l.Arrow(o, p.at(0, 1), render.Stroke(render.Alpha(render.Primary, 100), 1))

	drawStrokes(l, p, shapes[s.shape], render.Primary)
	drawStrokes(l, p, s.rotated, render.Secondary)

	l.Arrow(o, p.vec(s.e1), render.Stroke(render.Danger, 2))
	l.Arrow(o, p.vec(s.e2), render.Stroke(render.Primary, 2))
	if s.arcs && s.deg != 0 {
		// Screen angles run clockwise.
		l.Arc(o, rotUnit*0.35, 0, -s.deg*math.Pi/180, render.Stroke(render.Accent, 2))
	}

	rows, _ := matrix.ToRows(s.r)
	x := s.w * 0.72
	label(l, x, 80, "R("+num(s.deg, 0)+" deg) =", labelSize, render.Ink)
	for i, row := range rows {
		label(l, x, 110+float64(i)*22, "[ "+num(row[0], 3)+"   "+num(row[1], 3)+" ]", labelSize, render.Ink)
	}
	label(l, x, 180, "det(R) = "+num(s.det, 3), smallSize, render.Muted)
	label(l, x, 200, "cos = "+num(math.Cos(s.deg*math.Pi/180), 3), smallSize, render.Muted)
	label(l, x, 218, "sin = "+num(math.Sin(s.deg*math.Pi/180), 3), smallSize, render.Muted)

	return l
}
