// SPDX-License-Identifier: MIT

package sim

import (
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
	"github.com/katalvlaran/microsim/vector"
)

// Inner products offered by the similarity view.
const (
	ipStandard = "standard"
	ipDiagonal = "diagonal"
	ipGeneral  = "general"
)

// pdMargin keeps |w12| strictly below √(w11·w22) so W stays positive definite.
const pdMargin = 0.01

// unitBallSegments is the polygon resolution of the W unit ball.
const unitBallSegments = 72

var similarityControls = []Control{
	{Name: "ux", Kind: Slider, Label: "u.x", Min: -5, Max: 5, Step: 0.1, Default: 3},
	{Name: "uy", Kind: Slider, Label: "u.y", Min: -5, Max: 5, Step: 0.1, Default: 1},
	{Name: "vx", Kind: Slider, Label: "v.x", Min: -5, Max: 5, Step: 0.1, Default: 1},
	{Name: "vy", Kind: Slider, Label: "v.y", Min: -5, Max: 5, Step: 0.1, Default: 2},
	{Name: "product", Kind: Select, Label: "Inner product", Options: []string{ipStandard, ipDiagonal, ipGeneral}},
	{Name: "w11", Kind: Slider, Label: "w11", Min: 0.2, Max: 3, Step: 0.1, Default: 1},
	{Name: "w22", Kind: Slider, Label: "w22", Min: 0.2, Max: 3, Step: 0.1, Default: 1},
	{Name: "w12", Kind: Slider, Label: "w12", Min: -1, Max: 1, Step: 0.1},
}

// similarity measures two 2-D vectors with the standard dot product and
// with a weighted inner product ⟨u,v⟩_W = uᵀWv.
type similarity struct {
	frame
	u, v          [2]float64
	product       string
	w11, w22, w12 float64 // slider values; w12 is clamped in eval

	dot, normU, normV float64
	cos, angle, dist  float64
	proj              []float64 // u projected onto v
	weight            *matrix.Dense
	wip, wnU, wnV     float64
	wangle            float64
}

func newSimilarity(f frame) (Sim, error) {
	return similarity{
		frame:   f,
		u:       [2]float64{3, 1},
		v:       [2]float64{1, 2},
		product: ipStandard,
		w11:     1,
		w22:     1,
	}.eval()
}

func (s similarity) Name() string        { return "similarity" }
func (s similarity) Controls() []Control { return slices.Clone(similarityControls) }

func (s similarity) Apply(e Event) (Sim, error) {
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
	case "product":
		s.product = e.Option
	case "w11":
		s.w11 = e.Value
	case "w22":
		s.w22 = e.Value
	case "w12":
		s.w12 = e.Value
	}

	return s.eval()
}

// weights returns W for the selected inner product.
func (s similarity) weights() [2][2]float64 {
	switch s.product {
	case ipDiagonal:
		return [2][2]float64{{s.w11, 0}, {0, s.w22}}
	case ipGeneral:
		w12 := s.w12
		if limit := math.Sqrt(s.w11*s.w22) - pdMargin; math.Abs(w12) >= limit {
			w12 = math.Copysign(limit-pdMargin, w12)
		}
		return [2][2]float64{{s.w11, w12}, {w12, s.w22}}
	default:
		return [2][2]float64{{1, 0}, {0, 1}}
	}
}

func (s similarity) eval() (Sim, error) {
	u, v := s.u[:], s.v[:]
	var err error
	if s.dot, err = vector.Dot(u, v); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.normU, err = vector.Norm(u); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.normV, err = vector.Norm(v); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.cos, err = vector.CosineSimilarity(u, v); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.angle, err = vector.Angle(u, v); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.dist, err = vector.EuclideanDistance(u, v); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.proj, err = vector.Project(u, v); err != nil {
		return nil, simErrorf(s.Name(), err)
	}

	if s.weight, err = dense2(s.weights()); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.wip, err = vector.WeightedInner(u, v, s.weight); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.wnU, err = vector.WeightedNorm(u, s.weight); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.wnV, err = vector.WeightedNorm(v, s.weight); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.wangle, err = vector.WeightedAngle(u, v, s.weight); err != nil {
		return nil, simErrorf(s.Name(), err)
	}

	return s, nil
}

func deg(rad float64) float64 { return rad * 180 / math.Pi }

func (s similarity) Readout() []Reading {
	out := []Reading{
		{Label: "dot", Value: s.dot},
		{Label: "norm_u", Value: s.normU},
		{Label: "norm_v", Value: s.normV},
		{Label: "cosine", Value: s.cos},
		{Label: "angle_deg", Value: deg(s.angle)},
		{Label: "distance", Value: s.dist},
	}
	if s.product == ipStandard {
		return out
	}

	return append(out,
		Reading{Label: "inner_w", Value: s.wip},
		Reading{Label: "norm_w_u", Value: s.wnU},
		Reading{Label: "norm_w_v", Value: s.wnV},
		Reading{Label: "angle_w_deg", Value: deg(s.wangle)},
		Reading{Label: "cauchy_schwarz_slack", Value: s.wnU*s.wnV - math.Abs(s.wip)},
	)
}

// unitBall traces {x : ‖x‖_W = 1}.
func (s similarity) unitBall(p plane) []f64.Vec2 {
	pts := make([]f64.Vec2, 0, unitBallSegments)
	for i := 0; i < unitBallSegments; i++ {
		t := 2 * math.Pi * float64(i) / unitBallSegments
		d := []float64{math.Cos(t), math.Sin(t)}
		n, err := vector.WeightedNorm(d, s.weight)
		if err != nil || n == 0 {
			continue
		}
		pts = append(pts, p.at(d[0]/n, d[1]/n))
	}

	return pts
}

func (s similarity) Render() *render.List {
	l := canvas(s.frame, "Inner Products and Similarity")
	side := min(s.w*0.6, s.h-60)
	p := plane{origin: f64.Vec2{10 + side/2, 45 + side/2}, unit: side / 11}
	p.axes(l, 5)
	o := p.at(0, 0)

	if ball := s.unitBall(p); len(ball) >= 3 {
		l.Polygon(ball, render.FillStroke(render.Alpha(render.Highlight, 50), render.Warning, 1))
	}
	if s.normU > 0 && s.normV > 0 {
		start := math.Atan2(s.u[1], s.u[0])
		cross, _ := vector.SignedArea(s.u[:], s.v[:])
		sweep := math.Atan2(cross, s.dot)
		// Screen angles run clockwise.
		l.Arc(o, p.unit*0.8, -start, -sweep, render.Stroke(render.Accent, 1.5))
	}
	l.Line(p.vec(s.u[:]), p.vec(s.proj), render.Stroke(render.Muted, 1))
	l.Arrow(o, p.vec(s.proj), render.Stroke(render.Accent, 2))
	l.Arrow(o, p.vec(s.u[:]), render.Stroke(render.Primary, 2.5))
	l.Arrow(o, p.vec(s.v[:]), render.Stroke(render.Secondary, 2.5))
	label(l, p.vec(s.u[:])[0]+6, p.vec(s.u[:])[1]-6, "u", labelSize, render.Primary)
	label(l, p.vec(s.v[:])[0]+6, p.vec(s.v[:])[1]-6, "v", labelSize, render.Secondary)

	x, y := 20+side, 70.0
	line := func(txt string, c color.RGBA) {
		label(l, x, y, txt, smallSize, c)
		y += 20
	}
	line("u = ("+compact(s.u[0])+", "+compact(s.u[1])+")", render.Primary)
	line("v = ("+compact(s.v[0])+", "+compact(s.v[1])+")", render.Secondary)
	line("u . v = "+num(s.dot, 2), render.Ink)
	line("|u| = "+num(s.normU, 3)+"  |v| = "+num(s.normV, 3), render.Ink)
	line("cos = "+num(s.cos, 3), render.Ink)
	line("angle = "+num(deg(s.angle), 1)+" deg", render.Ink)
	line("distance = "+num(s.dist, 3), render.Ink)
	if s.product != ipStandard {
		y += 10
		w, _ := matrix.ToRows(s.weight)
		line("W = [["+compact(w[0][0])+", "+num(w[0][1], 2)+"], ["+num(w[1][0], 2)+", "+compact(w[1][1])+"]]", render.Warning)
		line("<u,v>_W = "+num(s.wip, 3), render.Ink)
		line("|u|_W = "+num(s.wnU, 3)+"  |v|_W = "+num(s.wnV, 3), render.Ink)
		line("angle_W = "+num(deg(s.wangle), 1)+" deg", render.Ink)
		line("|<u,v>_W| <= |u|_W |v|_W", render.Muted)
	}

	return l
}
