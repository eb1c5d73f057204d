// SPDX-License-Identifier: MIT

package sim

import (
	"errors"
	"image/color"
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
)

var loraControls = []Control{
	{Name: "rank", Kind: Slider, Label: "Rank r", Min: 1, Max: 16, Step: 1, Default: 4},
	{Name: "dim", Kind: Slider, Label: "Dim d", Min: 16, Max: 64, Step: 8, Default: 32},
}

// errSVD reports an SVD that failed to converge.
var errSVD = errors.New("sim: svd did not converge")

// loraSeed fixes the factor entries so the view depends on d and r only.
const loraSeed = 7

// lora compares full fine-tuning of a d×k update with a rank-r
// factorization ΔW = B·A (k = d).
type lora struct {
	frame
	d, r int

	params matrix.LowRankParams
	b, a   *matrix.Dense
	delta  *matrix.Dense
	rank   int // numerical rank of delta
}

func newLoRA(f frame) (Sim, error) {
	return lora{frame: f, d: 32, r: 4}.eval()
}

func (s lora) Name() string        { return "lora" }
func (s lora) Controls() []Control { return slices.Clone(loraControls) }

func (s lora) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "rank":
		s.r = int(e.Value)
	case "dim":
		s.d = int(e.Value)
	}

	return s.eval()
}

func (s lora) eval() (Sim, error) {
	var err error
	if s.params, err = matrix.LowRank(s.d, s.d, s.r); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	rng := seeded(loraSeed)
	if s.b, err = matrix.Random(rng, s.d, s.r, -2, 3); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.a, err = matrix.Random(rng, s.r, s.d, -2, 3); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.delta, err = matrix.LowRankProduct(s.b, s.a); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.rank, err = numericalRank(s.delta); err != nil {
		return nil, simErrorf(s.Name(), err)
	}

	return s, nil
}

// numericalRank counts singular values above max(r,c)·ε·σ₁.
func numericalRank(m matrix.Matrix) (int, error) {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return 0, err
	}
	var svd mat.SVD
	if !svd.Factorize(g, mat.SVDNone) {
		return 0, errSVD
	}
	vals := svd.Values(nil)
	if len(vals) == 0 || vals[0] == 0 {
		return 0, nil
	}
	r, c := g.Dims()
	tol := float64(max(r, c)) * vals[0] * 0x1p-52
	rank := 0
	for _, v := range vals {
		if v > tol {
			rank++
		}
	}

	return rank, nil
}

func (s lora) Readout() []Reading {
	p := s.params
	return []Reading{
		{Label: "d", Value: float64(p.D)},
		{Label: "k", Value: float64(p.K)},
		{Label: "r", Value: float64(p.R)},
		{Label: "full_params", Value: float64(p.Full)},
		{Label: "lora_params", Value: float64(p.Factor)},
		{Label: "savings_pct", Value: p.Savings},
		{Label: "rank_delta", Value: float64(s.rank)},
	}
}

// heat maps v to a diverging colour scaled by lim.
func heat(v, lim float64) color.RGBA {
	if lim == 0 {
		return render.Background
	}
	a := uint8(math.Round(235*math.Min(math.Abs(v)/lim, 1))) + 20
	if v < 0 {
		return render.Alpha(render.Secondary, a)
	}
	return render.Alpha(render.Primary, a)
}

// heatmap paints m as w×h pixels at (x, y), one rect per entry.
func heatmap(l *render.List, x, y, w, h float64, m *matrix.Dense) {
	rows, cols := m.Shape()
	lim := 0.0
	m.Do(func(_, _ int, v float64) bool {
		lim = math.Max(lim, math.Abs(v))
		return true
	})
	cw, ch := w/float64(cols), h/float64(rows)
	m.Do(func(i, j int, v float64) bool {
		l.Rect(x+float64(j)*cw, y+float64(i)*ch, cw, ch, render.Filled(heat(v, lim)))
		return true
	})
	l.Rect(x, y, w, h, render.Stroke(render.Axis, 1))
}

// compactCount prints parameter counts as 1.2K / 3.4M once they grow.
func compactCount(n int) string {
	switch {
	case n >= 1_000_000:
		return num(float64(n)/1e6, 1) + "M"
	case n >= 1_000:
		return num(float64(n)/1e3, 1) + "K"
	default:
		return strconv.Itoa(n)
	}
}

func (s lora) Render() *render.List {
	l := canvas(s.frame, "LoRA: Low-Rank Adaptation")
	p := s.params
	centered(l, s.w/2, 52, "W' = W + dW = W + BA", smallSize, render.Axis)

	const side, gap = 100.0, 30.0
	x := (s.w - (3*side + 2*gap)) / 2
	y := 70.0
	dims := strconv.Itoa(p.D) + "x" + strconv.Itoa(p.K)

	l.Rect(x, y, side, side, render.FillStroke(render.Grid, render.Muted, 1))
	centered(l, x+side/2, y+side/2+5, "W", labelSize, render.Axis)
	centered(l, x+side/2, y+side+16, "W (frozen)", smallSize-1, render.Ink)
	centered(l, x+side/2, y+side+30, dims, smallSize-2, render.Muted)
	centered(l, x+side+gap/2, y+side/2+6, "+", 20, render.Ink)

	x += side + gap
	heatmap(l, x, y, side, side, s.delta)
	centered(l, x+side/2, y+side+16, "dW = BA", smallSize-1, render.Ink)
	centered(l, x+side/2, y+side+30, "(rank "+strconv.Itoa(s.rank)+")", smallSize-2, render.Muted)
	centered(l, x+side+gap/2, y+side/2+6, "=", 20, render.Ink)

	// B (d×r) times A (r×k), widths proportional to r.
	x += side + gap
	thin := max(side*float64(p.R)/float64(p.D), 3)
	heatmap(l, x, y, thin, side, s.b)
	centered(l, x+thin+8, y+side/2+4, "x", smallSize, render.Ink)
	heatmap(l, x+thin+16, y, side-thin-16, thin, s.a)
	centered(l, x+side/2, y+side+16, "B x A", smallSize-1, render.Ink)
	centered(l, x+side/2, y+side+30, "Only B and A are trained", smallSize-2, render.Muted)

	// Parameter efficiency bars.
	by := y + side + 60
	centered(l, s.w/2, by, "Parameter Efficiency", smallSize, render.Ink)
	barX, barW := 50.0, s.w-100
	by += 12
	l.Rect(barX, by, barW, 20, render.FillStroke(render.Muted, render.Ink, 1))
	label(l, barX+10, by+14, "Full: "+compactCount(p.Full)+" params", smallSize-2, render.Background)
	by += 28
	loraW := min(barW*float64(p.Factor)/float64(p.Full), barW)
	l.Rect(barX, by, loraW, 20, render.FillStroke(render.Accent, render.Ink, 1))
	label(l, barX+min(loraW, barW-180)+10, by+14,
		"LoRA: "+compactCount(p.Factor)+" params ("+num(p.Savings, 1)+"% savings)", smallSize-2, render.Ink)

	by += 42
	centered(l, s.w/2, by, "Full: d x k = "+strconv.Itoa(p.D)+" x "+strconv.Itoa(p.K)+" = "+count(p.Full), smallSize-2, render.Axis)
	centered(l, s.w/2, by+14, "LoRA: r(d+k) = "+strconv.Itoa(p.R)+"("+strconv.Itoa(p.D)+"+"+strconv.Itoa(p.K)+") = "+count(p.Factor), smallSize-2, render.Axis)
	label(l, 10, s.h-12, "Rank r: "+strconv.Itoa(p.R)+"   Dim d: "+strconv.Itoa(p.D), smallSize, render.Ink)

	return l
}
