// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"image/color"
	"slices"

	"golang.org/x/image/math/f64"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
)

// sarrusSteps counts the walk: three down-diagonals, three up-diagonals,
// then the result.
const sarrusSteps = 7

var sarrusExamples = map[string][][]float64{
	"singular": {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	"identity": {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	"rotation": {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
}

var sarrusControls = []Control{
	{Name: "example", Kind: Select, Label: "Example", Options: []string{"singular", "identity", "rotation"}},
	{Name: "random", Kind: Button, Label: "Randomize"},
	{Name: "step", Kind: Button, Label: "Step"},
	{Name: "reset", Kind: Button, Label: "Reset"},
}

// sarrus expands a 3×3 determinant into its six diagonal products, one
// per step, with the first two columns repeated to the right.
type sarrus struct {
	frame
	m    *matrix.Dense
	step int // 0..sarrusSteps

	down, up [3]float64
	det      float64
	status   matrix.Status
}

func newSarrus(f frame) (Sim, error) {
	m, err := matrix.NewDenseFrom(sarrusExamples["singular"])
	if err != nil {
		return nil, simErrorf("sarrus", err)
	}

	return sarrus{frame: f, m: m}.eval()
}

func (s sarrus) Name() string        { return "sarrus" }
func (s sarrus) Controls() []Control { return slices.Clone(sarrusControls) }

func (s sarrus) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	var err error
	switch e.Control {
	case "example":
		s.m, err = matrix.NewDenseFrom(sarrusExamples[e.Option])
		s.step = 0
	case "random":
		s.m, err = matrix.Random(seeded(e.Value), 3, 3, -5, 6)
		s.step = 0
	case "step":
		s.step = (s.step + 1) % (sarrusSteps + 1)
	case "reset":
		s.step = 0
	}
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}

	return s.eval()
}

// downCells and upCells are the extended-grid cells of diagonal i.
func downCells(i int) [3][2]int { return [3][2]int{{0, i}, {1, i + 1}, {2, i + 2}} }
func upCells(i int) [3][2]int   { return [3][2]int{{0, i + 2}, {1, i + 1}, {2, i}} }

func (s sarrus) eval() (Sim, error) {
	var err error
	if s.det, err = matrix.Det3(s.m); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	rows, err := matrix.ToRows(s.m)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	product := func(cells [3][2]int) float64 {
		p := 1.0
		for _, c := range cells {
			p *= rows[c[0]][c[1]%3]
		}
		return p
	}
	for i := range 3 {
		s.down[i] = product(downCells(i))
		s.up[i] = product(upCells(i))
	}
	s.status = matrix.ClassifyDet(s.det, s.kernel()...)

	return s, nil
}

// shown reports how many down and up diagonals the current step reveals.
func (s sarrus) shown() (down, up int) {
	return min(s.step, 3), min(max(s.step-3, 0), 3)
}

func sum3(v [3]float64) float64 { return v[0] + v[1] + v[2] }

func (s sarrus) Readout() []Reading {
	out := []Reading{{Label: "step", Value: float64(s.step)}}
	for i, v := range s.down {
		out = append(out, Reading{Label: fmt.Sprintf("down%d", i+1), Value: v})
	}
	for i, v := range s.up {
		out = append(out, Reading{Label: fmt.Sprintf("up%d", i+1), Value: v})
	}

	return append(out,
		Reading{Label: "down_sum", Value: sum3(s.down)},
		Reading{Label: "up_sum", Value: sum3(s.up)},
		Reading{Label: "det", Value: s.det},
		Reading{Label: "status", Text: s.status.String()},
	)
}

func (s sarrus) Render() *render.List {
	l := canvas(s.frame, "Rule of Sarrus")
	rows, _ := matrix.ToRows(s.m)
	ext := make([][]float64, 3)
	for i, r := range rows {
		ext[i] = append(slices.Clone(r), r[0], r[1])
	}

	const cell = 44.0
	x, y := (s.w-5*cell)/2, 60.0
	grid(l, x, y, cell, ext, "", render.Background, render.Axis, func(i, j int) color.RGBA {
		if j >= 3 {
			return render.Alpha(render.Muted, 40)
		}
		return render.Background
	})
	centered(l, x+4*cell, y-8, "Extended columns", smallSize, render.Muted)

	center := func(c [2]int) f64.Vec2 {
		return f64.Vec2{x + (float64(c[1])+0.5)*cell, y + (float64(c[0])+0.5)*cell}
	}
	diag := func(cells [3][2]int, c color.RGBA) {
		l.Line(center(cells[0]), center(cells[2]), render.Stroke(render.Alpha(c, 180), 3))
	}
	nd, nu := s.shown()
	for i := range nd {
		diag(downCells(i), render.Accent)
	}
	for i := range nu {
		diag(upCells(i), render.Secondary)
	}

	term := func(cells [3][2]int) string {
		out := ""
		for k, c := range cells {
			if k > 0 {
				out += "x"
			}
			out += compact(rows[c[0]][c[1]%3])
		}
		return out
	}
	ty := y + 3*cell + 36
	label(l, 40, ty, "Positive diagonals:", labelSize, render.Accent)
	for i := range nd {
		label(l, 60, ty+22*float64(i+1), term(downCells(i))+" = "+compact(s.down[i]), smallSize, render.Ink)
	}
	label(l, s.w/2+20, ty, "Negative diagonals:", labelSize, render.Secondary)
	for i := range nu {
		label(l, s.w/2+40, ty+22*float64(i+1), term(upCells(i))+" = "+compact(s.up[i]), smallSize, render.Ink)
	}

	ry := ty + 4*22 + 20
	if s.step == sarrusSteps {
		line := fmt.Sprintf("det = (%s) - (%s) = %s", compact(sum3(s.down)), compact(sum3(s.up)), compact(s.det))
		centered(l, s.w/2, ry, line, labelSize, render.Ink)
		if s.status == matrix.StatusSingular {
			centered(l, s.w/2, ry+22, "(Singular matrix)", smallSize, render.Danger)
		}
	}
	centered(l, s.w/2, s.h-16, fmt.Sprintf("Step %d/%d", s.step, sarrusSteps), smallSize, render.Muted)

	return l
}
