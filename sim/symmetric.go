// SPDX-License-Identifier: MIT

package sim

import (
	"image/color"
	"slices"
	"strconv"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
)

const maxSymmetricSize = 10

var symmetricControls = []Control{
	{Name: "size", Kind: Slider, Label: "Size", Min: 2, Max: maxSymmetricSize, Step: 1, Default: 6},
	{Name: "random", Kind: Button, Label: "Regenerate"},
}

// symmetric shows the leading n×n block of a 10×10 symmetric matrix, so
// resizing keeps the entries already on screen.
type symmetric struct {
	frame
	full *matrix.Dense // never mutated once built
	n    int

	shown     *matrix.Dense
	sym       bool
	transpose bool // Aᵀ == A entry for entry
}

func newSymmetric(f frame) (Sim, error) {
	full, err := matrix.RandomSymmetric(seeded(0), maxSymmetricSize, 0, 10)
	if err != nil {
		return nil, simErrorf("symmetric", err)
	}

	return symmetric{frame: f, full: full, n: 6}.eval()
}

func (s symmetric) Name() string        { return "symmetric" }
func (s symmetric) Controls() []Control { return slices.Clone(symmetricControls) }

func (s symmetric) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "size":
		s.n = int(e.Value)
	case "random":
		full, err := matrix.RandomSymmetric(seeded(e.Value), maxSymmetricSize, 0, 10)
		if err != nil {
			return nil, simErrorf(s.Name(), err)
		}
		s.full = full
	}

	return s.eval()
}

func (s symmetric) eval() (Sim, error) {
	rows, err := matrix.ToRows(s.full)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	block := make([][]float64, s.n)
	for i := range block {
		block[i] = rows[i][:s.n]
	}
	if s.shown, err = matrix.NewDenseFrom(block); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.sym, err = matrix.IsSymmetric(s.shown); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	t, err := matrix.Transpose(s.shown)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	s.transpose = matrix.Equal(s.shown, t)

	return s, nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (s symmetric) Readout() []Reading {
	return []Reading{
		{Label: "size", Value: float64(s.n)},
		{Label: "symmetric", Value: boolValue(s.sym)},
		{Label: "transpose_equal", Value: boolValue(s.transpose)},
		{Label: "entries", Value: float64(s.n * s.n)},
		{Label: "independent", Value: float64(s.n * (s.n + 1) / 2)},
	}
}

var (
	diagFill  = render.Alpha(render.Highlight, 90)
	upperFill = render.Alpha(render.Primary, 70)
	lowerFill = render.Alpha(render.Accent, 70)
)

func (s symmetric) Render() *render.List {
	l := canvas(s.frame, "Symmetric Matrix")
	centered(l, s.w/2, 54, "A[i,j] = A[j,i]", labelSize+2, render.Muted)

	cell := min(max((min(s.w-80, s.h-130))/float64(s.n), 25), 50)
	total := cell * float64(s.n)
	x, y := (s.w-total)/2, 85.0
	for k := 0; k < s.n; k++ {
		idx := strconv.Itoa(k + 1)
		centered(l, x+float64(k)*cell+cell/2, y-6, idx, smallSize, render.Muted)
		centered(l, x-15, y+float64(k)*cell+cell/2+4, idx, smallSize, render.Muted)
	}
	rows, _ := matrix.ToRows(s.shown)
	grid(l, x, y, cell, rows, "", render.Background, render.Axis, func(i, j int) color.RGBA {
		switch {
		case i == j:
			return diagFill
		case i < j:
			return upperFill
		default:
			return lowerFill
		}
	})

	ly, lx := y+total+15, s.w/2-120
	for k, item := range []struct {
		name string
		fill color.RGBA
	}{{"Diagonal", diagFill}, {"Upper", upperFill}, {"Lower", lowerFill}} {
		bx := lx + float64(k)*80
		l.Rect(bx, ly, 15, 15, render.FillStroke(item.fill, render.Axis, 1))
		label(l, bx+20, ly+12, item.name, smallSize, render.Ink)
	}
	label(l, 10, s.h-12, "Size: "+strconv.Itoa(s.n)+"x"+strconv.Itoa(s.n)+", "+strconv.Itoa(s.n*(s.n+1)/2)+" independent entries", smallSize, render.Ink)

	return l
}
