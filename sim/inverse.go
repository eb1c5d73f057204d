// SPDX-License-Identifier: MIT

package sim

import (
	"math"
	"slices"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
	"github.com/katalvlaran/microsim/vector"
)

var inverseControls = []Control{
	{Name: "random", Kind: Button, Label: "Randomize"},
	{Name: "singular", Kind: Button, Label: "Make Singular"},
	{Name: "singularity", Kind: Slider, Label: "Approach singularity", Min: 0, Max: 1, Step: 0.01},
}

// inverse explores A·A⁻¹ = I. Row 2 of the shown matrix slides from the base
// row toward target·row1 as factor goes from 0 to 1.
type inverse struct {
	frame
	base   [2][2]float64
	target float64
	factor float64

	a       [2][2]float64 // matrix actually inverted
	inv     matrix.Inversion
	product *matrix.Dense // A·A⁻¹; nil when singular
	status  matrix.Status
}

func newInverse(f frame) (Sim, error) {
	return inverse{frame: f, base: [2][2]float64{{2, 1}, {1, 1}}, target: 2}.eval()
}

func (s inverse) Name() string        { return "inverse" }
func (s inverse) Controls() []Control { return slices.Clone(inverseControls) }

func (s inverse) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "random":
		r, err := matrix.RandomInvertible2(seeded(e.Value), -5, 6, matrix.DefaultMinAbsDet)
		if err != nil {
			return nil, simErrorf(s.Name(), err)
		}
		if s.base, err = array2(r); err != nil {
			return nil, simErrorf(s.Name(), err)
		}
		s.factor, s.target = 0, 2
	case "singular":
		rng := seeded(e.Value)
		k := float64(1 + rng.IntN(3))
		if rng.IntN(2) == 0 {
			k = -k
		}
		s.factor, s.target = 1, k
	case "singularity":
		s.factor = e.Value
	}

	return s.eval()
}

func (s inverse) eval() (Sim, error) {
	row1 := s.base[0][:]
	keep, err := vector.Scale(s.base[1][:], 1-s.factor)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	toward, err := vector.Scale(row1, s.factor*s.target)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	row2, err := vector.Add(keep, toward)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	s.a = [2][2]float64{{row1[0], row1[1]}, {row2[0], row2[1]}}

	a, err := dense2(s.a)
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.inv, err = matrix.Inverse2(a, s.kernel()...); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	s.product = nil
	if !s.inv.Singular {
		if s.product, err = matrix.Mul(a, s.inv.Inverse); err != nil {
			return nil, simErrorf(s.Name(), err)
		}
	}
	s.status = matrix.ClassifyDet(s.inv.Det, s.kernel()...)

	return s, nil
}

// residual is max |A·A⁻¹ - I| over all entries.
func (s inverse) residual() float64 {
	if s.product == nil {
		return math.NaN()
	}
	var worst float64
	s.product.Do(func(i, j int, v float64) bool {
		want := 0.0
		if i == j {
			want = 1
		}
		worst = max(worst, math.Abs(v-want))
		return true
	})

	return worst
}

func (s inverse) Readout() []Reading {
	out := []Reading{
		{Label: "det", Value: s.inv.Det},
		{Label: "status", Text: s.status.String()},
	}
	if s.inv.Singular {
		return out
	}
	rows, _ := matrix.ToRows(s.inv.Inverse)

	return append(out,
		Reading{Label: "inv11", Value: rows[0][0]},
		Reading{Label: "inv12", Value: rows[0][1]},
		Reading{Label: "inv21", Value: rows[1][0]},
		Reading{Label: "inv22", Value: rows[1][1]},
		Reading{Label: "residual", Value: s.residual()},
	)
}

func (s inverse) Render() *render.List {
	l := canvas(s.frame, "Matrix Inverse: A x A^-1 = I")
	const cell = 45.0
	startX := (s.w - (6*cell + 120)) / 2
	y := 60.0

	grid(l, startX, y, cell, rows2(s.a), "A", render.Alpha(render.Primary, 60), render.Primary, nil)
	centered(l, startX+2*cell+20, y+cell+8, "x", 24, render.Ink)

	invX := startX + 2*cell + 40
	prodX := invX + 2*cell + 40
	if s.inv.Singular {
		l.Rect(invX, y, 2*cell, 2*cell, render.FillStroke(render.Alpha(render.Danger, 60), render.Danger, 2))
		centered(l, invX+cell, y+cell-4, "Singular!", labelSize, render.Danger)
		centered(l, invX+cell, y+cell+14, "No inverse", smallSize-1, render.Danger)
		centered(l, invX+cell, y+2*cell+18, "A^-1", labelSize, render.Danger)

		l.Rect(prodX, y, 2*cell, 2*cell, render.FillStroke(render.Grid, render.Muted, 1))
		centered(l, prodX+cell, y+cell+6, "-", labelSize, render.Muted)
		centered(l, prodX+cell, y+2*cell+18, "Result", labelSize, render.Muted)
	} else {
		inv, _ := matrix.ToRows(s.inv.Inverse)
		prod, _ := matrix.ToRows(s.product)
		grid(l, invX, y, cell, inv, "A^-1", render.Alpha(render.Accent, 60), render.Accent, nil)
		grid(l, prodX, y, cell, prod, "I", render.Alpha(render.Highlight, 60), render.Highlight, nil)
	}
	centered(l, invX+2*cell+20, y+cell+8, "=", 24, render.Ink)

	// Determinant box coloured by status.
	var box, edge = render.Alpha(render.Accent, 60), render.Accent
	msg := "Matrix is invertible"
	switch s.status {
	case matrix.StatusSingular:
		box, edge, msg = render.Alpha(render.Danger, 60), render.Danger, "Matrix is singular (not invertible)"
	case matrix.StatusNearSingular:
		box, edge, msg = render.Alpha(render.Highlight, 90), render.Warning, "Near-singular (numerically unstable)"
	}
	detY := 190.0
	l.Rect(s.w/2-80, detY, 160, 40, render.FillStroke(box, edge, 2))
	centered(l, s.w/2, detY+26, "det(A) = "+compact(s.inv.Det), labelSize+2, render.Ink)
	centered(l, s.w/2, detY+60, msg, smallSize, edge)

	fy := 280.0
	centered(l, s.w/2, fy, "For 2x2 matrix:", smallSize, render.Ink)
	centered(l, s.w/2, fy+18, "A^-1 = (1/det) x adj(A)", smallSize-1, render.Muted)
	centered(l, s.w/2, fy+33, "where adj swaps diagonal and negates off-diagonal", smallSize-1, render.Muted)
	if !s.inv.Singular {
		a, b, c, d := s.a[0][0], s.a[0][1], s.a[1][0], s.a[1][1]
		centered(l, s.w/2, fy+55, "A^-1 = (1/"+compact(s.inv.Det)+") x ["+compact(d)+", "+compact(-b)+"; "+compact(-c)+", "+compact(a)+"]",
			smallSize-2, render.Primary)
	}
	label(l, 10, s.h-12, "Approach singularity: "+num(s.factor*100, 0)+"%", smallSize, render.Ink)

	return l
}
