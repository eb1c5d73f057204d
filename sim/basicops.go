// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
)

const (
	opsAddition = "addition"
	opsScalar   = "scalar"
	opsN        = 3
)

var basicOpsControls = []Control{
	{Name: "operation", Kind: Select, Label: "Operation", Options: []string{opsAddition, opsScalar}},
	{Name: "scalar", Kind: Slider, Label: "k", Min: -3, Max: 3, Step: 0.5, Default: 2},
	{Name: "random", Kind: Button, Label: "Randomize"},
	{Name: "step", Kind: Button, Label: "Step"},
}

// basicOps shows element-wise addition C = A + B and scalar multiplication
// C = k·A on 3×3 matrices. In addition mode the entries of C are revealed
// one step at a time.
type basicOps struct {
	frame
	a, b     *matrix.Dense // never mutated once built
	op       string
	scalar   float64
	revealed int // cells of C shown, row-major; 0..9

	c *matrix.Dense
}

func newBasicOps(f frame) (Sim, error) {
	a, b, err := randomPair(0)
	if err != nil {
		return nil, simErrorf("basicops", err)
	}

	return basicOps{frame: f, a: a, b: b, op: opsAddition, scalar: 2}.eval()
}

func (s basicOps) Name() string        { return "basicops" }
func (s basicOps) Controls() []Control { return slices.Clone(basicOpsControls) }

// randomPair draws A and B with entries in [-5, 6) from one seed.
func randomPair(seed float64) (*matrix.Dense, *matrix.Dense, error) {
	rng := seeded(seed)
	a, err := matrix.Random(rng, opsN, opsN, -5, 6)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.Random(rng, opsN, opsN, -5, 6)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func (s basicOps) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "operation":
		s.op, s.revealed = e.Option, 0
	case "scalar":
		s.scalar = e.Value
	case "random":
		a, b, err := randomPair(e.Value)
		if err != nil {
			return nil, simErrorf(s.Name(), err)
		}
		s.a, s.b, s.revealed = a, b, 0
	case "step":
		if s.revealed == opsN*opsN {
			s.revealed = 0
		} else {
			s.revealed++
		}
	}

	return s.eval()
}

func (s basicOps) eval() (Sim, error) {
	var err error
	if s.op == opsScalar {
		s.c, err = matrix.Scale(s.a, s.scalar)
	} else {
		s.c, err = matrix.Add(s.a, s.b)
	}
	if err != nil {
		return nil, simErrorf(s.Name(), err)
	}

	return s, nil
}

// highlight returns the cell of the latest step, or ok=false before the first.
func (s basicOps) highlight() (i, j int, ok bool) {
	if s.revealed == 0 {
		return 0, 0, false
	}
	idx := s.revealed - 1

	return idx / opsN, idx % opsN, true
}

func (s basicOps) Readout() []Reading {
	out := make([]Reading, 0, opsN*opsN+1)
	s.c.Do(func(i, j int, v float64) bool {
		out = append(out, Reading{Label: fmt.Sprintf("c%d%d", i+1, j+1), Value: v})
		return true
	})

	return append(out, Reading{Label: "revealed", Value: float64(s.revealed)})
}

func (s basicOps) Render() *render.List {
	title := "Matrix Addition"
	if s.op == opsScalar {
		title = "Scalar Multiplication"
	}
	l := canvas(s.frame, title)

	a, _ := matrix.ToRows(s.a)
	b, _ := matrix.ToRows(s.b)
	c, _ := matrix.ToRows(s.c)
	if s.op == opsAddition {
		for idx := s.revealed; idx < opsN*opsN; idx++ {
			c[idx/opsN][idx%opsN] = math.NaN()
		}
	}

	hi, hj, hasHi := s.highlight()
	shade := func(base color.RGBA) func(i, j int) color.RGBA {
		return func(i, j int) color.RGBA {
			if hasHi && i == hi && j == hj {
				return render.Alpha(render.Highlight, 160)
			}
			return base
		}
	}

	const cell, gap = 36.0, 40.0
	width := 3*opsN*cell + 3*gap
	x, y := (s.w-width)/2, 60.0
	mid := y + opsN*cell/2 + 8
	if s.op == opsAddition {
		grid(l, x, y, cell, a, "A", render.Background, render.Primary, shade(render.Background))
		x += opsN * cell
		centered(l, x+gap/2, mid, "+", 22, render.Ink)
		x += gap
		grid(l, x, y, cell, b, "B", render.Background, render.Secondary, shade(render.Background))
	} else {
		centered(l, x+opsN*cell/2, mid, compact(s.scalar)+" x", 22, render.Ink)
		x += opsN*cell + gap
		grid(l, x, y, cell, a, "A", render.Background, render.Primary, shade(render.Background))
	}
	x += opsN * cell
	centered(l, x+gap/2, mid, "=", 22, render.Ink)
	x += gap
	grid(l, x, y, cell, c, "C", render.Alpha(render.Accent, 40), render.Accent, shade(render.Alpha(render.Accent, 40)))

	fy := 230.0
	if s.op == opsAddition {
		centered(l, s.w/2, fy, "Formula: c_ij = a_ij + b_ij", labelSize, render.Ink)
		centered(l, s.w/2, fy+20, "Each entry in C is the sum of corresponding entries in A and B", smallSize, render.Muted)
	} else {
		centered(l, s.w/2, fy, "Formula: c_ij = k x a_ij", labelSize, render.Ink)
		centered(l, s.w/2, fy+20, "Each entry in C is the scalar k times the corresponding entry in A", smallSize, render.Muted)
	}
	if hasHi {
		sub := fmt.Sprintf("c_%d%d", hi+1, hj+1)
		var line string
		if s.op == opsAddition {
			line = sub + " = " + compact(a[hi][hj]) + " + " + compact(b[hi][hj]) + " = " + compact(c[hi][hj])
		} else {
			line = sub + " = " + num(s.scalar, 1) + " x " + compact(a[hi][hj]) + " = " + compact(c[hi][hj])
		}
		centered(l, s.w/2, fy+48, line, labelSize, render.Danger)
	}

	return l
}
