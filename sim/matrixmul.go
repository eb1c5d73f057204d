// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
)

// mulShapes maps the shape options of A to (rows, cols).
var mulShapes = map[string][2]int{
	"2x2": {2, 2},
	"2x3": {2, 3},
	"3x2": {3, 2},
	"3x3": {3, 3},
}

var matrixMulControls = []Control{
	{Name: "shape_a", Kind: Select, Label: "A", Options: []string{"2x2", "2x3", "3x2", "3x3"}, Default: 1},
	{Name: "cols_b", Kind: Select, Label: "B columns", Options: []string{"2", "3"}},
	{Name: "random", Kind: Button, Label: "Randomize"},
	{Name: "step", Kind: Button, Label: "Next Multiplication"},
	{Name: "reset", Kind: Button, Label: "Reset"},
}

// matrixMul walks C = A·B one scalar multiplication at a time. B always
// has as many rows as A has columns.
type matrixMul struct {
	frame
	shapeA string
	colsB  int
	seed   float64
	a, b   *matrix.Dense
	done   int // multiplications performed, 0..total

	c *matrix.Dense
}

func newMatrixMul(f frame) (Sim, error) {
	return matrixMul{frame: f, shapeA: "2x3", colsB: 2}.fill()
}

func (s matrixMul) Name() string        { return "matrixmul" }
func (s matrixMul) Controls() []Control { return slices.Clone(matrixMulControls) }

func (s matrixMul) dims() (rA, cA, cB int) {
	d := mulShapes[s.shapeA]
	return d[0], d[1], s.colsB
}

// total is rA·cB·cA, one multiplication per term of every entry.
func (s matrixMul) total() int {
	rA, cA, cB := s.dims()
	return rA * cB * cA
}

func (s matrixMul) Apply(e Event) (Sim, error) {
	if _, err := resolve(s, e); err != nil {
		return nil, err
	}
	switch e.Control {
	case "shape_a":
		s.shapeA = e.Option
		return s.fill()
	case "cols_b":
		n, err := strconv.Atoi(e.Option)
		if err != nil {
			return nil, simErrorf(s.Name(), err)
		}
		s.colsB = n
		return s.fill()
	case "random":
		s.seed = e.Value
		return s.fill()
	case "step":
		if s.done == s.total() {
			s.done = 0
		} else {
			s.done++
		}
	case "reset":
		s.done = 0
	}

	return s.eval()
}

// fill draws A and B (entries 1..5) for the current shapes and restarts.
func (s matrixMul) fill() (Sim, error) {
	rA, cA, cB := s.dims()
	rng := seeded(s.seed)
	var err error
	if s.a, err = matrix.Random(rng, rA, cA, 1, 6); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	if s.b, err = matrix.Random(rng, cA, cB, 1, 6); err != nil {
		return nil, simErrorf(s.Name(), err)
	}
	s.done = 0

	return s.eval()
}

func (s matrixMul) eval() (Sim, error) {
	var err error
	if s.c, err = matrix.Mul(s.a, s.b); err != nil {
		return nil, simErrorf(s.Name(), err)
	}

	return s, nil
}

// cursor locates the next multiplication: entry (i, j) and term k. ok is
// false once every entry is complete.
func (s matrixMul) cursor() (i, j, k int, ok bool) {
	_, cA, cB := s.dims()
	if s.done >= s.total() {
		return 0, 0, 0, false
	}
	entry := s.done / cA

	return entry / cB, entry % cB, s.done % cA, true
}

// runningSum adds the terms of entry (i, j) below k.
func (s matrixMul) runningSum(i, j, k int) float64 {
	a, _ := matrix.ToRows(s.a)
	b, _ := matrix.ToRows(s.b)
	sum := 0.0
	for t := 0; t < k; t++ {
		sum += a[i][t] * b[t][j]
	}
	return sum
}

func (s matrixMul) Readout() []Reading {
	rA, cA, cB := s.dims()
	out := []Reading{
		{Label: "shape", Text: fmt.Sprintf("%dx%d * %dx%d", rA, cA, cA, cB)},
		{Label: "multiplications", Value: float64(rA * cB * cA)},
		{Label: "additions", Value: float64(rA * cB * (cA - 1))},
		{Label: "step", Value: float64(s.done)},
	}
	if i, j, k, ok := s.cursor(); ok {
		out = append(out,
			Reading{Label: "entry", Text: fmt.Sprintf("c%d%d", i+1, j+1)},
			Reading{Label: "running_sum", Value: s.runningSum(i, j, k)},
		)
	} else {
		out = append(out, Reading{Label: "entry", Text: "complete"})
	}
	s.c.Do(func(i, j int, v float64) bool {
		out = append(out, Reading{Label: fmt.Sprintf("c%d%d", i+1, j+1), Value: v})
		return true
	})

	return out
}

func (s matrixMul) Render() *render.List {
	l := canvas(s.frame, "Matrix Multiplication: A x B = C")
	rA, cA, cB := s.dims()
	a, _ := matrix.ToRows(s.a)
	b, _ := matrix.ToRows(s.b)
	c, _ := matrix.ToRows(s.c)

	ci, cj, ck, active := s.cursor()
	finished := s.done / cA // entries already summed
	if !active {
		finished = rA * cB
	}
	for idx := finished; idx < rA*cB; idx++ {
		c[idx/cB][idx%cB] = math.NaN()
	}

	rowShade := func(i, j int) color.RGBA {
		switch {
		case active && i == ci && j == ck:
			return render.Highlight
		case active && i == ci:
			return render.Alpha(render.Primary, 60)
		}
		return render.Background
	}
	colShade := func(i, j int) color.RGBA {
		switch {
		case active && j == cj && i == ck:
			return render.Highlight
		case active && j == cj:
			return render.Alpha(render.Accent, 60)
		}
		return render.Background
	}
	outShade := func(i, j int) color.RGBA {
		switch {
		case active && i == ci && j == cj:
			return render.Alpha(render.Highlight, 120)
		case i*cB+j < finished:
			return render.Alpha(render.Highlight, 50)
		}
		return render.Background
	}

	const cell, gap = 36.0, 20.0
	width := float64(cA+2*cB)*cell + 2*gap + 80
	x, y := (s.w-width)/2, 50.0
	mid := y + float64(rA)*cell/2 + 8

	grid(l, x, y, cell, a, "A", render.Background, render.Primary, rowShade)
	x += float64(cA) * cell
	centered(l, x+gap/2+20, mid, "x", 22, render.Ink)
	x += gap + 40
	grid(l, x, y, cell, b, "B", render.Background, render.Accent, colShade)
	x += float64(cB) * cell
	centered(l, x+gap/2+20, mid, "=", 22, render.Ink)
	x += gap + 40
	grid(l, x, y, cell, c, "C", render.Background, render.Warning, outShade)

	ty := y + float64(max(rA, cA))*cell + 40
	centered(l, s.w/2, ty,
		fmt.Sprintf("Multiplications = %d   Additions = %d", rA*cB*cA, rA*cB*(cA-1)), labelSize, render.Ink)
	if !active {
		centered(l, s.w/2, ty+28, "Multiplication complete", labelSize, render.Accent)
		return l
	}

	centered(l, s.w/2, ty+28,
		fmt.Sprintf("c_%d%d = row %d of A . column %d of B", ci+1, cj+1, ci+1, cj+1), labelSize, render.Ink)
	terms := make([]string, cA)
	for t := range cA {
		term := compact(a[ci][t]) + "x" + compact(b[t][cj])
		if t == ck {
			term = "[" + term + "]"
		}
		terms[t] = term
	}
	centered(l, s.w/2, ty+52, strings.Join(terms, " + "), labelSize, render.Ink)
	if ck > 0 {
		centered(l, s.w/2, ty+76,
			fmt.Sprintf("c_%d%d = %s (running sum)", ci+1, cj+1, compact(s.runningSum(ci, cj, ck))), labelSize, render.Danger)
	}

	return l
}
