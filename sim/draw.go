// SPDX-License-Identifier: MIT

package sim

import (
	"image/color"
	"math"
	"math/rand/v2"

	"golang.org/x/image/math/f64"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/microsim/matrix"
	"github.com/katalvlaran/microsim/render"
)

// Text sizes in logical pixels.
const (
	titleSize = 18
	labelSize = 14
	smallSize = 12
)

// printer groups thousands so parameter counts stay readable.
var printer = message.NewPrinter(language.English)

var precFormats = [...]string{"%.0f", "%.1f", "%.2f", "%.3f", "%.4f"}

// num formats v with prec decimals (0..4). Values that would round to zero
// print as 0, never -0.
func num(v float64, prec int) string {
	prec = min(max(prec, 0), len(precFormats)-1)
	if math.Abs(v) < 0.5*math.Pow(10, -float64(prec)) {
		v = 0
	}

	return printer.Sprintf(precFormats[prec], v)
}

// compact prints integers without decimals and everything else with two.
func compact(v float64) string {
	if v == math.Trunc(v) {
		return num(v, 0)
	}

	return num(v, 2)
}

// count prints an integer with grouping separators.
func count(n int) string { return printer.Sprintf("%d", n) }

// seeded returns a PCG generator for a button seed.
func seeded(seed float64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// canvas starts a list with the panel background and a centred title.
func canvas(f frame, title string) *render.List {
	l := render.NewList(f.w, f.h)
	l.Background = render.Panel

	return l.Text(f64.Vec2{f.w / 2, 28}, title, titleSize, render.AlignCenter, render.Ink)
}

// label is shorthand for left-aligned ink text.
func label(l *render.List, x, y float64, s string, size float64, c color.RGBA) {
	l.Text(f64.Vec2{x, y}, s, size, render.AlignLeft, c)
}

// centered is shorthand for centred text.
func centered(l *render.List, x, y float64, s string, size float64, c color.RGBA) {
	l.Text(f64.Vec2{x, y}, s, size, render.AlignCenter, c)
}

// grid draws rows as cells with the top-left corner at (x, y) and an
// optional caption underneath. NaN cells print as "?". shade picks a
// per-cell fill; nil uses fill.
func grid(l *render.List, x, y, cell float64, rows [][]float64, caption string,
	fill, edge color.RGBA, shade func(i, j int) color.RGBA) {
	size := min(cell*0.4, 16)
	cols := 0
	for i, row := range rows {
		cols = len(row)
		for j, v := range row {
			cx, cy := x+float64(j)*cell, y+float64(i)*cell
			c := fill
			if shade != nil {
				c = shade(i, j)
			}
			l.Rect(cx, cy, cell, cell, render.FillStroke(c, edge, 1))
			txt := "?"
			if !math.IsNaN(v) {
				txt = compact(v)
			}
			centered(l, cx+cell/2, cy+cell/2+size/3, txt, size, render.Ink)
		}
	}
	if caption != "" {
		centered(l, x+cell*float64(cols)/2, y+cell*float64(len(rows))+18, caption, labelSize, render.Ink)
	}
}

// rows2 turns a 2×2 array into kernel input rows.
func rows2(m [2][2]float64) [][]float64 {
	return [][]float64{{m[0][0], m[0][1]}, {m[1][0], m[1][1]}}
}

// dense2 builds a kernel matrix from a 2×2 array.
func dense2(m [2][2]float64) (*matrix.Dense, error) {
	return matrix.NewDenseFrom(rows2(m))
}

// array2 copies a 2×2 kernel matrix into an array.
func array2(m matrix.Matrix) ([2][2]float64, error) {
	var out [2][2]float64
	if err := matrix.ValidateShape(m, 2, 2); err != nil {
		return out, err
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return out, err
	}
	out[0][0], out[0][1], out[1][0], out[1][1] = rows[0][0], rows[0][1], rows[1][0], rows[1][1]

	return out, nil
}

// plane maps math coordinates (y up) onto the screen around an origin.
type plane struct {
	origin f64.Vec2
	unit   float64 // pixels per unit
}

func (p plane) at(x, y float64) f64.Vec2 {
	return f64.Vec2{p.origin[0] + x*p.unit, p.origin[1] - y*p.unit}
}

func (p plane) vec(v []float64) f64.Vec2 { return p.at(v[0], v[1]) }

// axes draws grid lines at every unit in [-n, n] and the two axes on top.
func (p plane) axes(l *render.List, n int) {
	ext := float64(n)
	for i := -n; i <= n; i++ {
		t := float64(i)
		l.Line(p.at(t, -ext), p.at(t, ext), render.Stroke(render.Grid, 1))
		l.Line(p.at(-ext, t), p.at(ext, t), render.Stroke(render.Grid, 1))
	}
	l.Line(p.at(-ext, 0), p.at(ext, 0), render.Stroke(render.Axis, 1))
	l.Line(p.at(0, -ext), p.at(0, ext), render.Stroke(render.Axis, 1))
}

// parallelogram fills the parallelogram spanned by u and v from the origin.
func (p plane) parallelogram(l *render.List, u, v []float64, c color.RGBA) {
	l.Polygon([]f64.Vec2{
		p.at(0, 0),
		p.vec(u),
		p.at(u[0]+v[0], u[1]+v[1]),
		p.vec(v),
	}, render.FillStroke(render.Alpha(c, 80), c, 2))
}

// signColor picks the orientation colour for a determinant or signed area.
func signColor(st matrix.Status, v float64) color.RGBA {
	switch {
	case st == matrix.StatusSingular:
		return render.Muted
	case v > 0:
		return render.Accent
	default:
		return render.Secondary
	}
}
