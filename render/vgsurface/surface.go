// SPDX-License-Identifier: MIT

// Package vgsurface replays render lists onto gonum/plot vector canvases.
//
// Lists use screen coordinates (top-left origin, y down) while vg canvases
// use a bottom-left origin; every point is flipped on the way through. One
// logical pixel maps to one vg point.
package vgsurface

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/katalvlaran/microsim/render"
)

const (
	pointsPerInch  = 72   // one vg point per output pixel
	arrowHeadLen   = 10.0 // base arrowhead length in logical pixels
	arrowHeadAngle = math.Pi / 7
)

// surface binds a canvas to the height used for the y flip.
type surface struct {
	c vg.Canvas
	h float64
}

func (s surface) pt(p f64.Vec2) vg.Point {
	return vg.Point{X: vg.Length(p[0]), Y: vg.Length(s.h - p[1])}
}

// Draw paints l onto c, background first, then commands in order.
func Draw(c vg.Canvas, l *render.List) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("vgsurface: %w", err)
	}
	s := surface{c: c, h: l.Height}

	s.fill(rectPath(s, f64.Vec2{0, 0}, f64.Vec2{l.Width, l.Height}), l.Background)
	for _, cmd := range l.Commands {
		s.command(cmd)
	}

	return nil
}

func (s surface) command(cmd render.Command) {
	st := cmd.Style
	switch cmd.Kind {
	case render.KindRect:
		p := rectPath(s, cmd.Points[0], cmd.Points[1])
		s.fill(p, st.Fill)
		s.stroke(p, st)
	case render.KindLine:
		var p vg.Path
		p.Move(s.pt(cmd.Points[0]))
		p.Line(s.pt(cmd.Points[1]))
		s.stroke(p, st)
	case render.KindArrow:
		s.arrow(cmd.Points[0], cmd.Points[1], st)
	case render.KindCircle:
		var p vg.Path
		p.Arc(s.pt(cmd.Points[0]), vg.Length(cmd.Radius), 0, 2*math.Pi)
		p.Close()
		s.fill(p, st.Fill)
		s.stroke(p, st)
	case render.KindArc:
		// Screen angles turn clockwise; flipping y mirrors them.
		var p vg.Path
		p.Arc(s.pt(cmd.Points[0]), vg.Length(cmd.Radius), -cmd.Start, -cmd.Sweep)
		s.stroke(p, st)
	case render.KindPolygon:
		var p vg.Path
		p.Move(s.pt(cmd.Points[0]))
		for _, q := range cmd.Points[1:] {
			p.Line(s.pt(q))
		}
		p.Close()
		s.fill(p, st.Fill)
		s.stroke(p, st)
	case render.KindText:
		s.text(cmd)
	}
}

func rectPath(s surface, topLeft, size f64.Vec2) vg.Path {
	x, y, w, h := topLeft[0], topLeft[1], size[0], size[1]
	var p vg.Path
	p.Move(s.pt(f64.Vec2{x, y}))
	p.Line(s.pt(f64.Vec2{x + w, y}))
	p.Line(s.pt(f64.Vec2{x + w, y + h}))
	p.Line(s.pt(f64.Vec2{x, y + h}))
	p.Close()
	return p
}

func (s surface) fill(p vg.Path, c color.RGBA) {
	if c.A == 0 {
		return
	}
	s.c.SetColor(c)
	s.c.Fill(p)
}

func (s surface) stroke(p vg.Path, st render.Style) {
	if st.Stroke.A == 0 || st.Width <= 0 {
		return
	}
	s.c.SetColor(st.Stroke)
	s.c.SetLineWidth(vg.Length(st.Width))
	s.c.Stroke(p)
}

// arrow strokes the shaft and fills a triangular head in the stroke colour.
func (s surface) arrow(tail, head f64.Vec2, st render.Style) {
	var shaft vg.Path
	shaft.Move(s.pt(tail))
	shaft.Line(s.pt(head))
	s.stroke(shaft, st)

	dx, dy := head[0]-tail[0], head[1]-tail[1]
	if dx == 0 && dy == 0 {
		return
	}
	theta := math.Atan2(dy, dx)
	size := arrowHeadLen + 2*st.Width
	left := f64.Vec2{head[0] - size*math.Cos(theta-arrowHeadAngle), head[1] - size*math.Sin(theta-arrowHeadAngle)}
	right := f64.Vec2{head[0] - size*math.Cos(theta+arrowHeadAngle), head[1] - size*math.Sin(theta+arrowHeadAngle)}

	var tip vg.Path
	tip.Move(s.pt(head))
	tip.Line(s.pt(left))
	tip.Line(s.pt(right))
	tip.Close()
	s.fill(tip, st.Stroke)
}

func (s surface) text(cmd render.Command) {
	if cmd.Text == "" || cmd.Style.Fill.A == 0 {
		return
	}
	face := font.DefaultCache.Lookup(plot.DefaultFont, vg.Length(cmd.Size))
	pt := s.pt(cmd.Points[0])
	switch cmd.Align {
	case render.AlignCenter:
		pt.X -= face.Width(cmd.Text) / 2
	case render.AlignRight:
		pt.X -= face.Width(cmd.Text)
	}
	s.c.SetColor(cmd.Style.Fill)
	s.c.FillString(face, pt, cmd.Text)
}

// WriteSVG renders l as an SVG document.
func WriteSVG(w io.Writer, l *render.List) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("vgsurface: %w", err)
	}
	c := vgsvg.New(vg.Length(l.Width), vg.Length(l.Height))
	if err := Draw(c, l); err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("vgsurface: svg: %w", err)
	}

	return nil
}

// WritePNG rasterizes l at one pixel per logical unit.
func WritePNG(w io.Writer, l *render.List) error {
	if err := l.Validate(); err != nil {
		return fmt.Errorf("vgsurface: %w", err)
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(l.Width), vg.Length(l.Height)),
		vgimg.UseDPI(pointsPerInch),
	)
	if err := Draw(c, l); err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("vgsurface: png: %w", err)
	}

	return nil
}
