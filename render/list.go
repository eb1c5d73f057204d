// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// List is an append-only sequence of commands on a Width×Height canvas.
// The zero value is not usable; start from NewList.
type List struct {
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Background color.RGBA `json:"background"`
	Commands   []Command  `json:"commands"`
}

// NewList returns an empty list for a w×h canvas painted with Background.
func NewList(w, h float64) *List {
	return &List{Width: w, Height: h, Background: Background}
}

// Len returns the number of commands.
func (l *List) Len() int { return len(l.Commands) }

// Validate checks the canvas size and every command.
func (l *List) Validate() error {
	if !(l.Width > 0) || !(l.Height > 0) || math.IsInf(l.Width, 0) || math.IsInf(l.Height, 0) {
		return ErrBadCanvas
	}
	for i, c := range l.Commands {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}

	return nil
}

func (l *List) push(c Command) *List {
	l.Commands = append(l.Commands, c)
	return l
}

// Rect adds an axis-aligned rectangle with top-left (x,y) and size w×h.
func (l *List) Rect(x, y, w, h float64, s Style) *List {
	return l.push(Command{Kind: KindRect, Points: []f64.Vec2{{x, y}, {w, h}}, Style: s})
}

// Line adds a segment a→b.
func (l *List) Line(a, b f64.Vec2, s Style) *List {
	return l.push(Command{Kind: KindLine, Points: []f64.Vec2{a, b}, Style: s})
}

// Arrow adds a segment with an arrowhead at head. The head is filled with
// the stroke colour.
func (l *List) Arrow(tail, head f64.Vec2, s Style) *List {
	return l.push(Command{Kind: KindArrow, Points: []f64.Vec2{tail, head}, Style: s})
}

// Circle adds a full circle.
func (l *List) Circle(c f64.Vec2, r float64, s Style) *List {
	return l.push(Command{Kind: KindCircle, Points: []f64.Vec2{c}, Radius: r, Style: s})
}

// Arc adds a circular arc. Angles are radians measured clockwise on screen
// (y down), matching the canvas convention of the visualizations.
func (l *List) Arc(c f64.Vec2, r, start, sweep float64, s Style) *List {
	return l.push(Command{Kind: KindArc, Points: []f64.Vec2{c}, Radius: r, Start: start, Sweep: sweep, Style: s})
}

// Polygon adds a closed polygon through pts (copied).
func (l *List) Polygon(pts []f64.Vec2, s Style) *List {
	cp := make([]f64.Vec2, len(pts))
	copy(cp, pts)
	return l.push(Command{Kind: KindPolygon, Points: cp, Style: s})
}

// Text adds a label anchored at p (baseline, aligned horizontally by a).
func (l *List) Text(p f64.Vec2, text string, size float64, a Align, c color.RGBA) *List {
	return l.push(Command{Kind: KindText, Points: []f64.Vec2{p}, Text: text, Size: size, Align: a, Style: Style{Fill: c}})
}
