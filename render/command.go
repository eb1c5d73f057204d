// SPDX-License-Identifier: MIT

// Package render - draw command model.
//
// A List is what a visualization's Render function returns: a flat,
// ordered sequence of primitive commands in screen coordinates (origin at
// the top-left corner, y growing downwards, units are logical pixels).
// Surfaces replay a List; nothing here draws.
package render

import (
	"fmt"
	"image/color"

	"golang.org/x/image/math/f64"
)

// Kind names a drawing primitive. Values are stable strings so encoded
// lists stay readable.
type Kind string

// Kinds.
const (
	KindRect    Kind = "rect"    // Points[0] top-left, Points[1] size (w,h)
	KindLine    Kind = "line"    // Points[0] → Points[1]
	KindArrow   Kind = "arrow"   // Points[0] tail → Points[1] head
	KindCircle  Kind = "circle"  // Points[0] centre, Radius
	KindArc     Kind = "arc"     // Points[0] centre, Radius, Start, Sweep (radians, screen orientation)
	KindPolygon Kind = "polygon" // Points[0..n-1], closed
	KindText    Kind = "text"    // Points[0] anchor, Text, Size, Align
)

// Align is the horizontal text alignment relative to the anchor point.
type Align string

// Alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Style carries paint attributes. A zero alpha disables that paint.
type Style struct {
	Fill   color.RGBA `json:"fill"`
	Stroke color.RGBA `json:"stroke"`
	Width  float64    `json:"width,omitempty"` // stroke width in logical pixels
}

// Command is one primitive.
type Command struct {
	Kind   Kind       `json:"kind"`
	Points []f64.Vec2 `json:"points"`
	Radius float64    `json:"radius,omitempty"`
	Start  float64    `json:"start,omitempty"`
	Sweep  float64    `json:"sweep,omitempty"`
	Text   string     `json:"text,omitempty"`
	Size   float64    `json:"size,omitempty"`
	Align  Align      `json:"align,omitempty"`
	Style  Style      `json:"style"`
}

// minPoints is the number of points each kind requires.
var minPoints = map[Kind]int{
	KindRect:    2,
	KindLine:    2,
	KindArrow:   2,
	KindCircle:  1,
	KindArc:     1,
	KindPolygon: 3,
	KindText:    1,
}

// Validate checks the command's shape: a known kind and enough points.
func (c Command) Validate() error {
	need, ok := minPoints[c.Kind]
	if !ok {
		return fmt.Errorf("kind %q: %w", c.Kind, ErrUnknownKind)
	}
	if len(c.Points) < need {
		return fmt.Errorf("%s: %d points, want ≥ %d: %w", c.Kind, len(c.Points), need, ErrBadCommand)
	}
	switch c.Kind {
	case KindCircle, KindArc:
		if c.Radius < 0 {
			return fmt.Errorf("%s: negative radius: %w", c.Kind, ErrBadCommand)
		}
	case KindText:
		if c.Size <= 0 {
			return fmt.Errorf("text: size must be > 0: %w", ErrBadCommand)
		}
	}

	return nil
}
