// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Shared palette. Visualizations pick colours by role, not by value.
var (
	Background = colornames.White
	Panel      = colornames.Aliceblue
	Grid       = colornames.Gainsboro
	Axis       = colornames.Dimgray
	Ink        = colornames.Black
	Muted      = colornames.Gray
	Primary    = colornames.Steelblue
	Secondary  = colornames.Indianred
	Accent     = colornames.Seagreen
	Warning    = colornames.Darkorange
	Danger     = colornames.Crimson
	Highlight  = colornames.Gold
)

// Stroke returns a stroke-only style.
func Stroke(c color.RGBA, width float64) Style { return Style{Stroke: c, Width: width} }

// Filled returns a fill-only style.
func Filled(c color.RGBA) Style { return Style{Fill: c} }

// FillStroke returns a style with both paints.
func FillStroke(fill, stroke color.RGBA, width float64) Style {
	return Style{Fill: fill, Stroke: stroke, Width: width}
}

// Alpha returns c with its alpha replaced; the RGB channels are scaled so
// the result stays a valid premultiplied colour.
func Alpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 255) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
