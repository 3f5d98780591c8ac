// Package render draws the relationship scene onto a pixel surface.
//
// Drawing goes through the Canvas interface so the same scene code
// serves both the live window (ebiten) and PNG export (gg).
package render

import "image/color"

// Canvas is a minimal screen-space drawing surface.
type Canvas interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h float64)
	// Fill clears the whole surface to one color.
	Fill(c color.Color)
	// Line strokes a straight segment.
	Line(x1, y1, x2, y2, width float64, c color.Color)
	// FillCircle fills a circle centered at (x, y).
	FillCircle(x, y, r float64, c color.Color)
	// StrokeCircle outlines a circle centered at (x, y).
	StrokeCircle(x, y, r, width float64, c color.Color)
	// FillRect fills an axis-aligned rectangle from its top-left corner.
	FillRect(x, y, w, h float64, c color.Color)
	// Text draws s anchored at (x, y). ax and ay pick the anchor point
	// within the string bounds: 0 is left/top, 0.5 center, 1 right/bottom.
	Text(s string, x, y, ax, ay float64, c color.Color)
}
