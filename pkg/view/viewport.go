// Package view holds the pan/zoom transform between screen space and
// world space.
package view

// zoomFactor is applied once per zoom step.
const zoomFactor = 1.2

// MinScale and MaxScale bound the zoom range. Scale can never reach
// zero, so coordinate conversion never divides by zero.
const (
	MinScale = 0.1
	MaxScale = 3.0
)

// Viewport is the pan/zoom state. Scale stays within
// [MinScale, MaxScale]; offsets are screen-space pixels.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// New returns an identity viewport: scale 1, no offset.
func New() *Viewport {
	return &Viewport{Scale: 1}
}

// ZoomIn multiplies the scale by the zoom factor, clamped.
func (v *Viewport) ZoomIn() { v.setScale(v.Scale * zoomFactor) }

// ZoomOut divides the scale by the zoom factor, clamped.
func (v *Viewport) ZoomOut() { v.setScale(v.Scale / zoomFactor) }

func (v *Viewport) setScale(s float64) {
	if s < MinScale {
		s = MinScale
	}
	if s > MaxScale {
		s = MaxScale
	}
	v.Scale = s
}

// Pan adds screen-space deltas to the offset.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// Reset restores scale 1 and zero offset.
func (v *Viewport) Reset() {
	*v = Viewport{Scale: 1}
}

// ToWorld converts screen coordinates to world coordinates. Hit tests
// go through here so they land correctly at any pan/zoom.
func (v *Viewport) ToWorld(sx, sy float64) (float64, float64) {
	return (sx - v.OffsetX) / v.Scale, (sy - v.OffsetY) / v.Scale
}

// ToScreen is the inverse of ToWorld.
func (v *Viewport) ToScreen(wx, wy float64) (float64, float64) {
	return wx*v.Scale + v.OffsetX, wy*v.Scale + v.OffsetY
}
