package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// GGCanvas draws onto an offscreen raster. It backs PNG export and the
// headless CLI, and needs no window or GPU.
type GGCanvas struct {
	dc *gg.Context
}

// NewGGCanvas allocates a raster surface of the given pixel size.
func NewGGCanvas(w, h int) *GGCanvas {
	dc := gg.NewContext(w, h)
	dc.SetFontFace(labelFace())
	return &GGCanvas{dc: dc}
}

func (c *GGCanvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

func (c *GGCanvas) Fill(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *GGCanvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

func (c *GGCanvas) FillCircle(x, y, r float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

func (c *GGCanvas) StrokeCircle(x, y, r, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(x, y, r)
	c.dc.Stroke()
}

func (c *GGCanvas) FillRect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *GGCanvas) Text(s string, x, y, ax, ay float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// Image returns the rendered raster.
func (c *GGCanvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the raster to path.
func (c *GGCanvas) SavePNG(path string) error { return c.dc.SavePNG(path) }
