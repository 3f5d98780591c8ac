package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas draws onto a live ebiten frame.
type EbitenCanvas struct {
	dst  *ebiten.Image
	face text.Face
}

// NewEbitenCanvas wraps the frame image the game is currently drawing.
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{dst: dst, face: text.NewGoXFace(labelFace())}
}

func (c *EbitenCanvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *EbitenCanvas) Fill(col color.Color) {
	c.dst.Fill(col)
}

func (c *EbitenCanvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), col, true)
}

func (c *EbitenCanvas) FillCircle(x, y, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), col, true)
}

func (c *EbitenCanvas) StrokeCircle(x, y, r, width float64, col color.Color) {
	vector.StrokeCircle(c.dst, float32(x), float32(y), float32(r), float32(width), col, true)
}

func (c *EbitenCanvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, true)
}

func (c *EbitenCanvas) Text(s string, x, y, ax, ay float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = align(ax)
	op.SecondaryAlign = align(ay)
	text.Draw(c.dst, s, c.face, op)
}

func align(a float64) text.Align {
	switch {
	case a >= 0.75:
		return text.AlignEnd
	case a >= 0.25:
		return text.AlignCenter
	default:
		return text.AlignStart
	}
}
