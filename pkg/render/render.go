package render

import (
	"image/color"

	"github.com/chazu/skein/pkg/graph"
	"github.com/chazu/skein/pkg/view"
)

var (
	backgroundColor = color.RGBA{0xFA, 0xFA, 0xF7, 0xFF}
	outlineColor    = color.RGBA{0x2C, 0x3E, 0x50, 0xFF}
	nameColor       = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	labelColor      = color.RGBA{0x55, 0x5F, 0x66, 0xFF}
	legendPanel     = color.RGBA{0xFF, 0xFF, 0xFF, 0xD8}
	legendText      = color.RGBA{0x33, 0x3A, 0x40, 0xFF}
)

// labelOffset lifts edge labels off the line so the text does not sit
// on the stroke.
const labelOffset = 6

// Scene bundles what one frame needs: the graph being laid out and the
// viewport transform to draw it under.
type Scene struct {
	Graph *graph.Graph
	View  *view.Viewport
}

// Draw renders one complete frame: clear, edges under nodes, then node
// circles with their names. All positions go through the viewport, so
// the frame reflects the current pan and zoom. The legend is drawn
// separately (DrawLegend) because it ignores the transform.
func Draw(c Canvas, s Scene) {
	c.Fill(backgroundColor)
	for _, e := range s.Graph.Edges {
		drawEdge(c, s.View, e)
	}
	for _, n := range s.Graph.Nodes {
		drawNode(c, s.View, n)
	}
}

func drawEdge(c Canvas, vp *view.Viewport, e *graph.Edge) {
	x1, y1 := vp.ToScreen(e.From.X, e.From.Y)
	x2, y2 := vp.ToScreen(e.To.X, e.To.Y)
	c.Line(x1, y1, x2, y2, e.Width*vp.Scale, e.Color)

	mx, my := (x1+x2)/2, (y1+y2)/2
	c.Text(string(e.Rel.Kind), mx, my-labelOffset, 0.5, 1, labelColor)
}

func drawNode(c Canvas, vp *view.Viewport, n *graph.Node) {
	x, y := vp.ToScreen(n.X, n.Y)
	r := n.Radius * vp.Scale
	c.FillCircle(x, y, r, n.Color)
	c.StrokeCircle(x, y, r, 2*vp.Scale, outlineColor)
	c.Text(n.Name, x, y, 0.5, 0.5, nameColor)
}

// DrawLegend paints the kind/color key in the bottom-left corner. It is
// a static overlay in screen space: panning and zooming never move it.
func DrawLegend(c Canvas) {
	kinds := graph.Kinds()
	const (
		rowH    = 17.0
		swatch  = 10.0
		pad     = 8.0
		panelW  = 110.0
		margin  = 10.0
		textGap = 6.0
	)
	_, h := c.Size()
	panelH := pad*2 + rowH*float64(len(kinds))
	px, py := margin, h-margin-panelH

	c.FillRect(px, py, panelW, panelH, legendPanel)
	for i, k := range kinds {
		ry := py + pad + rowH*float64(i)
		c.FillRect(px+pad, ry+(rowH-swatch)/2, swatch, swatch, k.Color())
		c.Text(string(k), px+pad+swatch+textGap, ry+rowH/2, 0, 0.5, legendText)
	}
}
