// Package interact turns pointer and wheel input into viewport changes,
// node drags, and selection callbacks.
package interact

import (
	"github.com/chazu/skein/pkg/graph"
	"github.com/chazu/skein/pkg/sim"
	"github.com/chazu/skein/pkg/view"
)

// State names the current pointer gesture.
type State int

const (
	Idle State = iota
	DraggingNode
	PanningCanvas
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case DraggingNode:
		return "dragging-node"
	case PanningCanvas:
		return "panning-canvas"
	default:
		return "unknown"
	}
}

// edgeHitRadius is how close (world units) a press must land to an edge
// midpoint to count as selecting that relationship.
const edgeHitRadius = 12.0

// Controller is the per-gesture state machine. One gesture runs from
// pointer-down to pointer-up (or pointer-leave, which aborts the same
// way). Wheel zoom works in any state and changes none of it.
type Controller struct {
	graph  *graph.Graph
	vp     *view.Viewport
	engine *sim.Engine

	// OnNodeSelected fires synchronously on pointer-down over a node,
	// with that node's character id.
	OnNodeSelected func(id string)

	// OnRelationshipSelected fires on pointer-down near an edge
	// midpoint when no node was hit. Informational: the gesture still
	// becomes a pan.
	OnRelationshipSelected func(rel graph.Relationship)

	state State
	drag  *graph.Node
	lastX float64
	lastY float64
}

// New wires a controller to the graph it hit-tests, the viewport it
// pans and zooms, and the engine it coordinates drag holds with.
func New(g *graph.Graph, vp *view.Viewport, engine *sim.Engine) *Controller {
	return &Controller{graph: g, vp: vp, engine: engine}
}

// State reports the current gesture state.
func (c *Controller) State() State { return c.state }

// PointerDown starts a gesture at the given screen coordinates. A hit
// node starts a drag and fires OnNodeSelected; anywhere else starts a
// canvas pan.
func (c *Controller) PointerDown(sx, sy float64) {
	wx, wy := c.vp.ToWorld(sx, sy)
	if n := c.graph.NodeAt(wx, wy); n != nil {
		c.state = DraggingNode
		c.drag = n
		c.engine.Hold(n.ID)
		if c.OnNodeSelected != nil {
			c.OnNodeSelected(n.ID)
		}
		return
	}
	if e := c.edgeAt(wx, wy); e != nil && c.OnRelationshipSelected != nil {
		c.OnRelationshipSelected(e.Rel)
	}
	c.state = PanningCanvas
	c.lastX, c.lastY = sx, sy
}

// PointerMove updates an active gesture. Dragging pins the node to the
// pointer and zeroes its velocity; panning shifts the viewport by the
// screen-space delta. In the idle state it does nothing.
func (c *Controller) PointerMove(sx, sy float64) {
	switch c.state {
	case DraggingNode:
		wx, wy := c.vp.ToWorld(sx, sy)
		c.drag.X, c.drag.Y = wx, wy
		c.drag.VX, c.drag.VY = 0, 0
	case PanningCanvas:
		c.vp.Pan(sx-c.lastX, sy-c.lastY)
		c.lastX, c.lastY = sx, sy
	}
}

// PointerUp ends the gesture. A dragged node is released back to the
// engine, which resumes applying forces to it on the next tick.
func (c *Controller) PointerUp() {
	if c.state == DraggingNode {
		c.engine.Release()
		c.drag = nil
	}
	c.state = Idle
}

// PointerLeave aborts the gesture exactly like PointerUp; no partial
// state survives the pointer leaving the surface.
func (c *Controller) PointerLeave() { c.PointerUp() }

// Wheel zooms in for positive deltas and out for negative ones,
// regardless of gesture state.
func (c *Controller) Wheel(dy float64) {
	if dy > 0 {
		c.vp.ZoomIn()
	} else if dy < 0 {
		c.vp.ZoomOut()
	}
}

// edgeAt returns the first edge whose midpoint is within edgeHitRadius
// of the world point, or nil.
func (c *Controller) edgeAt(x, y float64) *graph.Edge {
	for _, e := range c.graph.Edges {
		mx := (e.From.X + e.To.X) / 2
		my := (e.From.Y + e.To.Y) / 2
		dx, dy := x-mx, y-my
		if dx*dx+dy*dy <= edgeHitRadius*edgeHitRadius {
			return e
		}
	}
	return nil
}
