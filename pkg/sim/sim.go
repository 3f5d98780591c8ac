// Package sim advances the force-directed layout one tick at a time.
//
// Three forces act on every node each tick: inverse-square repulsion
// between all pairs, linear spring attraction along edges, and a weak
// pull toward the surface center. Velocities are damped and integrated
// with a single explicit Euler step per tick, so the layout is tied to
// the tick rate rather than wall time.
package sim

import (
	"math"

	"github.com/chazu/skein/pkg/graph"
)

// Config holds the force coefficients. The defaults reproduce the
// hand-tuned feel of the original layout.
type Config struct {
	Repulsion float64 // pairwise push, Repulsion / d²
	Spring    float64 // per-edge pull, d × Spring
	Centering float64 // pull toward the surface center, offset × Centering
	Damping   float64 // velocity decay per tick, < 1
}

// DefaultConfig returns the stock coefficients.
func DefaultConfig() Config {
	return Config{
		Repulsion: 500,
		Spring:    0.01,
		Centering: 0.001,
		Damping:   0.9,
	}
}

// minDistance floors the distance fed to the repulsion term. It guards
// the division at zero separation, so no non-finite value can ever
// reach a node position, and it caps the force two nearly coincident
// nodes exchange: an unfloored 500/d² at sub-pixel distance catapults
// both nodes into the boundary clamp. Node scale is the right floor,
// since two nodes closer than this already overlap visually.
const minDistance = 20

// Engine integrates node motion. A node held by the pointer is skipped
// entirely for the tick: its position belongs to the drag, and its
// velocity is zeroed so releasing it does not fling it.
type Engine struct {
	cfg  Config
	held string // id of the node under drag, "" when none
}

// New returns an engine with the given coefficients.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Hold marks the node with the given id as under drag.
func (e *Engine) Hold(id string) { e.held = id }

// Release clears the drag hold; forces resume on the next tick.
func (e *Engine) Release() { e.held = "" }

// Held reports the id of the held node, or "" when none.
func (e *Engine) Held() string { return e.held }

// Step advances every node by one tick: sum forces, fold them into
// velocity, damp, integrate, then clamp each node's full circle inside
// the surface.
func (e *Engine) Step(g *graph.Graph) {
	n := len(g.Nodes)
	if n == 0 {
		return
	}

	fx := make([]float64, n)
	fy := make([]float64, n)
	idx := make(map[*graph.Node]int, n)
	for i, node := range g.Nodes {
		idx[node] = i
	}

	// Repulsion over unordered pairs. O(n²), which caps practical
	// graph size at a few hundred nodes.
	for i := 0; i < n; i++ {
		a := g.Nodes[i]
		for j := i + 1; j < n; j++ {
			b := g.Nodes[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			d := math.Hypot(dx, dy)
			if d < minDistance {
				d = minDistance
			}
			f := e.cfg.Repulsion / (d * d)
			ux, uy := dx/d, dy/d
			fx[i] += f * ux
			fy[i] += f * uy
			fx[j] -= f * ux
			fy[j] -= f * uy
		}
	}

	// Spring attraction along edges. Magnitude d × Spring along the
	// segment reduces to Spring × delta, so there is no division and
	// no singularity here.
	for _, ed := range g.Edges {
		i, j := idx[ed.From], idx[ed.To]
		dx, dy := ed.To.X-ed.From.X, ed.To.Y-ed.From.Y
		fx[i] += e.cfg.Spring * dx
		fy[i] += e.cfg.Spring * dy
		fx[j] -= e.cfg.Spring * dx
		fy[j] -= e.cfg.Spring * dy
	}

	// Centering keeps the whole layout from drifting off the surface.
	cx, cy := g.Width/2, g.Height/2
	for i, node := range g.Nodes {
		fx[i] += (cx - node.X) * e.cfg.Centering
		fy[i] += (cy - node.Y) * e.cfg.Centering
	}

	for i, node := range g.Nodes {
		if node.ID == e.held {
			node.VX, node.VY = 0, 0
			continue
		}
		node.VX = (node.VX + fx[i]) * e.cfg.Damping
		node.VY = (node.VY + fy[i]) * e.cfg.Damping
		node.X += node.VX
		node.Y += node.VY
		node.X = clamp(node.X, node.Radius, g.Width-node.Radius)
		node.Y = clamp(node.Y, node.Radius, g.Height-node.Radius)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
