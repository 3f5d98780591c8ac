package graph

import "math"

const (
	// DefaultWidth and DefaultHeight are the logical surface dimensions.
	DefaultWidth  = 800
	DefaultHeight = 600

	// NodeRadius is the drawn and hit-tested radius of every node.
	NodeRadius = 30

	// seedFraction sets the initial placement circle at 30% of the
	// smaller surface dimension.
	seedFraction = 0.30
)

// nodePalette assigns node fill colors round-robin by cast order.
var nodePalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// Graph owns the node and edge arenas for one cast. Rebuilding a cast
// replaces the whole graph; layout is not carried across rebuilds.
type Graph struct {
	Nodes  []*Node
	Edges  []*Edge
	Width  float64
	Height float64

	byID map[string]*Node
}

// Build derives nodes and edges from the cast. Nodes are seeded evenly
// around a circle centered on the surface so no two start coincident,
// which would blow up the repulsion term on the first tick.
// Relationships whose endpoints do not resolve to a node are dropped;
// Validate reports them separately.
func Build(chars []Character, rels []Relationship, width, height float64) *Graph {
	g := &Graph{
		Width:  width,
		Height: height,
		byID:   make(map[string]*Node, len(chars)),
	}

	cx, cy := width/2, height/2
	seedR := seedFraction * math.Min(width, height)
	n := len(chars)
	for i, ch := range chars {
		angle := 2 * math.Pi * float64(i) / float64(n)
		node := &Node{
			ID:     ch.ID,
			Name:   ch.Name,
			X:      cx + seedR*math.Cos(angle),
			Y:      cy + seedR*math.Sin(angle),
			Radius: NodeRadius,
			Color:  parseHex(nodePalette[i%len(nodePalette)]),
		}
		g.Nodes = append(g.Nodes, node)
		g.byID[node.ID] = node
	}

	for _, rel := range rels {
		from, to := g.byID[rel.FromID], g.byID[rel.ToID]
		if from == nil || to == nil {
			continue
		}
		g.Edges = append(g.Edges, &Edge{
			From:  from,
			To:    to,
			Rel:   rel,
			Color: rel.Kind.Color(),
			Width: EdgeWidth(rel.Strength),
		})
	}
	return g
}

// EdgeWidth maps a strength in 1..10 to a stroke width: max(1, strength/2).
// Strength 1 and 2 both draw at 1, strength 10 at 5.
func EdgeWidth(strength int) float64 {
	w := float64(strength) / 2
	if w < 1 {
		return 1
	}
	return w
}

// NodeByID returns the node for the given character id, or nil.
func (g *Graph) NodeByID(id string) *Node {
	return g.byID[id]
}

// NodeAt returns the first node whose circle contains the world point
// (x, y), or nil. First match in cast order wins.
func (g *Graph) NodeAt(x, y float64) *Node {
	for _, n := range g.Nodes {
		dx, dy := x-n.X, y-n.Y
		if dx*dx+dy*dy <= n.Radius*n.Radius {
			return n
		}
	}
	return nil
}
