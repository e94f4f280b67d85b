package signed

import (
	"iter"

	"github.com/katalvlaran/triad/core"
)

// NeighborsWithLabel yields, in ascending order, every node v ≠ u whose edge
// to u carries label l. The sequence is lazy and may be ranged over again; an
// out-of-range u yields nothing.
func (g *Graph) NeighborsWithLabel(u Node, l Label) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if !g.valid(u) {
			return
		}
		for v := Node(0); int(v) < g.n; v++ {
			if v == u || g.label(u, v) != l {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Edges yields every edge once, ordered by (U, V).
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for u := Node(0); int(u) < g.n; u++ {
			for v := u + 1; int(v) < g.n; v++ {
				if !yield(Edge{U: u, V: v}) {
					return
				}
			}
		}
	}
}

// Counts returns the number of Friend and Enemy edges.
func (g *Graph) Counts() (friends, enemies int) {
	for i := range g.cells {
		if g.cells[i].label == Friend {
			friends++
		} else {
			enemies++
		}
	}

	return friends, enemies
}

// FriendGraph returns the Friend-only subgraph over the original vertex IDs.
// Every node is present, isolated ones included. The result is a fresh graph.
func (g *Graph) FriendGraph() *core.Graph {
	out := core.NewGraph()
	for _, id := range g.ids {
		_ = out.AddVertex(id)
	}
	for e := range g.Edges() {
		if g.label(e.U, e.V) == Friend {
			_ = out.AddEdge(g.ids[e.U], g.ids[e.V])
		}
	}

	return out
}
