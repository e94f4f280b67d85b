// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock on the source while snapshotting; the clone shares no maps.

package core

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adj:       make(map[string]map[string]struct{}, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for u, nbrs := range g.adj {
		cp := make(map[string]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		clone.adj[u] = cp
	}

	return clone
}

// Clear removes all vertices and edges.
// Complexity: O(1) (maps are replaced).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = make(map[string]map[string]struct{})
	g.edgeCount = 0
}
