// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - NeighborIDs() output is sorted lexicographically.

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound if id does not exist.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	nbrs, ok := g.adj[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("core: NeighborIDs(%s): %w", id, ErrVertexNotFound)
	}
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	g.mu.RUnlock()

	sort.Strings(ids)
	return ids, nil
}
