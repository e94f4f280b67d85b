// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From < To.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Lock, ensure both endpoints, reject an existing u-v edge.
//  3. Link both adjacency directions.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("core: AddEdge(%s,%s): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)
	if _, dup := g.adj[u][v]; dup {
		return fmt.Errorf("core: AddEdge(%s,%s): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge u-v.
//
// Errors:
//   - ErrEdgeNotFound if the edge does not exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[u][v]; !ok {
		return fmt.Errorf("core: RemoveEdge(%s,%s): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Missing vertices simply yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]
	return ok
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, From < To, sorted by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
