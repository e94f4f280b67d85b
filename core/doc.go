// Package core defines Graph, the simple undirected acquaintance graph that
// feeds the structural-balance engine.
//
// A Graph G = (V,E) holds string-identified vertices and unweighted,
// undirected edges. It is deliberately narrow:
//
//   - No self-loops (AddEdge(v,v) → ErrLoopNotAllowed).
//   - No parallel edges (a second AddEdge(u,v) → ErrMultiEdgeNotAllowed).
//   - No weights and no direction; an edge u-v is visible from both ends.
//
// Only edge presence is consumed downstream: signed.FromGraph turns every
// present pair into a Friend edge and every absent pair into an Enemy edge.
//
// Determinism:
//
//	Vertices(), NeighborIDs() and Edges() return sorted results, so generators
//	and traversals built on top of core are reproducible for a fixed seed.
//
// Concurrency:
//
//	All methods are safe for concurrent use. A single sync.RWMutex guards the
//	vertex catalog and adjacency together; queries take the read lock.
//
// Core Methods:
//
//	AddVertex(id string) error            // O(1), idempotent
//	HasVertex(id string) bool             // O(1)
//	AddEdge(u, v string) error            // O(1), auto-adds endpoints
//	RemoveEdge(u, v string) error         // O(1)
//	HasEdge(u, v string) bool             // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	Degree(id string) (int, error)        // O(1)
//	Vertices() []string                   // O(V·log V), sorted
//	Edges() []Edge                        // O(E·log E), sorted
//	VertexCount(), EdgeCount() int        // O(1)
//	Clone() *Graph                        // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
