// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
// Edges returned by Graph.Edges always satisfy From < To (lexicographic).
type Edge struct {
	From string
	To   string
}

// Graph is a simple undirected, unweighted graph.
//
// mu guards both the vertex catalog (the keys of adj) and the adjacency sets.
type Graph struct {
	mu sync.RWMutex

	// adj[u][v] exists iff edge u-v exists; every vertex has a (possibly
	// empty) entry so isolated vertices are representable.
	adj map[string]map[string]struct{}

	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// normalize orders an endpoint pair so that a < b.
func normalize(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
