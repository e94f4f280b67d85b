// SPDX-License-Identifier: MIT
// Package: triad/signed
//
// types.go - node, label, edge and triangle value types plus sentinel errors.

package signed

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when a nil input graph is supplied.
	ErrNilGraph = errors.New("signed: input graph is nil")

	// ErrInvalidSize is returned for a negative node count.
	ErrInvalidSize = errors.New("signed: node count must be non-negative")

	// ErrNodeOutOfRange is returned for a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("signed: node out of range")

	// ErrInvalidTriangle is returned when a triple is not pairwise distinct.
	ErrInvalidTriangle = errors.New("signed: triangle nodes must be distinct")

	// ErrInvalidEdge is returned when an edge has equal endpoints.
	ErrInvalidEdge = errors.New("signed: edge endpoints must be distinct")

	// ErrStableEdgeFlip is returned when flipping an edge with zero instability.
	ErrStableEdgeFlip = errors.New("signed: cannot flip a stable edge")

	// ErrInvariantViolation signals that cached instability drifted from its
	// definition. Fatal: the graph must be discarded.
	ErrInvariantViolation = errors.New("signed: instability invariant violated")
)

// Node is a dense node index in [0, N).
type Node int

// Label is the sign of an edge.
type Label uint8

const (
	// Friend marks a positive edge.
	Friend Label = iota
	// Enemy marks a negative edge.
	Enemy
)

// String implements fmt.Stringer.
func (l Label) String() string {
	switch l {
	case Friend:
		return "friend"
	case Enemy:
		return "enemy"
	default:
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
}

// Opposite returns the flipped label.
func (l Label) Opposite() Label {
	if l == Friend {
		return Enemy
	}
	return Friend
}

// Edge is an unordered node pair, normalized so that U < V.
type Edge struct {
	U, V Node
}

// NewEdge returns the normalized edge {u,v}.
func NewEdge(u, v Node) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// String renders the edge as "(u,v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// Triangle is an ordered view of a triad: U is the pivot, (U,V) the examined
// edge and W the third node.
type Triangle struct {
	U, V, W Node
}

// String renders the triangle as "(u,v,w)".
func (t Triangle) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t.U, t.V, t.W)
}
