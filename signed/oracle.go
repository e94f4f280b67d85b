// SPDX-License-Identifier: MIT
// Package: triad/signed
//
// oracle.go - pure triad stability queries.

package signed

import "fmt"

// EnemyCount returns how many of (u,v), (v,w), (u,w) are Enemy, in {0,1,2,3}.
//
// Errors: ErrNodeOutOfRange, ErrInvalidTriangle.
// Complexity: O(1).
func (g *Graph) EnemyCount(u, v, w Node) (int, error) {
	if err := g.checkTriangle(u, v, w); err != nil {
		return 0, err
	}
	return g.enemyCount(u, v, w), nil
}

// IsStable reports whether triangle (u,v,w) has 0 or 2 Enemy edges.
//
// Errors: as EnemyCount.
func (g *Graph) IsStable(u, v, w Node) (bool, error) {
	if err := g.checkTriangle(u, v, w); err != nil {
		return false, err
	}
	return g.stable(u, v, w), nil
}

// Recount computes the instability of {u,v} from labels alone, ignoring the
// cached counter. The maintainer must always agree with it.
//
// Errors: ErrNodeOutOfRange, ErrInvalidEdge.
// Complexity: O(N).
func (g *Graph) Recount(u, v Node) (int, error) {
	if !g.valid(u) || !g.valid(v) {
		return 0, fmt.Errorf("signed: Recount(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if u == v {
		return 0, fmt.Errorf("signed: Recount(%d,%d): %w", u, v, ErrInvalidEdge)
	}
	return g.recount(u, v), nil
}

// UnstableTriangles counts unstable triads by brute force. O(N³).
func (g *Graph) UnstableTriangles() int {
	count := 0
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			for w := v + 1; w < g.n; w++ {
				if !g.stable(Node(u), Node(v), Node(w)) {
					count++
				}
			}
		}
	}

	return count
}

func (g *Graph) checkTriangle(u, v, w Node) error {
	if !g.valid(u) || !g.valid(v) || !g.valid(w) {
		return fmt.Errorf("signed: triangle (%d,%d,%d) with N=%d: %w", u, v, w, g.n, ErrNodeOutOfRange)
	}
	if u == v || v == w || u == w {
		return fmt.Errorf("signed: triangle (%d,%d,%d): %w", u, v, w, ErrInvalidTriangle)
	}
	return nil
}

func (g *Graph) enemyCount(u, v, w Node) int {
	return int(g.label(u, v)) + int(g.label(v, w)) + int(g.label(u, w))
}

// stable holds iff the enemy count is even (0 or 2).
func (g *Graph) stable(u, v, w Node) bool {
	return g.enemyCount(u, v, w)%2 == 0
}

func (g *Graph) recount(u, v Node) int {
	count := 0
	for w := 0; w < g.n; w++ {
		if Node(w) == u || Node(w) == v {
			continue
		}
		if !g.stable(u, v, Node(w)) {
			count++
		}
	}

	return count
}
