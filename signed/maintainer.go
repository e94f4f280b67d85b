// SPDX-License-Identifier: MIT
// Package: triad/signed
//
// maintainer.go - incremental upkeep of instability counters and the
// unstable-edge registry under label flips.
//
// Contract:
//   - Between calls, instability(u,v) equals Recount(u,v) for every edge and
//     an edge is registered iff its instability is positive.
//   - Flip classifies each triangle with the pre-flip label and only then
//     toggles the label.
//   - Any counter leaving [0, N-2] returns ErrInvariantViolation; the graph is
//     then in an undefined state and must be discarded.

package signed

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/triad/randset"
)

// Maintainer owns the unstable-edge registry of one Graph and is the only
// writer of its labels.
type Maintainer struct {
	g        *Graph
	unstable *randset.Set[Edge]
}

// NewMaintainer registers every edge of g whose cached instability is
// positive. g must not be shared with another Maintainer.
// Complexity: O(N²).
func NewMaintainer(g *Graph) *Maintainer {
	m := &Maintainer{g: g, unstable: randset.New[Edge]()}
	for e := range g.Edges() {
		if g.cells[index(e.U, e.V)].instability > 0 {
			m.unstable.Add(e)
		}
	}

	return m
}

// Graph returns the maintained graph.
func (m *Maintainer) Graph() *Graph { return m.g }

// UnstableCount returns the number of edges with positive instability.
func (m *Maintainer) UnstableCount() int { return m.unstable.Len() }

// IsUnstable reports whether {u,v} is registered as unstable.
func (m *Maintainer) IsUnstable(u, v Node) bool {
	return m.unstable.Contains(NewEdge(u, v))
}

// Unstable yields the registered unstable edges in unspecified order. The
// registry must not be mutated while ranging.
func (m *Maintainer) Unstable() iter.Seq[Edge] {
	return m.unstable.All()
}

// ChooseUnstable draws an unstable edge uniformly at random.
// Errors: randset.ErrEmpty when the graph is balanced.
func (m *Maintainer) ChooseUnstable(rng *rand.Rand) (Edge, error) {
	return m.unstable.Choose(rng)
}

// Flip toggles the label of {u,v} and updates the 3·(N-2) counters of the
// triangles through it.
//
// Errors:
//   - ErrNodeOutOfRange, ErrInvalidEdge for a malformed pair.
//   - ErrStableEdgeFlip if instability(u,v) == 0.
//   - ErrInvariantViolation on counter overflow/underflow (fatal).
//
// Complexity: O(N).
func (m *Maintainer) Flip(u, v Node) error {
	g := m.g
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("signed: Flip(%d,%d): %w", u, v, ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("signed: Flip(%d,%d): %w", u, v, ErrInvalidEdge)
	}
	if g.cells[index(u, v)].instability == 0 {
		return fmt.Errorf("signed: Flip(%d,%d): %w", u, v, ErrStableEdgeFlip)
	}

	for w := Node(0); int(w) < g.n; w++ {
		if w == u || w == v {
			continue
		}
		step := m.increment
		if !g.stable(u, v, w) {
			step = m.decrement
		}
		for _, e := range [3]Edge{NewEdge(u, v), NewEdge(v, w), NewEdge(u, w)} {
			if err := step(e); err != nil {
				return fmt.Errorf("signed: Flip(%d,%d) via %d: %w", u, v, w, err)
			}
		}
	}
	g.setLabel(u, v, g.label(u, v).Opposite())

	return nil
}

// increment raises the counter of e; 0→1 registers e.
func (m *Maintainer) increment(e Edge) error {
	c := &m.g.cells[index(e.U, e.V)]
	if int(c.instability) >= m.g.n-2 {
		return fmt.Errorf("increment %v at %d: %w", e, c.instability, ErrInvariantViolation)
	}
	c.instability++
	if c.instability == 1 {
		m.unstable.Add(e)
	}

	return nil
}

// decrement lowers the counter of e; 1→0 unregisters e.
func (m *Maintainer) decrement(e Edge) error {
	c := &m.g.cells[index(e.U, e.V)]
	if c.instability <= 0 {
		return fmt.Errorf("decrement %v at 0: %w", e, ErrInvariantViolation)
	}
	c.instability--
	if c.instability == 0 {
		if err := m.unstable.Remove(e); err != nil {
			return fmt.Errorf("unregister %v: %v: %w", e, err, ErrInvariantViolation)
		}
	}

	return nil
}

// Verify recomputes every counter by brute force and checks registry
// membership. It returns the first discrepancy wrapped in
// ErrInvariantViolation. Complexity: O(N³).
func (m *Maintainer) Verify() error {
	g := m.g
	positive := 0
	for e := range g.Edges() {
		got := int(g.cells[index(e.U, e.V)].instability)
		want := g.recount(e.U, e.V)
		if got != want {
			return fmt.Errorf("signed: Verify: %v cached %d, recount %d: %w", e, got, want, ErrInvariantViolation)
		}
		if (got > 0) != m.unstable.Contains(e) {
			return fmt.Errorf("signed: Verify: %v instability %d, registered=%t: %w",
				e, got, m.unstable.Contains(e), ErrInvariantViolation)
		}
		if got > 0 {
			positive++
		}
	}
	if positive != m.unstable.Len() {
		return fmt.Errorf("signed: Verify: %d unstable edges, %d registered: %w",
			positive, m.unstable.Len(), ErrInvariantViolation)
	}

	return nil
}
