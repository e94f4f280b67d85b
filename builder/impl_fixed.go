// SPDX-License-Identifier: MIT
// Package: triad/builder
//
// impl_fixed.go - deterministic topologies: Complete, Cycle,
// CompleteBipartite and Cliques.
//
// Contract:
//   - Vertices are added via cfg.idFn over contiguous indices, starting at 0.
//   - Pairs are emitted in lexicographic index order.
//   - cfg.rng is ignored.
//
// In the signed view a Complete input is all-Friend (balanced, one faction),
// CompleteBipartite and Cliques(a,b) are balanced two-faction fixtures, and a
// Cycle of length ≥ 4 leaves many unstable triangles.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triad/core"
)

// Complete returns a Constructor that builds K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPartition {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinPartition, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, MethodComplete, 0, n)
		if err != nil {
			return err
		}

		return completeOn(g, MethodComplete, ids)
	}
}

// Cycle returns a Constructor that builds the ring C_n: i-(i+1) mod n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, MethodCycle, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}. The left side
// takes indices 0..n1-1 and the right side n1..n1+n2-1.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: sides must be ≥ %d, got n1=%d n2=%d: %w",
				MethodCompleteBipartite, MinPartition, n1, n2, ErrTooFewVertices)
		}
		left, err := addVertices(g, cfg, MethodCompleteBipartite, 0, n1)
		if err != nil {
			return err
		}
		right, err := addVertices(g, cfg, MethodCompleteBipartite, n1, n2)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Cliques returns a Constructor that builds a disjoint union of complete
// graphs with the given sizes, numbered consecutively. Cliques(3, 2) yields
// {0,1,2} and {3,4}.
// Complexity: O(Σ size²).
func Cliques(sizes ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return fmt.Errorf("%s: no sizes given: %w", MethodCliques, ErrTooFewVertices)
		}
		for i, s := range sizes {
			if s < MinPartition {
				return fmt.Errorf("%s: sizes[%d]=%d < min=%d: %w",
					MethodCliques, i, s, MinPartition, ErrTooFewVertices)
			}
		}
		offset := 0
		for _, s := range sizes {
			ids, err := addVertices(g, cfg, MethodCliques, offset, s)
			if err != nil {
				return err
			}
			if err = completeOn(g, MethodCliques, ids); err != nil {
				return err
			}
			offset += s
		}

		return nil
	}
}

// completeOn connects every pair of ids.
func completeOn(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
