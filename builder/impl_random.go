// SPDX-License-Identifier: MIT
// Package: triad/builder
//
// impl_random.go - stochastic topologies: RandomSparse, RandomRegular,
// BarabasiAlbert and WattsStrogatz.
//
// Contract:
//   - Parameters are validated before any mutation (zero side-effects on error).
//   - cfg.rng must be non-nil whenever a random draw is needed
//     (else ErrNeedRandSource).
//   - Vertices are added via cfg.idFn in ascending index order (0..n-1).
//   - Trial order is fixed, so a fixed seed reproduces the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/triad/core"
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles. A uniform pairing
// is simple with probability ≈ exp(-(d²-1)/4), so small d needs only a few.
const maxStubMatchingAttempts = 256

// RandomSparse returns a Constructor that samples an Erdős–Rényi G(n,p) graph:
// every unordered pair {i,j}, i<j, becomes an edge independently with
// probability p. This is the initial acquaintance model of a balance run:
// edge ⇒ Friend, non-edge ⇒ Enemy.
//
// p ∈ {0,1} is deterministic and needs no RNG.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPartition {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinPartition, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, MethodRandomSparse, 0, n)
		if err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < MaxProbability && cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomRegular returns a Constructor that builds a simple d-regular graph by
// stub matching: each vertex contributes d stubs, the stubs are shuffled and
// paired consecutively, and the pairing is rejected if it contains a loop or a
// repeated pair. Rejected pairings are reshuffled up to
// maxStubMatchingAttempts times, then ErrConstructFailed.
//
// Domain: n ≥ 1, 0 ≤ d < n, n·d even.
// Complexity: O(n·d) per attempt.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPartition {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomRegular, n, MinPartition, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, MethodRandomRegular, 0, n)
		if err != nil {
			return err
		}
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < stubCount; i += 2 {
				if err = addEdge(g, MethodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}

// BarabasiAlbert returns a Constructor for the preferential-attachment model.
// It starts from the star on m+1 vertices (center 0), then attaches each new
// vertex to m distinct existing vertices drawn with probability proportional
// to their degree. The result has m·(n-m) edges.
//
// Domain: 1 ≤ m < n.
// Complexity: O(n·m) expected.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < 1 || m >= n {
			return fmt.Errorf("%s: need 1 ≤ m < n, got n=%d m=%d: %w",
				MethodBarabasiAlbert, n, m, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodBarabasiAlbert, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, MethodBarabasiAlbert, 0, n)
		if err != nil {
			return err
		}

		// repeated holds every vertex index once per incident edge end.
		repeated := make([]int, 0, 2*m*(n-m))
		for leaf := 1; leaf <= m; leaf++ {
			if err = addEdge(g, MethodBarabasiAlbert, ids[0], ids[leaf]); err != nil {
				return err
			}
			repeated = append(repeated, 0, leaf)
		}

		targets := make([]int, 0, m)
		chosen := make(map[int]struct{}, m)
		for source := m + 1; source < n; source++ {
			targets = targets[:0]
			clear(chosen)
			for len(targets) < m {
				x := repeated[cfg.rng.Intn(len(repeated))]
				if _, dup := chosen[x]; dup {
					continue
				}
				chosen[x] = struct{}{}
				targets = append(targets, x)
			}
			for _, t := range targets {
				if err = addEdge(g, MethodBarabasiAlbert, ids[source], ids[t]); err != nil {
					return err
				}
				repeated = append(repeated, t, source)
			}
		}

		return nil
	}
}

// WattsStrogatz returns a Constructor for the small-world model: a ring where
// each vertex joins its k/2 nearest neighbours on each side, after which every
// ring edge (u, u+j) is rewired with probability beta to (u, w) for a uniform
// w that is neither u nor already adjacent. A vertex adjacent to every other
// vertex keeps its edge.
//
// Domain: 2 ≤ k < n, beta ∈ [0,1]. beta = 0 needs no RNG.
// Complexity: O(n·k) expected.
func WattsStrogatz(n, k int, beta float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 2 || k >= n {
			return fmt.Errorf("%s: need 2 ≤ k < n, got n=%d k=%d: %w",
				MethodWattsStrogatz, n, k, ErrTooFewVertices)
		}
		if beta < MinProbability || beta > MaxProbability {
			return fmt.Errorf("%s: beta=%.6f not in [%.1f,%.1f]: %w",
				MethodWattsStrogatz, beta, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && beta > MinProbability {
			return fmt.Errorf("%s: %w", MethodWattsStrogatz, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, MethodWattsStrogatz, 0, n)
		if err != nil {
			return err
		}
		half := k / 2
		for j := 1; j <= half; j++ {
			for u := 0; u < n; u++ {
				if err = addEdge(g, MethodWattsStrogatz, ids[u], ids[(u+j)%n]); err != nil {
					return err
				}
			}
		}
		if beta == MinProbability {
			return nil
		}

		for j := 1; j <= half; j++ {
			for u := 0; u < n; u++ {
				if cfg.rng.Float64() >= beta {
					continue
				}
				deg, _ := g.Degree(ids[u])
				if deg >= n-1 {
					continue
				}
				w := cfg.rng.Intn(n)
				for w == u || g.HasEdge(ids[u], ids[w]) {
					w = cfg.rng.Intn(n)
				}
				v := ids[(u+j)%n]
				if err = g.RemoveEdge(ids[u], v); err != nil {
					return fmt.Errorf("%s: RemoveEdge(%s-%s): %w", MethodWattsStrogatz, ids[u], v, err)
				}
				if err = addEdge(g, MethodWattsStrogatz, ids[u], ids[w]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
