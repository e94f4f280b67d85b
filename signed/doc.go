// Package signed implements the complete signed graph at the heart of a
// structural-balance simulation, its stability oracle, and the incremental
// maintainer that keeps per-edge instability counters and the unstable-edge
// registry exact under label flips.
//
// Model
//
//   - N nodes, 0..N-1; every unordered pair {u,v} carries exactly one edge
//     labelled Friend or Enemy.
//   - A triangle is stable iff it has 0 or 2 Enemy edges.
//   - instability(u,v) = |{w : triangle (u,v,w) unstable}|, in [0, N-2].
//   - The unstable set holds exactly the edges with instability > 0.
//
// Storage
//
//	Edges live in one flattened lower-triangular slice: pair u<v maps to
//	index v*(v-1)/2 + u and each cell holds {label, instability}. Full
//	initialization scans every third node for every edge, O(N³); a flip
//	touches the 3·(N-2) counters of the triangles through the flipped edge,
//	O(N).
//
// Mutation
//
//	Labels change only through Maintainer.Flip, which classifies every
//	triangle through (u,v) with the pre-flip label, moves the three counters
//	of each by ±1, syncs the unstable set on 0↔1 transitions, and then
//	toggles the label. A counter leaving [0, N-2] is ErrInvariantViolation:
//	a logic defect, never a recoverable state.
//
// Concurrency
//
//	Graph and Maintainer are not safe for concurrent mutation. One goroutine
//	drives one universe; independent graphs share nothing.
package signed
