// Package balance runs the structural-balance dynamics on a signed graph.
//
// A Universe owns one signed.Graph and its signed.Maintainer. Each call to
// Step executes one round:
//
//  1. Draw an unstable edge uniformly, swap its endpoints with probability
//     1/2, and scan a random permutation of the nodes for the first third
//     node closing an unstable triangle (u,v,w).
//  2. Ask the Policy which edge to flip, if any.
//  3. Apply the flip through the maintainer.
//
// Two policies share the voting heuristic FlipProbability: u's friends vote on
// whether (u,v) is right, and the smoothed, pushed-away share of agreement is
// the probability of flipping (u,w) instead.
//
//   - Passive: flips (u,w) with that probability, otherwise does nothing.
//   - Forced: may first rotate a one-enemy triangle so that both examined
//     edges are friendly (probability EnemyPriority), then flips (u,w) or,
//     failing the draw, (u,v). Every non-terminal round flips an edge.
//
// The round loop ends with the Converged outcome when no unstable edge is
// left. By the structure theorem the Friend subgraph then splits into at most
// two cliques, reported by Factions.
//
// Errors from the maintainer's invariant checks are fatal and sticky: once
// Step has failed, every later Step returns the same error.
//
// A Universe is single-threaded. Independent universes share nothing and may
// run in parallel.
package balance
