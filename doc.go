// Package triad is an in-memory laboratory for structural balance: complete
// signed social networks that evolve, one edge flip at a time, until every
// triangle is stable.
//
// A triangle is stable when it holds zero or two enemy edges ("the friend of
// my friend is my friend", "the enemy of my enemy is my friend"). Every
// unstable edge is tracked incrementally, so a round costs O(N) instead of a
// full O(N³) recount.
//
// Packages:
//
//	randset/    - generic set with O(1) add, remove and uniform sampling
//	core/       - simple undirected graph with string vertex IDs
//	builder/    - Erdős–Rényi, regular, Barabási–Albert, Watts–Strogatz and fixed topologies
//	bfs/        - breadth-first search and connected components
//	signed/     - dense signed graph, triangle oracle and instability maintainer
//	balance/    - universe, round sampling, passive/forced policies, factions
//	experiment/ - parallel batches of universes and faction-size distributions
//	metrics/    - Prometheus recorder for rounds, flips and outcomes
//	opinion/    - stubbornness–charisma opinion diffusion and plurality voting
//	config/     - YAML and TRIAD_* environment configuration
//	logging/    - slog handlers and level parsing
//	cmd/triad   - command-line driver (run, batch, vote, version)
//
// Quick example:
//
//	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(10, 0.5))
//	u, _ := balance.New(g, balance.WithPolicy(balance.Passive{}), balance.WithSeed(2))
//	sum, _ := u.Run(context.Background())
//	f, _ := u.Factions()
//	fmt.Println(sum.Rounds, f.Split())
//
// At convergence the friend subgraph splits into at most two cliques that
// are mutually hostile.
package triad
