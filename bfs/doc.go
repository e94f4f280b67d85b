// Package bfs provides breadth-first search and connected components over a
// core.Graph.
//
// BFS(g, start, opts...) explores vertices in non-decreasing distance from
// start and returns a Result with the visit Order, Depth per vertex and the
// Parent links of the BFS tree (PathTo rebuilds a shortest path).
//
// Components(g, opts...) runs BFS from every not-yet-reached vertex in
// ascending ID order and returns the resulting partition. The balance package
// applies it to the Friend subgraph of a converged universe: by the structure
// theorem the components are the factions (at most two, or one when everyone
// is a friend).
//
// Determinism
//
//	core.Graph returns neighbors in ascending ID order and BFS enqueues them in
//	that order, so the visit sequence is reproducible.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked before each dequeue.
//   - WithMaxDepth(d):        d > 0 limits depth, 0 disables, d < 0 is ErrOptionViolation.
//   - WithFilterNeighbor(fn): skip edge curr→neighbor when fn returns false.
//   - WithOnEnqueue/WithOnDequeue/WithOnVisit: hooks; an OnVisit error aborts.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
