// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order,
// and the connected-component partition built on top of it.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/triad/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state. The visited set may be shared across
// several roots (Components).
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, ctx.Err() on cancellation, or a wrapped OnVisit error.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("bfs: BFS(%q): %w", startID, ErrStartVertexNotFound)
	}

	w := newWalker(g, o, g.VertexCount())
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Components partitions g into connected components. Each component lists its
// vertices in ascending ID order, and components are ordered by their first
// vertex. Context, hooks and FilterNeighbor apply as in BFS; a filter that
// rejects an edge splits the component along it.
//
// Errors: ErrGraphNil, ErrOptionViolation (also for MaxDepth > 0, which would
// cut components short), ErrNeighbors, ctx.Err(), or a wrapped OnVisit error.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if o.MaxDepth > 0 {
		return nil, fmt.Errorf("%w: Components does not accept MaxDepth (%d)", ErrOptionViolation, o.MaxDepth)
	}

	vertices := g.Vertices()
	w := newWalker(g, o, len(vertices))
	var out [][]string
	for _, root := range vertices {
		if w.visited[root] {
			continue
		}
		mark := len(w.res.Order)
		w.enqueue(root, 0, "")
		if err = w.loop(); err != nil {
			return nil, err
		}
		comp := append([]string(nil), w.res.Order[mark:]...)
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}

func newWalker(g *core.Graph, o Options, n int) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// enqueue marks id visited, records depth and parent, and appends to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop drains the queue, checking cancellation before each dequeue.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors pushes unvisited, admitted neighbors in ascending ID order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
