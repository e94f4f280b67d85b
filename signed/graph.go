// SPDX-License-Identifier: MIT
// Package: triad/signed
//
// graph.go - dense complete signed graph and its pure constructors.
//
// Contract:
//   - FromGraph/FromFunc never alias their input; the result owns its storage.
//   - Instability is fully computed before the constructor returns.
//   - Labels are mutated only through Maintainer (setLabel is unexported).

package signed

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/triad/core"
)

// cell is the per-edge state.
type cell struct {
	label       Label
	instability int32
}

// Graph is a complete signed graph over N nodes.
type Graph struct {
	n     int
	ids   []string
	cells []cell
}

// FromGraph builds the signed view of an unsigned acquaintance graph: an
// edge present in g becomes Friend, an absent pair becomes Enemy.
//
// Node order: when every vertex ID is a canonical non-negative decimal
// ("0", "17", not "017") nodes follow numeric order, so builder output maps
// index i to node i; otherwise they follow g.Vertices() (lexicographic).
//
// Complexity: O(N² + E) to label, O(N³) to count instability.
func FromGraph(g *core.Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := orderIDs(g.Vertices())
	pos := make(map[string]Node, len(ids))
	for i, id := range ids {
		pos[id] = Node(i)
	}

	sg := newGraph(ids)
	for i := range sg.cells {
		sg.cells[i].label = Enemy
	}
	for _, e := range g.Edges() {
		sg.cells[index(pos[e.From], pos[e.To])].label = Friend
	}
	sg.initInstability()

	return sg, nil
}

// FromFunc builds a signed graph over n nodes with label(u, v) for every
// pair u < v. IDs are the decimal node indices.
//
// Complexity: O(N²) label calls, O(N³) to count instability.
func FromFunc(n int, label func(u, v Node) Label) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("signed: FromFunc(%d): %w", n, ErrInvalidSize)
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}

	sg := newGraph(ids)
	for v := 1; v < n; v++ {
		for u := 0; u < v; u++ {
			sg.cells[index(Node(u), Node(v))].label = label(Node(u), Node(v))
		}
	}
	sg.initInstability()

	return sg, nil
}

func newGraph(ids []string) *Graph {
	n := len(ids)
	return &Graph{
		n:     n,
		ids:   ids,
		cells: make([]cell, n*(n-1)/2),
	}
}

// orderIDs returns ids in numeric order when all are canonical decimals,
// else unchanged (callers pass sorted input).
func orderIDs(ids []string) []string {
	nums := make(map[string]int, len(ids))
	for _, id := range ids {
		x, err := strconv.Atoi(id)
		if err != nil || x < 0 || strconv.Itoa(x) != id {
			return ids
		}
		nums[id] = x
	}
	out := append([]string(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return nums[out[i]] < nums[out[j]] })

	return out
}

// index maps an unordered pair to its cell. Requires u != v.
func index(u, v Node) int {
	if u > v {
		u, v = v, u
	}
	return int(v)*(int(v)-1)/2 + int(u)
}

// initInstability computes every counter from scratch and is the baseline
// Recount agrees with.
func (g *Graph) initInstability() {
	for v := 1; v < g.n; v++ {
		for u := 0; u < v; u++ {
			g.cells[index(Node(u), Node(v))].instability = int32(g.recount(Node(u), Node(v)))
		}
	}
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// ID returns the input vertex ID node n was built from, or "" when n is out
// of range.
func (g *Graph) ID(n Node) string {
	if !g.valid(n) {
		return ""
	}
	return g.ids[n]
}

// EdgeCount returns N·(N-1)/2.
func (g *Graph) EdgeCount() int { return len(g.cells) }

// Label returns the label of {u,v}; ok is false when u == v or either node
// is out of range.
func (g *Graph) Label(u, v Node) (l Label, ok bool) {
	if !g.validPair(u, v) {
		return 0, false
	}
	return g.cells[index(u, v)].label, true
}

// Instability returns the cached instability of {u,v}; ok as in Label.
func (g *Graph) Instability(u, v Node) (count int, ok bool) {
	if !g.validPair(u, v) {
		return 0, false
	}
	return int(g.cells[index(u, v)].instability), true
}

// setLabel is the low-level mutator reserved for Maintainer.
func (g *Graph) setLabel(u, v Node, l Label) {
	g.cells[index(u, v)].label = l
}

func (g *Graph) label(u, v Node) Label {
	return g.cells[index(u, v)].label
}

func (g *Graph) valid(n Node) bool {
	return n >= 0 && int(n) < g.n
}

func (g *Graph) validPair(u, v Node) bool {
	return u != v && g.valid(u) && g.valid(v)
}
