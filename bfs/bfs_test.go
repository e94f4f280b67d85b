package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/bfs"
	"github.com/katalvlaran/triad/core"
)

// chain builds v0-v1-…-v(n-1).
func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("v0"))
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1)))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

// TestBFS_CycleDepths checks depths and PathTo on a 4-cycle.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_MaxDepth stops exploration beyond the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 6)
	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)
}

// TestBFS_Filter skips rejected edges.
func TestBFS_Filter(t *testing.T) {
	g := chain(t, 4)
	res, err := bfs.BFS(g, "v0", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "v1" && nbr == "v2")
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, res.Order)
}

// TestBFS_Hooks checks hook ordering and OnVisit abort.
func TestBFS_Hooks(t *testing.T) {
	g := chain(t, 3)
	var enq, deq []string
	res, err := bfs.BFS(g, "v0",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, _ int) { deq = append(deq, id) }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Order, enq)
	assert.Equal(t, res.Order, deq)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "v0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "v1" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancelled returns ctx.Err() before visiting anything.
func TestBFS_Cancelled(t *testing.T) {
	g := chain(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestComponents_Partition checks ordering and membership.
func TestComponents_Partition(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("c", "a"))
	require.NoError(t, g.AddEdge("d", "e"))
	require.NoError(t, g.AddVertex("b"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "c"}, {"b"}, {"d", "e"}}, comps)
}

// TestComponents_Edges covers empty graphs, filters and rejected options.
func TestComponents_Edges(t *testing.T) {
	_, err := bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	comps, err := bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	g := chain(t, 4)
	_, err = bfs.Components(g, bfs.WithMaxDepth(1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	cut := func(curr, nbr string) bool {
		return !(curr == "v1" && nbr == "v2") && !(curr == "v2" && nbr == "v1")
	}
	comps, err = bfs.Components(g, bfs.WithFilterNeighbor(cut))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"v0", "v1"}, {"v2", "v3"}}, comps)
}
