package signed_test

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triad/builder"
	"github.com/katalvlaran/triad/core"
	"github.com/katalvlaran/triad/signed"
)

// twoPairs is the four-node input with edges {0,1} and {2,3} only.
func twoPairs(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("2", "3"))
	return g
}

// randomLabels returns a labelling function with P(Friend) = p.
func randomLabels(seed int64, p float64) func(u, v signed.Node) signed.Label {
	rng := rand.New(rand.NewSource(seed))
	return func(_, _ signed.Node) signed.Label {
		if rng.Float64() < p {
			return signed.Friend
		}
		return signed.Enemy
	}
}

// TestFromGraph_TwoPairsIsBalanced checks the four-node example label by label.
func TestFromGraph_TwoPairsIsBalanced(t *testing.T) {
	sg, err := signed.FromGraph(twoPairs(t))
	require.NoError(t, err)
	require.Equal(t, 4, sg.N())
	assert.Equal(t, 6, sg.EdgeCount())

	friends := map[signed.Edge]bool{{U: 0, V: 1}: true, {U: 2, V: 3}: true}
	for e := range sg.Edges() {
		l, ok := sg.Label(e.U, e.V)
		require.True(t, ok)
		if friends[e] {
			assert.Equal(t, signed.Friend, l, "edge %v", e)
		} else {
			assert.Equal(t, signed.Enemy, l, "edge %v", e)
		}
		inst, ok := sg.Instability(e.U, e.V)
		require.True(t, ok)
		assert.Zero(t, inst, "edge %v", e)
	}
	for _, tri := range [][3]signed.Node{{0, 1, 2}, {0, 2, 3}, {1, 2, 3}, {0, 1, 3}} {
		c, err := sg.EnemyCount(tri[0], tri[1], tri[2])
		require.NoError(t, err)
		assert.Equal(t, 2, c, "triangle %v", tri)
	}
	assert.Zero(t, sg.UnstableTriangles())

	f, e := sg.Counts()
	assert.Equal(t, 2, f)
	assert.Equal(t, 4, e)
}

// TestFromGraph_NodeOrder checks numeric ordering of decimal IDs and
// lexicographic ordering otherwise.
func TestFromGraph_NodeOrder(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(12))
	require.NoError(t, err)
	sg, err := signed.FromGraph(g)
	require.NoError(t, err)
	for i := 0; i < 12; i++ {
		assert.Equal(t, strconv.Itoa(i), sg.ID(signed.Node(i)))
	}
	l, ok := sg.Label(11, 0)
	require.True(t, ok)
	assert.Equal(t, signed.Friend, l, "ring closes 11-0")

	named := core.NewGraph()
	require.NoError(t, named.AddEdge("bob", "ann"))
	require.NoError(t, named.AddVertex("007"))
	sg, err = signed.FromGraph(named)
	require.NoError(t, err)
	assert.Equal(t, []string{"007", "ann", "bob"}, []string{sg.ID(0), sg.ID(1), sg.ID(2)})
	assert.Equal(t, "", sg.ID(3))
}

// TestFromGraph_NoAliasing checks that mutating the input afterwards has no effect.
func TestFromGraph_NoAliasing(t *testing.T) {
	g := twoPairs(t)
	sg, err := signed.FromGraph(g)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("0", "2"))
	l, _ := sg.Label(0, 2)
	assert.Equal(t, signed.Enemy, l)
}

// TestConstructorErrors covers invalid inputs.
func TestConstructorErrors(t *testing.T) {
	_, err := signed.FromGraph(nil)
	assert.ErrorIs(t, err, signed.ErrNilGraph)

	_, err = signed.FromFunc(-1, randomLabels(1, 0.5))
	assert.ErrorIs(t, err, signed.ErrInvalidSize)

	sg, err := signed.FromFunc(0, randomLabels(1, 0.5))
	require.NoError(t, err)
	assert.Zero(t, sg.EdgeCount())
}

// TestLabel_InvalidPairs checks the comma-ok accessors.
func TestLabel_InvalidPairs(t *testing.T) {
	sg, err := signed.FromFunc(3, randomLabels(2, 0.5))
	require.NoError(t, err)
	for _, p := range [][2]signed.Node{{1, 1}, {-1, 0}, {0, 3}} {
		_, ok := sg.Label(p[0], p[1])
		assert.False(t, ok, "pair %v", p)
		_, ok = sg.Instability(p[0], p[1])
		assert.False(t, ok, "pair %v", p)
	}
	a, _ := sg.Label(0, 2)
	b, _ := sg.Label(2, 0)
	assert.Equal(t, a, b, "labels are symmetric")
}

// TestInitialInstability_MatchesRecount checks the cubic initialization.
func TestInitialInstability_MatchesRecount(t *testing.T) {
	sg, err := signed.FromFunc(12, randomLabels(3, 0.4))
	require.NoError(t, err)
	for e := range sg.Edges() {
		got, _ := sg.Instability(e.U, e.V)
		want, err := sg.Recount(e.U, e.V)
		require.NoError(t, err)
		assert.Equal(t, want, got, "edge %v", e)
		assert.LessOrEqual(t, got, sg.N()-2)
	}
}

// TestNeighborsWithLabel checks order, restartability and early exit.
func TestNeighborsWithLabel(t *testing.T) {
	sg, err := signed.FromGraph(twoPairs(t))
	require.NoError(t, err)

	assert.Equal(t, []signed.Node{1}, slices.Collect(sg.NeighborsWithLabel(0, signed.Friend)))
	seq := sg.NeighborsWithLabel(0, signed.Enemy)
	assert.Equal(t, []signed.Node{2, 3}, slices.Collect(seq))
	assert.Equal(t, []signed.Node{2, 3}, slices.Collect(seq), "sequence must be restartable")

	var first []signed.Node
	for v := range seq {
		first = append(first, v)
		break
	}
	assert.Equal(t, []signed.Node{2}, first)
	assert.Empty(t, slices.Collect(sg.NeighborsWithLabel(9, signed.Friend)))
}

// TestFriendGraph_RoundTrip checks that the Friend subgraph is the input graph.
func TestFriendGraph_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(15, 0.4))
	require.NoError(t, err)
	sg, err := signed.FromGraph(g)
	require.NoError(t, err)

	fg := sg.FriendGraph()
	assert.Equal(t, g.Vertices(), fg.Vertices())
	assert.Equal(t, g.Edges(), fg.Edges())
}

// TestLabel_String covers the Stringer.
func TestLabel_String(t *testing.T) {
	assert.Equal(t, "friend", signed.Friend.String())
	assert.Equal(t, "enemy", signed.Enemy.String())
	assert.Equal(t, "Label(7)", signed.Label(7).String())
	assert.Equal(t, signed.Enemy, signed.Friend.Opposite())
	assert.Equal(t, signed.NewEdge(1, 4), signed.NewEdge(4, 1))
	assert.Equal(t, "(1,4)", signed.NewEdge(4, 1).String())
}
