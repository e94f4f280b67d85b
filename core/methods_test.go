// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/triad/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence: adding again does not change count
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())
}

func (s *GraphSuite) TestAddEdgeRejectsLoopsAndDuplicates() {
	require := require.New(s.T())

	require.ErrorIs(s.g.AddEdge("A", "A"), core.ErrLoopNotAllowed)
	require.ErrorIs(s.g.AddEdge("", "B"), core.ErrEmptyVertexID)

	require.NoError(s.g.AddEdge("A", "B"))
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "undirected edge must be visible from both ends")

	require.ErrorIs(s.g.AddEdge("B", "A"), core.ErrMultiEdgeNotAllowed)
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B"))

	require.NoError(s.g.RemoveEdge("B", "A"))
	require.False(s.g.HasEdge("A", "B"))
	require.Equal(0, s.g.EdgeCount())
	require.True(s.g.HasVertex("A"), "endpoints survive edge removal")

	require.ErrorIs(s.g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestNeighborIDsAndDegree() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("B", "C"))
	require.NoError(s.g.AddEdge("B", "A"))
	require.NoError(s.g.AddVertex("Z"))

	nbs, err := s.g.NeighborIDs("B")
	require.NoError(err)
	require.Equal([]string{"A", "C"}, nbs, "neighbors must be sorted")

	d, err := s.g.Degree("Z")
	require.NoError(err)
	require.Zero(d)

	_, err = s.g.NeighborIDs("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestVerticesAndEdgesSorted() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("c", "a"))
	require.NoError(s.g.AddEdge("b", "a"))

	require.Equal([]string{"a", "b", "c"}, s.g.Vertices())
	require.Equal([]core.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}}, s.g.Edges())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B"))

	c := s.g.Clone()
	require.NoError(c.AddEdge("B", "C"))
	require.False(s.g.HasVertex("C"), "mutating the clone must not touch the source")
	require.Equal(1, s.g.EdgeCount())
	require.Equal(2, c.EdgeCount())

	s.g.Clear()
	require.Zero(s.g.VertexCount())
	require.True(c.HasEdge("A", "B"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestGraph_HasEdgeOnMissingVertices(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.HasEdge("x", "y"))
}
