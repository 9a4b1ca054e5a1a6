// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/awpgen/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Directed, weighted: the shape the answer engine builds.
	s.g = core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(s.g.AddVertex("A"))
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())
	require.True(s.g.HasVertex("A"))
	require.False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestVerticesInsertionOrder() {
	for _, id := range []string{"Zed", "Amy", "Mo"} {
		s.Require().NoError(s.g.AddVertex(id))
	}
	s.Equal([]string{"Zed", "Amy", "Mo"}, s.g.Vertices())
}

func (s *GraphSuite) TestAddEdgeCreatesEndpointsAndIDs() {
	require := require.New(s.T())
	e1, err := s.g.AddEdge("A", "B", 3)
	require.NoError(err)
	e2, err := s.g.AddEdge("B", "C", 2)
	require.NoError(err)
	require.Equal("e1", e1)
	require.Equal("e2", e2)
	require.Equal([]string{"A", "B", "C"}, s.g.Vertices())
	require.True(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"), "directed edge must not mirror")

	edges := s.g.Edges()
	require.Len(edges, 2)
	require.Equal(e1, edges[0].ID)
	require.Equal(int64(3), edges[0].Weight)
	require.True(edges[0].Directed)
}

func (s *GraphSuite) TestConstraintSentinels() {
	require := require.New(s.T())
	_, err := s.g.AddEdge("", "B", 1)
	require.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.AddEdge("A", "A", 1)
	require.ErrorIs(err, core.ErrLoopNotAllowed)
	_, err = s.g.AddEdge("A", "B", 1)
	require.NoError(err)
	_, err = s.g.AddEdge("A", "B", 1)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)
	_, err = s.g.AddEdge("B", "A", 1)
	require.NoError(err, "the reverse direction is a different edge")
	require.Equal(2, s.g.EdgeCount())

	plain := core.NewGraph()
	_, err = plain.AddEdge("A", "B", 7)
	require.ErrorIs(err, core.ErrBadWeight)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	eid, err := s.g.AddEdge("A", "B", 1)
	require.NoError(err)
	require.NoError(s.g.RemoveEdge(eid))
	require.False(s.g.HasEdge("A", "B"))
	require.Zero(s.g.EdgeCount())
	require.ErrorIs(s.g.RemoveEdge(eid), core.ErrEdgeNotFound)

	in, out, err := s.g.Degree("A")
	require.NoError(err)
	require.Zero(in)
	require.Zero(out)
}

func (s *GraphSuite) TestNeighborsAndPredecessors() {
	require := require.New(s.T())
	for _, p := range [][2]string{{"A", "C"}, {"A", "B"}, {"B", "C"}} {
		_, err := s.g.AddEdge(p[0], p[1], 1)
		require.NoError(err)
	}
	ids, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"C", "B"}, ids)

	preds, err := s.g.Predecessors("C")
	require.NoError(err)
	require.Equal([]string{"A", "B"}, preds)

	_, err = s.g.Neighbors("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)

	in, out, err := s.g.Degree("C")
	require.NoError(err)
	require.Equal(2, in)
	require.Zero(out)
}

func (s *GraphSuite) TestUndirectedMirror() {
	require := require.New(s.T())
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(err)
	require.True(g.HasEdge("B", "A"))
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)

	ids, err := g.NeighborIDs("B")
	require.NoError(err)
	require.Equal([]string{"A"}, ids)
}

func (s *GraphSuite) TestFlags() {
	s.True(s.g.Directed())
	s.True(s.g.Weighted())
	plain := core.NewGraph()
	s.False(plain.Directed())
	s.False(plain.Weighted())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
