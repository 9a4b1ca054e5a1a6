package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/awpgen/bfs"
	"github.com/katalvlaran/awpgen/core"
)

// chain builds the directed path A→B→C→D plus an isolated vertex E.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("E"))

	return g
}

func TestBFS_Directed(t *testing.T) {
	g := chain(t)
	res, err := bfs.BFS(g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, res.Order)
	assert.Equal(t, 2, res.Eccentricity())
	assert.NotContains(t, res.Depth, "A")
}

func TestBFS_Undirected(t *testing.T) {
	g := chain(t)
	res, err := bfs.BFS(g, "B", bfs.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 1, "B": 0, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, 2, res.Eccentricity())
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(chain(t), "Z")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(chain(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
