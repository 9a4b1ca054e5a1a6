package metrics_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/core"
	"github.com/katalvlaran/awpgen/metrics"
)

func digraph(t *testing.T, verts []string, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range verts {
		require.NoError(t, g.AddVertex(v))
	}
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestCompute_Chain(t *testing.T) {
	g := digraph(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})
	m, err := metrics.Compute(g)
	require.NoError(t, err)
	want := metrics.Metrics{Density: 2.0 / 6.0, Diameter: 2, AvgBranching: 1, CycleCount: 0, CycleCountExact: true}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Compute mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_Disconnected(t *testing.T) {
	g := digraph(t, []string{"A", "B", "C", "D"}, [2]string{"A", "B"}, [2]string{"C", "D"})
	m, err := metrics.Compute(g)
	require.NoError(t, err)
	assert.Zero(t, m.Diameter)
}

func TestCompute_BranchingExcludesSinks(t *testing.T) {
	// Hub with three spokes: only the hub has out-degree.
	g := digraph(t, nil, [2]string{"H", "A"}, [2]string{"H", "B"}, [2]string{"H", "C"})
	m, err := metrics.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.AvgBranching)
	assert.Equal(t, 2, m.Diameter)
}

func TestCompute_CompleteCycles(t *testing.T) {
	l, err := builder.BuildTopology(builder.Complete, []string{"A", "B", "C", "D"})
	require.NoError(t, err)
	m, err := metrics.Compute(l.Graph)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Density)
	assert.Equal(t, 1, m.Diameter)
	assert.Equal(t, 20, m.CycleCount)
	assert.True(t, m.CycleCountExact)

	bounded, err := metrics.Compute(l.Graph, metrics.WithExactNodeLimit(3), metrics.WithCycleCap(5))
	require.NoError(t, err)
	assert.Equal(t, 5, bounded.CycleCount)
	assert.False(t, bounded.CycleCountExact)
}

func TestCompute_RingHasOneCycle(t *testing.T) {
	l, err := builder.BuildTopology(builder.Ring, []string{"A", "B", "C", "D", "E"}, builder.WithSeed(9))
	require.NoError(t, err)
	m, err := metrics.Compute(l.Graph)
	require.NoError(t, err)
	assert.Equal(t, 1, m.CycleCount)
	assert.Equal(t, 2, m.Diameter)
	assert.Equal(t, 1.0, m.AvgBranching)
}

func TestCompute_NilGraph(t *testing.T) {
	_, err := metrics.Compute(nil)
	assert.Error(t, err)
}

func TestCompute_Canceled(t *testing.T) {
	g := digraph(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := metrics.Compute(g, metrics.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	d, err := metrics.Diameter(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}
