package scenario_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/core"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

// apples is the three-agent reference story: A gives B 3, then B gives C 2.
func apples() *scenario.Scenario {
	return &scenario.Scenario{
		ID:          "apples",
		ObjectTypes: []string{"apples"},
		Agents: []scenario.Agent{
			{Name: "A", Initial: scenario.Inventory{"apples": 10}, Final: scenario.Inventory{"apples": 7}},
			{Name: "B", Initial: scenario.Inventory{"apples": 5}, Final: scenario.Inventory{"apples": 6}},
			{Name: "C", Initial: scenario.Inventory{"apples": 3}, Final: scenario.Inventory{"apples": 5}},
		},
		Transfers: []scenario.Transfer{
			{From: "A", To: "B", Object: "apples", Quantity: 3, Step: 0},
			{From: "B", To: "C", Object: "apples", Quantity: 2, Step: 1},
		},
	}
}

func TestReferenceScenario(t *testing.T) {
	s := apples()
	require.NoError(t, scenario.Validate(s))

	final, err := scenario.Replay(s, len(s.Transfers)-1)
	require.NoError(t, err)
	want := map[string]scenario.Inventory{"A": {"apples": 7}, "B": {"apples": 6}, "C": {"apples": 5}}
	if diff := cmp.Diff(want, final); diff != "" {
		t.Errorf("final mismatch (-want +got):\n%s", diff)
	}

	mid, err := scenario.Replay(s, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, mid["B"]["apples"])

	start, err := scenario.Replay(s, -1)
	require.NoError(t, err)
	assert.Equal(t, 10, start["A"]["apples"])

	_, err = scenario.Replay(s, 2)
	assert.ErrorIs(t, err, scenario.ErrStepOutOfRange)
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *scenario.Scenario)
	}{
		{"negative holding", func(s *scenario.Scenario) { s.Agents[2].Initial["apples"] = -1 }},
		{"negative prefix", func(s *scenario.Scenario) { s.Transfers[1].Quantity = 9 }},
		{"step gap", func(s *scenario.Scenario) { s.Transfers[1].Step = 2 }},
		{"self transfer", func(s *scenario.Scenario) { s.Transfers[0].To = "A" }},
		{"unknown object", func(s *scenario.Scenario) { s.Transfers[0].Object = "pears" }},
		{"final drift", func(s *scenario.Scenario) {
			s.Agents[0].Final["apples"] = 8
			s.Agents[1].Final["apples"] = 5
		}},
		{"key mismatch", func(s *scenario.Scenario) { s.Agents[0].Final["pears"] = 0 }},
		{"duplicate agent", func(s *scenario.Scenario) { s.Agents[1].Name = "A" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := apples()
			tc.mutate(s)
			assert.ErrorIs(t, scenario.Validate(s), scenario.ErrInvalidScenario)
		})
	}
}

func TestSimulate_Invariants(t *testing.T) {
	names := []string{"Alex", "Sam", "Taylor", "Jordan", "Casey"}
	objects := []string{"apples", "pens", "cards"}
	for _, topo := range builder.Topologies() {
		for seed := int64(1); seed <= 15; seed++ {
			src := rng.New(seed)
			l, err := builder.BuildTopology(topo, names, builder.WithSource(src))
			require.NoError(t, err)
			initial := scenario.SampleInventories(src, names, objects, scenario.InventoryParams{
				ObjectPresence: 0.8, SmallQuantity: 0.5, BufferMin: 0, BufferMax: 5, MaxBase: 10, MaxQuantity: 20,
			})
			out, err := scenario.Simulate(src, l.Graph, objects, initial, scenario.Quantities{Min: 1, Max: 6})
			if err != nil {
				assert.ErrorIs(t, err, scenario.ErrSimulation)
				continue
			}
			s := &scenario.Scenario{
				ID:          topo.String(),
				Agents:      scenario.BuildAgents(names, initial, out.Final),
				Transfers:   out.Transfers,
				ObjectTypes: objects,
			}
			require.NoError(t, scenario.Validate(s), "%s seed=%d", topo, seed)
			assert.Equal(t, l.Graph.EdgeCount(), len(out.Transfers)+len(out.Skipped))
			for _, tr := range out.Transfers {
				assert.LessOrEqual(t, tr.Quantity, 6)
				assert.True(t, l.Graph.HasEdge(tr.From, tr.To))
			}
		}
	}
}

func TestSimulate_TopologicalOrder(t *testing.T) {
	// Edges are created downstream-first; processing must still go upstream-first.
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("B", "C", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	initial := map[string]scenario.Inventory{"A": {"x": 5}, "B": {"x": 5}, "C": {"x": 0}}
	out, err := scenario.Simulate(rng.New(1), g, []string{"x"}, initial, scenario.Quantities{Min: 1, Max: 3})
	require.NoError(t, err)
	require.Len(t, out.Transfers, 2)
	assert.Equal(t, "A", out.Transfers[0].From)
	assert.Equal(t, "B", out.Transfers[1].From)
	assert.Equal(t, 5, initial["A"]["x"], "initial not mutated")
}

func TestSimulate_SkipsEmptySenders(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 0)
	require.NoError(t, err)

	initial := map[string]scenario.Inventory{
		"A": {"x": 0, "y": 4},
		"B": {"x": 0, "y": 0},
		"C": {"x": 0, "y": 0},
	}
	out, err := scenario.Simulate(rng.New(3), g, []string{"x", "y"}, initial, scenario.Quantities{Min: 1, Max: 10})
	require.NoError(t, err)
	require.Len(t, out.Transfers, 1)
	assert.Equal(t, "y", out.Transfers[0].Object, "resolution rule picks the only qualifying object")
	assert.Equal(t, []scenario.SkippedEdge{{From: "C", To: "B", Reason: scenario.SkipNoQualifyingObject}}, out.Skipped)

	empty := map[string]scenario.Inventory{"A": {"x": 0}, "B": {"x": 0}, "C": {"x": 0}}
	_, err = scenario.Simulate(rng.New(3), g, []string{"x"}, empty, scenario.Quantities{Min: 1, Max: 10})
	assert.ErrorIs(t, err, scenario.ErrSimulation)
}

func TestSampleNames_ExtendsPool(t *testing.T) {
	got := scenario.SampleNames(rng.New(1), []string{"A", "B"}, 4)
	assert.Len(t, got, 4)
	assert.Subset(t, []string{"A", "B", "Agent1", "Agent2"}, got)
}

func TestCatalog(t *testing.T) {
	got := scenario.Catalog([]string{"food"}, []string{"apples", "kites"})
	assert.Equal(t, "apples", got[0])
	assert.Equal(t, "kites", got[len(got)-1])
	assert.Len(t, got, 7)
	assert.Contains(t, scenario.Categories(), "crafts")
}

func TestNewID_Deterministic(t *testing.T) {
	a := scenario.NewID(42, 7)
	assert.Equal(t, a, scenario.NewID(42, 7))
	assert.NotEqual(t, a, scenario.NewID(42, 8))
	assert.NotEqual(t, a, scenario.NewID(43, 7))
	assert.Len(t, a, 36)
}
