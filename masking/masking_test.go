package masking_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

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

// question computes the stored answer for a query.
func question(t *testing.T, s *scenario.Scenario, qt answer.QuestionType, tg answer.Target) masking.Question {
	t.Helper()
	a, err := answer.Compute(s, qt, tg)
	require.NoError(t, err)
	return masking.Question{Query: masking.Query{Type: qt, Target: tg}, Answer: a}
}

// generated runs the builder and simulator for one seed; nil when the
// simulation placed no transfer.
func generated(t *testing.T, seed int64, topo builder.Topology) *scenario.Scenario {
	t.Helper()
	src := rng.New(seed)
	names := scenario.SampleNames(src, scenario.DefaultAgentPool, 5)
	objects := scenario.SampleObjects(src, scenario.Catalog([]string{"food", "toys"}, nil), 3)
	l, err := builder.BuildTopology(topo, names, builder.WithSource(src))
	require.NoError(t, err)
	initial := scenario.SampleInventories(src, names, objects, scenario.InventoryParams{
		ObjectPresence: 0.8, SmallQuantity: 0.7, BufferMin: 5, BufferMax: 20, MaxBase: 30, MaxQuantity: 60,
	})
	out, err := scenario.Simulate(src, l.Graph, objects, initial, scenario.Quantities{Min: 1, Max: 20})
	if err != nil {
		return nil
	}
	s := &scenario.Scenario{
		ID:          fmt.Sprintf("%s-%d", topo, seed),
		Agents:      scenario.BuildAgents(names, initial, out.Final),
		Transfers:   out.Transfers,
		ObjectTypes: objects,
	}
	require.NoError(t, scenario.Validate(s))
	return s
}

func TestMaskInitialCount_Reference(t *testing.T) {
	s := apples()
	q := question(t, s, answer.InitialCount, answer.Target{Agent: "A", Object: "apples"})

	p, err := masking.NewEngine().Mask(rng.New(1), s, q, masking.MaskInitialCount)
	require.NoError(t, err)
	assert.Equal(t, masking.MaskInitialCount, p.Pattern)

	hidden := p.Hidden()
	require.Len(t, hidden, 1)
	assert.Equal(t, masking.Fact{Kind: masking.Holding, Status: masking.Hidden, Agent: "A", Object: "apples", Vague: "many"}, hidden[0])

	last := p.Facts[len(p.Facts)-1]
	assert.Equal(t, masking.Fact{Kind: masking.HoldingAfter, Agent: "A", Object: "apples", Quantity: 7, Step: 0}, last)

	rec, err := masking.Reconstruct(p)
	require.NoError(t, err)
	a, ok := rec.Agent("A")
	require.True(t, ok)
	assert.Equal(t, 10, a.Initial["apples"], "7 + 3")
	require.NoError(t, masking.Verify(p, q, answer.NewEngine()))
}

func TestReconstruct_PlainMatchesScenario(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := generated(t, seed, builder.Flow)
		if s == nil {
			continue
		}
		rec, err := masking.Reconstruct(masking.Plain(s, masking.Question{}))
		require.NoError(t, err)
		if diff := cmp.Diff(s.Agents, rec.Agents); diff != "" {
			t.Fatalf("seed %d agents (-want +got):\n%s", seed, diff)
		}
		if diff := cmp.Diff(s.Transfers, rec.Transfers); diff != "" {
			t.Fatalf("seed %d transfers (-want +got):\n%s", seed, diff)
		}
	}
}

func TestMask_EveryPatternIsSolvable(t *testing.T) {
	eng := masking.NewEngine()
	types := []answer.QuestionType{answer.InitialCount, answer.FinalCount, answer.SumAll, answer.RatioPercentage, answer.Difference}
	applied := map[masking.Pattern]int{}
	for _, topo := range builder.Topologies() {
		for seed := int64(1); seed <= 8; seed++ {
			s := generated(t, seed, topo)
			if s == nil {
				continue
			}
			for _, qt := range types {
				tg := answer.Target{Agent: s.Agents[0].Name, Object: s.ObjectTypes[0]}
				q := question(t, s, qt, tg)
				for _, p := range masking.Patterns() {
					pres, err := eng.Mask(rng.New(seed), s, q, p)
					if err != nil {
						require.ErrorIs(t, err, masking.ErrMaskingInfeasible, "%s %s %s", s.ID, qt, p)
						continue
					}
					applied[p]++
					require.NoError(t, masking.Verify(pres, q, answer.NewEngine()), "%s %s %s", s.ID, qt, p)
					if p != masking.Unmasked {
						assert.NotEmpty(t, pres.Hidden(), "%s %s", s.ID, p)
					}
				}
			}
		}
	}
	for _, p := range masking.Patterns() {
		assert.Positive(t, applied[p], "pattern %s never applied", p)
	}
}

func TestComparativeChain_Shape(t *testing.T) {
	s := apples()
	q := question(t, s, answer.FinalCount, answer.Target{Agent: "B", Object: "apples"})
	p, err := masking.NewEngine().Mask(rng.New(4), s, q, masking.ComparativeChain)
	require.NoError(t, err)

	var stated, comps int
	for _, f := range p.Facts {
		switch {
		case f.Kind == masking.Holding && f.Status == masking.Stated:
			stated++
		case f.Kind == masking.Comparison:
			comps++
		}
	}
	assert.Equal(t, 1, stated, "one anchor")
	assert.Equal(t, 2, comps)

	// Dropping a link leaves a hidden holding unresolved.
	cut := p
	cut.Facts = nil
	dropped := false
	for _, f := range p.Facts {
		if f.Kind == masking.Comparison && !dropped {
			dropped = true
			continue
		}
		cut.Facts = append(cut.Facts, f)
	}
	_, err = masking.Reconstruct(cut)
	assert.ErrorIs(t, err, masking.ErrUnsolvable)
}

func TestPercentageRatio_Reference(t *testing.T) {
	s := apples()
	q := question(t, s, answer.TotalReceived, answer.Target{Agent: "B", Object: "apples"})
	p, err := masking.NewEngine().Mask(rng.New(2), s, q, masking.PercentageRatio)
	require.NoError(t, err)

	var share *masking.Fact
	for i := range p.Facts {
		if p.Facts[i].Kind == masking.Share {
			share = &p.Facts[i]
		}
	}
	require.NotNil(t, share)
	switch share.Step {
	case 0:
		assert.Equal(t, 30, share.Percent, "3 of 10")
	case 1:
		assert.Equal(t, 25, share.Percent, "2 of 8")
	default:
		t.Fatalf("unexpected step %d", share.Step)
	}
	require.NoError(t, masking.Verify(p, q, answer.NewEngine()))
}

func TestReconstruct_AmbiguousShare(t *testing.T) {
	p := masking.Presentation{
		Agents:  []string{"A", "B"},
		Objects: []string{"x"},
		Facts: []masking.Fact{
			{Kind: masking.Holding, Agent: "A", Object: "x", Quantity: 400},
			{Kind: masking.Movement, Status: masking.Hidden, Agent: "A", Other: "B", Object: "x"},
			{Kind: masking.Share, Agent: "A", Other: "B", Object: "x", Percent: 10},
		},
	}
	_, err := masking.Reconstruct(p)
	assert.ErrorIs(t, err, masking.ErrUnsolvable)
}

func TestReconstruct_Contradiction(t *testing.T) {
	p := masking.Presentation{
		Agents:  []string{"A", "B"},
		Objects: []string{"x"},
		Facts: []masking.Fact{
			{Kind: masking.Holding, Agent: "A", Object: "x", Quantity: 4},
			{Kind: masking.Holding, Agent: "B", Object: "x", Quantity: 4},
			{Kind: masking.Comparison, Agent: "B", Other: "A", Object: "x", Offset: 1},
		},
	}
	_, err := masking.Reconstruct(p)
	assert.ErrorIs(t, err, masking.ErrUnsolvable)
}

func TestApply_FallsBackAndScrambles(t *testing.T) {
	s := apples()
	q := question(t, s, answer.FinalCount, answer.Target{Agent: "C", Object: "apples"})

	// Only comparative chains, and only A holds apples at the start.
	chains := masking.NewEngine(
		masking.WithMaskingProbability(1),
		masking.WithScrambleProbability(0),
		masking.WithPatternWeights(map[masking.Pattern]float64{masking.ComparativeChain: 1}),
	)
	s2 := apples()
	s2.Agents[0].Initial["apples"], s2.Agents[0].Final["apples"] = 1, 0
	s2.Agents[1].Initial["apples"], s2.Agents[1].Final["apples"] = 0, 0
	s2.Agents[2].Initial["apples"], s2.Agents[2].Final["apples"] = 0, 1
	s2.Transfers[0].Quantity = 1
	s2.Transfers[1].Quantity = 1
	require.NoError(t, scenario.Validate(s2))
	q2 := question(t, s2, answer.FinalCount, answer.Target{Agent: "C", Object: "apples"})
	p, err := chains.Apply(rng.New(1), s2, q2)
	require.NoError(t, err)
	assert.Equal(t, masking.Unmasked, p.Pattern)
	assert.Empty(t, p.Hidden())

	always := masking.NewEngine(masking.WithMaskingProbability(0), masking.WithScrambleProbability(1))
	scrambled := 0
	for seed := int64(1); seed <= 20; seed++ {
		p, err := always.Apply(rng.New(seed), s, q)
		require.NoError(t, err)
		assert.Equal(t, masking.Unmasked, p.Pattern)
		assert.True(t, p.Scrambled)
		require.NoError(t, masking.Verify(p, q, answer.NewEngine()))
		if p.Facts[3].Step == 1 {
			scrambled++
		}
	}
	assert.Positive(t, scrambled, "transfer order never changed")

	bad := q
	bad.Answer = answer.Int(99)
	_, err = always.Apply(rng.New(1), s, bad)
	assert.ErrorIs(t, err, masking.ErrUnsolvable)
}

func TestPresentationJSON(t *testing.T) {
	s := apples()
	q := question(t, s, answer.InitialCount, answer.Target{Agent: "A", Object: "apples"})
	p, err := masking.NewEngine().Mask(rng.New(1), s, q, masking.MaskInitialCount)
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"pattern":"mask_initial_count"`)
	var back masking.Presentation
	require.NoError(t, json.Unmarshal(b, &back))
	if diff := cmp.Diff(p, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	require.NoError(t, masking.Verify(back, q, answer.NewEngine()))
}

func TestVagueAndPatterns(t *testing.T) {
	for n, want := range map[int]string{0: "no", 1: "a", 3: "a few", 5: "several", 12: "many", 16: "numerous"} {
		assert.Equal(t, want, masking.Vague(n), "%d", n)
	}
	p, err := masking.ParsePattern("comparative_inference_chains")
	require.NoError(t, err)
	assert.Equal(t, masking.ComparativeChain, p)
	_, err = masking.ParsePattern("cipher")
	assert.ErrorIs(t, err, masking.ErrUnknownPattern)
	assert.Panics(t, func() { masking.WithChainLength(1) })
}
