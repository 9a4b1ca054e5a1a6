package question_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/question"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

func generated(t *testing.T, seed int64, topo builder.Topology) *scenario.Scenario {
	t.Helper()
	src := rng.New(seed)
	names := scenario.SampleNames(src, scenario.DefaultAgentPool, 6)
	objects := scenario.SampleObjects(src, scenario.Catalog([]string{"office"}, nil), 3)
	l, err := builder.BuildTopology(topo, names, builder.WithSource(src))
	require.NoError(t, err)
	initial := scenario.SampleInventories(src, names, objects, scenario.InventoryParams{
		ObjectPresence: 0.8, SmallQuantity: 0.7, BufferMin: 5, BufferMax: 20, MaxBase: 30, MaxQuantity: 60,
	})
	out, err := scenario.Simulate(src, l.Graph, objects, initial, scenario.Quantities{Min: 1, Max: 20})
	if err != nil {
		return nil
	}
	return &scenario.Scenario{
		ID:          scenario.NewID(seed, int(topo)),
		Agents:      scenario.BuildAgents(names, initial, out.Final),
		Transfers:   out.Transfers,
		ObjectTypes: objects,
		Complexity:  4.5,
	}
}

func TestSample_AnswersAndMaskingHold(t *testing.T) {
	sampler := question.NewSampler()
	eng := answer.NewEngine()
	seen := map[answer.QuestionType]bool{}
	for _, topo := range builder.Topologies() {
		for seed := int64(1); seed <= 6; seed++ {
			sc := generated(t, seed, topo)
			if sc == nil {
				continue
			}
			insts, err := sampler.SampleN(rng.New(seed), sc, 15)
			require.NoError(t, err)
			for _, in := range insts {
				seen[in.Type] = true
				want, err := eng.Compute(sc, in.Type, in.Target)
				require.NoError(t, err, "%s %+v", in.Type, in.Target)
				assert.Equal(t, want, in.Answer)
				assert.Equal(t, in.Pattern, in.Presentation.Pattern)
				require.NoError(t, masking.Verify(in.Presentation, in.Question(), eng), "%s %s", in.Type, in.Pattern)
				assert.Positive(t, in.Complexity)
				assert.Equal(t, sc.ID, in.ScenarioID)
				if in.Type == answer.RatioFraction {
					assert.Equal(t, 1, gcd(in.Answer.Num, in.Answer.Den))
				}
				if in.Type == answer.RatioPercentage {
					assert.True(t, in.Answer.Value >= 0 && in.Answer.Value <= 100)
				}
			}
		}
	}
	assert.GreaterOrEqual(t, len(seen), 12, "types drawn: %v", seen)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func TestSample_Deterministic(t *testing.T) {
	sc := generated(t, 3, builder.DAG)
	require.NotNil(t, sc)
	a, err := question.NewSampler().SampleN(rng.New(9), sc, 10)
	require.NoError(t, err)
	b, err := question.NewSampler().SampleN(rng.New(9), sc, 10)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed diverged (-a +b):\n%s", diff)
	}
	assert.Equal(t, question.NewID(sc.ID, 4), a[4].ID)
}

func TestSample_FallsBackOnTies(t *testing.T) {
	sc := &scenario.Scenario{
		ID:          "tie",
		ObjectTypes: []string{"pens"},
		Agents: []scenario.Agent{
			{Name: "A", Initial: scenario.Inventory{"pens": 6}, Final: scenario.Inventory{"pens": 5}},
			{Name: "B", Initial: scenario.Inventory{"pens": 4}, Final: scenario.Inventory{"pens": 5}},
		},
		Transfers: []scenario.Transfer{{From: "A", To: "B", Object: "pens", Quantity: 1}},
	}
	require.NoError(t, scenario.Validate(sc))

	weights := map[answer.QuestionType]float64{}
	for _, qt := range answer.Types() {
		weights[qt] = 0
	}
	weights[answer.ComparativeMore] = 1
	s := question.NewSampler(question.WithTypeWeights(weights), question.WithMaxResample(3))

	in, err := s.Sample(rng.New(1), sc, 0)
	require.NoError(t, err)
	assert.True(t, in.Fallback)
	assert.Equal(t, answer.FinalCount, in.Type)
	assert.Equal(t, answer.Int(5), in.Answer)

	weights[answer.ComparativeMore] = 0
	_, err = question.NewSampler(question.WithTypeWeights(weights)).Sample(rng.New(1), sc, 0)
	assert.ErrorIs(t, err, question.ErrNoQuestionTypes)
}

func TestBuild_Complexity(t *testing.T) {
	sc := generated(t, 5, builder.Tree)
	require.NotNil(t, sc)
	s := question.NewSampler(question.WithMasker(masking.NewEngine(
		masking.WithMaskingProbability(0),
		masking.WithScrambleProbability(0),
	)))
	in, err := s.Build(rng.New(1), sc, 0, answer.SumAll, answer.Target{Object: sc.ObjectTypes[0]})
	require.NoError(t, err)
	assert.Equal(t, masking.Unmasked, in.Pattern)
	assert.InDelta(t, 6.75, in.Complexity, 1e-9, "4.5 × 1.5 × 1 × 1")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { question.WithTypeWeights(map[answer.QuestionType]float64{answer.SumAll: 1}) })
	assert.Panics(t, func() { question.WithMaskingFactors(map[masking.Pattern]float64{}, 0.5) })
	assert.Panics(t, func() { question.WithExtraRange(3, 2) })
	assert.Panics(t, func() { question.WithCombinedAgents(1) })
}
