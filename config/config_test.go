package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/rng"
)

func TestDefault_Valid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse_EmptyIsDefault(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), c, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("empty document (-want +got):\n%s", diff)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	raw, err := Default().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(raw), "agents: [3, 5]")

	c, err := Parse(raw)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), c, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestParse_FillsAbsentSections(t *testing.T) {
	c, err := Parse([]byte(`
dataset:
  num_scenarios: 5
  questions_per_scenario: 2
  output_dir: out
  workers: 2
`))
	require.NoError(t, err)
	assert.Equal(t, Dataset{NumScenarios: 5, QuestionsPerScenario: 2, OutputDir: "out", Workers: 2}, c.Dataset)
	assert.Equal(t, Default().Graph, c.Graph)
	assert.Equal(t, Default().Questions.TypeWeights, c.Questions.TypeWeights)
}

func TestParse_PresentSectionIsNotCompleted(t *testing.T) {
	_, err := Parse([]byte(`
questions:
  type_weights:
    initial_count: 1
    final_count: 1
`))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "questions.type_weights")
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("dataset:\n  num_scenarioz: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "awpgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("meta:\n  seed: 7\n  log_level: debug\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.Meta.Seed)
	assert.Equal(t, zapcore.DebugLevel, c.Level())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBounds_YAML(t *testing.T) {
	var b Bounds
	require.NoError(t, yaml.Unmarshal([]byte("[4]"), &b))
	assert.Equal(t, Bounds{4, 4}, b)

	require.NoError(t, yaml.Unmarshal([]byte("[2, 9]"), &b))
	assert.Equal(t, Bounds{2, 9}, b)

	require.Error(t, yaml.Unmarshal([]byte("[1, 2, 3]"), &b))
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		key    string
	}{
		{"unknown topology", func(c *Config) { c.Graph.Topologies = []string{"tree", "hexagon"} }, "graph.topologies[1]"},
		{"duplicate topology", func(c *Config) { c.Graph.Topologies = []string{"tree", "tree"} }, "graph.topologies[1]"},
		{"unknown star mode", func(c *Config) { c.Graph.StarMode = "sideways" }, "graph.star_mode"},
		{"inverted agents", func(c *Config) {
			c.Difficulty.Templates["simple"] = Template{Agents: Bounds{5, 3}, ObjectTypes: Bounds{1, 2}, Transfers: Bounds{1, 2}, MaxQuantity: 5}
		}, "difficulty.templates.simple.agents"},
		{"complete only above cap", func(c *Config) { c.Graph.Topologies = []string{"complete"} }, "difficulty.templates.complex.agents"},
		{"bipartite needs four", func(c *Config) { c.Graph.Topologies = []string{"bipartite"} }, "difficulty.templates.simple.agents"},
		{"distribution without template", func(c *Config) { c.Difficulty.Distribution["legendary"] = 3 }, "difficulty.distribution.legendary"},
		{"zero distribution", func(c *Config) {
			c.Difficulty.Distribution = map[string]int{"simple": 0}
		}, "difficulty.distribution"},
		{"missing multiplier", func(c *Config) { delete(c.Generation.Inventory.DifficultyMultipliers, "extreme") }, "difficulty_multipliers"},
		{"presence above one", func(c *Config) { c.Generation.Probabilities.ObjectPresence = 1.5 }, "object_presence"},
		{"unknown category", func(c *Config) { c.Objects.Categories = []string{"food", "weapons"} }, "objects.categories[1]"},
		{"empty catalog", func(c *Config) { c.Objects.Categories = nil }, "objects"},
		{"duplicate agent", func(c *Config) { c.AgentPool = []string{"Alex", "Alex"} }, "agent_pool[1]"},
		{"missing type weight", func(c *Config) { delete(c.Questions.TypeWeights, "sum_all") }, "questions.type_weights"},
		{"unknown type weight", func(c *Config) { c.Questions.TypeWeights["guess"] = 1 }, "questions.type_weights"},
		{"missing multiplier entry", func(c *Config) { delete(c.Complexity.AdvancedMultipliers, "multi_hop_path_count") }, "complexity.advanced_multipliers"},
		{"missing scramble factor", func(c *Config) { delete(c.Complexity.MaskingFactors, ScrambleFactorKey) }, "complexity.masking_factors"},
		{"missing masking factor", func(c *Config) { delete(c.Complexity.MaskingFactors, "none") }, "complexity.masking_factors"},
		{"missing pattern weight", func(c *Config) { delete(c.Questions.PatternWeights, "percentage_ratio") }, "questions.pattern_weights"},
		{"unmasked pattern weight", func(c *Config) { c.Questions.PatternWeights["none"] = 1 }, "questions.pattern_weights"},
		{"inverted target", func(c *Config) {
			r := c.Complexity.Targets["simple"]
			r.Min, r.Max = r.Max, r.Min
			c.Complexity.Targets["simple"] = r
		}, "complexity.targets.simple"},
		{"short chain", func(c *Config) { c.Questions.ChainLength = 1 }, "questions.chain_length"},
		{"zero extra", func(c *Config) { c.Questions.ConditionalExtra = Bounds{0, 3} }, "questions.conditional_extra"},
		{"bad log level", func(c *Config) { c.Meta.LogLevel = "chatty" }, "meta.log_level"},
		{"no scenarios", func(c *Config) { c.Dataset.NumScenarios = 0 }, "dataset.num_scenarios"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestPlan_LargestRemainder(t *testing.T) {
	c := Default()

	full := c.Plan(rng.New(1), 520)
	require.Len(t, full, 520)
	assert.Equal(t, map[string]int{"simple": 177, "moderate": 177, "complex": 166}, tally(full))

	small := c.Plan(rng.New(1), 10)
	assert.Equal(t, map[string]int{"simple": 3, "moderate": 4, "complex": 3}, tally(small))

	assert.Equal(t, small, c.Plan(rng.New(1), 10), "same seed, same plan")
	assert.Nil(t, c.Plan(rng.New(1), 0))
}

func tally(plan []string) map[string]int {
	out := map[string]int{}
	for _, d := range plan {
		out[d]++
	}

	return out
}

func TestTopologiesFor(t *testing.T) {
	c := Default()
	assert.NotContains(t, c.TopologiesFor(3), builder.Bipartite)
	assert.Contains(t, c.TopologiesFor(3), builder.Complete)
	assert.Contains(t, c.TopologiesFor(9), builder.Bipartite)
	assert.NotContains(t, c.TopologiesFor(9), builder.Complete)
}

func TestDerived(t *testing.T) {
	c := Default()

	p := c.InventoryParams("complex")
	assert.Equal(t, 90, p.MaxBase)
	assert.Equal(t, 100, p.MaxQuantity)
	assert.Equal(t, 5, p.BufferMin)

	q := c.Quantities(c.Difficulty.Templates["simple"])
	assert.Equal(t, 1, q.Min)
	assert.Equal(t, 20, q.Max)

	assert.Equal(t, c.Graph.PathCutoff, c.AnswerEngine().PathCutoff())
	assert.NotPanics(t, func() { c.Sampler() })
	assert.Len(t, c.BuilderOptions(rng.New(1), c.Difficulty.Templates["simple"]), 6)

	c.Objects.CategoryPreference = "food"
	c.Objects.CustomObjects = []string{"kites"}
	assert.Equal(t, []string{"apples", "cookies", "candies", "oranges", "cakes", "sandwiches", "kites"}, c.ObjectPool())
}
