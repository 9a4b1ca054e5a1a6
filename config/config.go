package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/complexity"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/metrics"
	"github.com/katalvlaran/awpgen/question"
	"github.com/katalvlaran/awpgen/scenario"
)

// ErrInvalidConfig reports a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ScrambleFactorKey is the masking_factors entry added for scrambled stories.
const ScrambleFactorKey = "scramble"

// Config is the complete run configuration.
type Config struct {
	Meta       Meta       `yaml:"meta"`
	Dataset    Dataset    `yaml:"dataset"`
	Difficulty Difficulty `yaml:"difficulty"`
	Graph      Graph      `yaml:"graph"`
	Generation Generation `yaml:"generation"`
	Objects    Objects    `yaml:"objects"`
	AgentPool  []string   `yaml:"agent_pool"`
	Complexity Complexity `yaml:"complexity"`
	Questions  Questions  `yaml:"questions"`
}

// Meta carries run-wide knobs.
type Meta struct {
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
}

// Dataset sizes the run and its output.
type Dataset struct {
	NumScenarios         int    `yaml:"num_scenarios"`
	QuestionsPerScenario int    `yaml:"questions_per_scenario"`
	OutputDir            string `yaml:"output_dir"`
	Compress             bool   `yaml:"compress"`
	Workers              int    `yaml:"workers"` // 0 means one per CPU
}

// Bounds is an inclusive integer interval. In YAML it is written [min, max];
// a single-element list means min == max.
type Bounds struct {
	Min, Max int
}

// UnmarshalYAML reads [min, max] or [n].
func (b *Bounds) UnmarshalYAML(value *yaml.Node) error {
	var xs []int
	if err := value.Decode(&xs); err != nil {
		return err
	}
	switch len(xs) {
	case 1:
		b.Min, b.Max = xs[0], xs[0]
	case 2:
		b.Min, b.Max = xs[0], xs[1]
	default:
		return fmt.Errorf("line %d: range needs 1 or 2 values, got %d", value.Line, len(xs))
	}

	return nil
}

// MarshalYAML writes [min, max] in flow style.
func (b Bounds) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{intNode(b.Min), intNode(b.Max)},
	}, nil
}

func intNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

func (b Bounds) String() string { return fmt.Sprintf("[%d, %d]", b.Min, b.Max) }

// Template sizes the scenarios of one difficulty level.
type Template struct {
	Agents      Bounds `yaml:"agents"`
	ObjectTypes Bounds `yaml:"object_types"`
	Transfers   Bounds `yaml:"transfers"`
	MaxQuantity int    `yaml:"max_quantity"`
}

// Difficulty lists the templates and how many scenarios each one gets.
type Difficulty struct {
	Distribution map[string]int      `yaml:"distribution"`
	Templates    map[string]Template `yaml:"templates"`
}

// Graph configures topology construction and graph metrics.
type Graph struct {
	Topologies         []string `yaml:"topologies"`
	MaxChildren        int      `yaml:"max_children"`
	StarMode           string   `yaml:"star_mode"`
	BipartiteDirection string   `yaml:"bipartite_direction"`
	CompleteCap        int      `yaml:"complete_cap"`
	CycleExactLimit    int      `yaml:"cycle_exact_limit"`
	CycleCap           int      `yaml:"cycle_cap"`
	PathCutoff         int      `yaml:"path_cutoff"`
}

// Generation configures inventories, transfers and retry limits.
type Generation struct {
	Inventory     Inventory     `yaml:"inventory"`
	Probabilities Probabilities `yaml:"probabilities"`
	MinTransfer   int           `yaml:"min_transfer_quantity"`
	MaxAttempts   int           `yaml:"max_scenario_attempts"`
}

// Inventory shapes initial holdings.
type Inventory struct {
	BufferRange           Bounds             `yaml:"buffer_range"`
	MaxInitialBase        int                `yaml:"max_initial_base"`
	DifficultyMultipliers map[string]float64 `yaml:"difficulty_multipliers"`
}

// Probabilities are the per-object inventory draws.
type Probabilities struct {
	ObjectPresence float64 `yaml:"object_presence"`
	SmallQuantity  float64 `yaml:"small_quantity"`
}

// Objects selects the object catalog.
type Objects struct {
	Categories         []string `yaml:"categories"`
	CustomObjects      []string `yaml:"custom_objects"`
	CategoryPreference string   `yaml:"category_preference,omitempty"`
}

// Complexity configures scenario and question scoring.
type Complexity struct {
	Weights             complexity.Weights          `yaml:"weights"`
	QuestionTypeWeights map[string]float64          `yaml:"question_type_weights"`
	AdvancedMultipliers map[string]float64          `yaml:"advanced_multipliers"`
	MaskingFactors      map[string]float64          `yaml:"masking_factors"`
	Targets             map[string]complexity.Range `yaml:"targets"`
}

// Questions configures question sampling and masking.
type Questions struct {
	TypeWeights         map[string]float64 `yaml:"type_weights"`
	MaskingProbability  float64            `yaml:"masking_probability"`
	ScrambleProbability float64            `yaml:"scramble_probability"`
	PatternWeights      map[string]float64 `yaml:"pattern_weights"`
	ChainLength         int                `yaml:"chain_length"`
	ConditionalExtra    Bounds             `yaml:"conditional_extra"`
	CombinedAgents      int                `yaml:"combined_agents"`
	MaxResample         int                `yaml:"max_resample"`
}

// Default returns a complete, valid configuration.
func Default() Config {
	return Config{
		Meta: Meta{Seed: 42, LogLevel: "info"},
		Dataset: Dataset{
			NumScenarios:         520,
			QuestionsPerScenario: 10,
			OutputDir:            "output",
		},
		Difficulty: Difficulty{
			Distribution: map[string]int{"simple": 177, "moderate": 177, "complex": 166},
			Templates: map[string]Template{
				"simple":   {Agents: Bounds{3, 5}, ObjectTypes: Bounds{2, 3}, Transfers: Bounds{3, 5}, MaxQuantity: 20},
				"moderate": {Agents: Bounds{5, 8}, ObjectTypes: Bounds{3, 5}, Transfers: Bounds{5, 10}, MaxQuantity: 35},
				"complex":  {Agents: Bounds{10, 15}, ObjectTypes: Bounds{6, 10}, Transfers: Bounds{15, 25}, MaxQuantity: 100},
				"extreme":  {Agents: Bounds{15, 25}, ObjectTypes: Bounds{10, 15}, Transfers: Bounds{25, 40}, MaxQuantity: 150},
			},
		},
		Graph: Graph{
			Topologies:         names(builder.Topologies()),
			MaxChildren:        3,
			StarMode:           builder.StarOutward.String(),
			BipartiteDirection: builder.AtoB.String(),
			CompleteCap:        8,
			CycleExactLimit:    metrics.DefaultExactNodeLimit,
			CycleCap:           metrics.DefaultCycleCap,
			PathCutoff:         answer.DefaultPathCutoff,
		},
		Generation: Generation{
			Inventory: Inventory{
				BufferRange:    Bounds{5, 20},
				MaxInitialBase: 30,
				DifficultyMultipliers: map[string]float64{
					"simple": 1, "moderate": 2, "complex": 3, "extreme": 4,
				},
			},
			Probabilities: Probabilities{ObjectPresence: 0.8, SmallQuantity: 0.7},
			MinTransfer:   1,
			MaxAttempts:   10,
		},
		Objects: Objects{
			Categories:    scenario.Categories(),
			CustomObjects: []string{},
		},
		AgentPool: append([]string(nil), scenario.DefaultAgentPool...),
		Complexity: Complexity{
			Weights:             complexity.DefaultWeights(),
			QuestionTypeWeights: typeKeyed(question.DefaultComplexityWeights()),
			AdvancedMultipliers: typeKeyed(question.DefaultMultipliers()),
			MaskingFactors:      maskingFactors(question.DefaultMaskingFactors(), question.DefaultScrambleFactor),
			Targets:             complexity.DefaultTargets(),
		},
		Questions: Questions{
			TypeWeights:         typeKeyed(question.DefaultTypeWeights()),
			MaskingProbability:  masking.DefaultMaskingProbability,
			ScrambleProbability: masking.DefaultScrambleProbability,
			PatternWeights:      patternKeyed(masking.DefaultWeights()),
			ChainLength:         masking.DefaultChainLength,
			ConditionalExtra:    Bounds{question.DefaultExtraMin, question.DefaultExtraMax},
			CombinedAgents:      question.DefaultCombinedAgents,
			MaxResample:         question.DefaultMaxResample,
		},
	}
}

// Load reads, completes and validates the YAML configuration at path.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return Parse(raw)
}

// Parse decodes, completes and validates a YAML configuration.
// An empty document yields Default.
func Parse(raw []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config.yaml: %w", err)
	}

	var present map[string]yaml.Node
	if err := yaml.Unmarshal(raw, &present); err != nil {
		return Config{}, fmt.Errorf("config.yaml: %w", err)
	}
	c.fillAbsent(present)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// fillAbsent copies every top-level section missing from present out of Default.
func (c *Config) fillAbsent(present map[string]yaml.Node) {
	d := Default()
	has := func(key string) bool {
		_, ok := present[key]
		return ok
	}
	if !has("meta") {
		c.Meta = d.Meta
	}
	if !has("dataset") {
		c.Dataset = d.Dataset
	}
	if !has("difficulty") {
		c.Difficulty = d.Difficulty
	}
	if !has("graph") {
		c.Graph = d.Graph
	}
	if !has("generation") {
		c.Generation = d.Generation
	}
	if !has("objects") {
		c.Objects = d.Objects
	}
	if !has("agent_pool") {
		c.AgentPool = d.AgentPool
	}
	if !has("complexity") {
		c.Complexity = d.Complexity
	}
	if !has("questions") {
		c.Questions = d.Questions
	}
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func names(ts []builder.Topology) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}

	return out
}

func typeKeyed(m map[answer.QuestionType]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for qt, v := range m {
		out[qt.String()] = v
	}

	return out
}

func patternKeyed(m map[masking.Pattern]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for p, v := range m {
		out[p.String()] = v
	}

	return out
}

func maskingFactors(m map[masking.Pattern]float64, scramble float64) map[string]float64 {
	out := patternKeyed(m)
	out[ScrambleFactorKey] = scramble

	return out
}
