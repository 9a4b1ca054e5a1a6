package config

import (
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/metrics"
	"github.com/katalvlaran/awpgen/question"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

// The helpers below assume c passed Validate; they skip entries that do not parse.

// Level returns the configured log level, Info when unparsable.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Meta.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// Topologies returns the enabled topologies in configured order.
func (c Config) Topologies() []builder.Topology {
	out := make([]builder.Topology, 0, len(c.Graph.Topologies))
	for _, name := range c.Graph.Topologies {
		if t, err := builder.ParseTopology(name); err == nil {
			out = append(out, t)
		}
	}

	return out
}

// TopologiesFor returns the enabled topologies that can be built over n agents.
func (c Config) TopologiesFor(n int) []builder.Topology {
	var out []builder.Topology
	capOpt := builder.WithCompleteCap(max(2, c.Graph.CompleteCap))
	for _, t := range c.Topologies() {
		if builder.Feasible(t, n, capOpt) {
			out = append(out, t)
		}
	}

	return out
}

// BuilderOptions returns the topology options for one scenario of template t.
// src is shared with the caller, so graph sampling continues its stream.
func (c Config) BuilderOptions(src *rng.Source, t Template) []builder.BuilderOption {
	star, _ := builder.ParseStarMode(c.Graph.StarMode)
	dir, _ := builder.ParseDirection(c.Graph.BipartiteDirection)

	return []builder.BuilderOption{
		builder.WithSource(src),
		builder.WithMaxChildren(c.Graph.MaxChildren),
		builder.WithStarMode(star),
		builder.WithBipartiteDirection(dir),
		builder.WithCompleteCap(c.Graph.CompleteCap),
		builder.WithEdgeBounds(t.Transfers.Min, t.Transfers.Max),
	}
}

// MetricsOptions returns the cycle counting options.
func (c Config) MetricsOptions() []metrics.Option {
	return []metrics.Option{
		metrics.WithExactNodeLimit(c.Graph.CycleExactLimit),
		metrics.WithCycleCap(c.Graph.CycleCap),
	}
}

// ObjectPool returns the object catalog. A category preference narrows the
// catalog to that category plus the custom objects.
func (c Config) ObjectPool() []string {
	if c.Objects.CategoryPreference != "" {
		return scenario.Catalog([]string{c.Objects.CategoryPreference}, c.Objects.CustomObjects)
	}

	return scenario.Catalog(c.Objects.Categories, c.Objects.CustomObjects)
}

// InventoryParams returns the inventory sampling parameters for a difficulty.
func (c Config) InventoryParams(difficulty string) scenario.InventoryParams {
	inv := c.Generation.Inventory
	mult, ok := inv.DifficultyMultipliers[difficulty]
	if !ok {
		mult = 1
	}

	return scenario.InventoryParams{
		ObjectPresence: c.Generation.Probabilities.ObjectPresence,
		SmallQuantity:  c.Generation.Probabilities.SmallQuantity,
		BufferMin:      inv.BufferRange.Min,
		BufferMax:      inv.BufferRange.Max,
		MaxBase:        int(float64(inv.MaxInitialBase) * mult),
		MaxQuantity:    c.Difficulty.Templates[difficulty].MaxQuantity,
	}
}

// Quantities returns the transfer size bounds for template t.
func (c Config) Quantities(t Template) scenario.Quantities {
	return scenario.Quantities{Min: c.Generation.MinTransfer, Max: t.MaxQuantity}
}

// AnswerEngine returns an answer engine with the configured path cutoff.
func (c Config) AnswerEngine() *answer.Engine {
	return answer.NewEngine(answer.WithPathCutoff(c.Graph.PathCutoff))
}

// Masker returns a masking engine that verifies with a.
func (c Config) Masker(a *answer.Engine) *masking.Engine {
	q := c.Questions
	weights, _ := patternMap(q.PatternWeights)

	return masking.NewEngine(
		masking.WithAnswerEngine(a),
		masking.WithMaskingProbability(q.MaskingProbability),
		masking.WithScrambleProbability(q.ScrambleProbability),
		masking.WithPatternWeights(weights),
		masking.WithChainLength(q.ChainLength),
	)
}

// Sampler returns a question sampler wired to the configured engines and weights.
// It panics if c did not pass Validate.
func (c Config) Sampler() *question.Sampler {
	a := c.AnswerEngine()
	q := c.Questions
	typeWeights, _ := typeMap("questions.type_weights", q.TypeWeights)
	complexityW, _ := typeMap("complexity.question_type_weights", c.Complexity.QuestionTypeWeights)
	multipliers, _ := typeMap("complexity.advanced_multipliers", c.Complexity.AdvancedMultipliers)
	factors, scramble, _ := maskingFactorMap(c.Complexity.MaskingFactors)

	return question.NewSampler(
		question.WithAnswerEngine(a),
		question.WithMasker(c.Masker(a)),
		question.WithTypeWeights(typeWeights),
		question.WithComplexityWeights(complexityW),
		question.WithMultipliers(multipliers),
		question.WithMaskingFactors(factors, scramble),
		question.WithExtraRange(q.ConditionalExtra.Min, q.ConditionalExtra.Max),
		question.WithCombinedAgents(q.CombinedAgents),
		question.WithMaxResample(q.MaxResample),
	)
}

// Plan assigns a difficulty to each of n scenarios. The distribution counts
// are scaled to n by largest remainder (ties by name) and the resulting
// sequence is shuffled with src.
func (c Config) Plan(src *rng.Source, n int) []string {
	dist := c.Difficulty.Distribution
	names := sortedKeys(dist)
	total := 0
	for _, name := range names {
		total += max(0, dist[name])
	}
	if total == 0 || n <= 0 {
		return nil
	}

	type share struct {
		name  string
		count int
		rem   int
	}
	shares := make([]share, len(names))
	assigned := 0
	for i, name := range names {
		scaled := max(0, dist[name]) * n
		shares[i] = share{name: name, count: scaled / total, rem: scaled % total}
		assigned += shares[i].count
	}
	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return shares[order[a]].rem > shares[order[b]].rem })
	for i := 0; assigned < n; i++ {
		shares[order[i%len(order)]].count++
		assigned++
	}

	plan := make([]string, 0, n)
	for _, s := range shares {
		for k := 0; k < s.count; k++ {
			plan = append(plan, s.name)
		}
	}
	rng.Shuffle(src, plan)

	return plan
}
