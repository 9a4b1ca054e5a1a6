package config

import (
	"fmt"
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/scenario"
)

// invalid wraps ErrInvalidConfig with the offending key.
func invalid(key, format string, args ...any) error {
	return fmt.Errorf("config: %s: %s: %w", key, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks c and returns the first problem found, wrapped in
// ErrInvalidConfig. Sections are checked in declaration order.
func (c Config) Validate() error {
	for _, check := range []func() error{
		c.validateMeta,
		c.validateDataset,
		c.validateGraph,
		c.validateDifficulty,
		c.validateGeneration,
		c.validateObjects,
		c.validateAgents,
		c.validateComplexity,
		c.validateQuestions,
	} {
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

func (c Config) validateMeta() error {
	if _, err := zapcore.ParseLevel(c.Meta.LogLevel); err != nil {
		return invalid("meta.log_level", "%q: %v", c.Meta.LogLevel, err)
	}

	return nil
}

func (c Config) validateDataset() error {
	d := c.Dataset
	switch {
	case d.NumScenarios < 1:
		return invalid("dataset.num_scenarios", "%d < 1", d.NumScenarios)
	case d.QuestionsPerScenario < 0:
		return invalid("dataset.questions_per_scenario", "%d < 0", d.QuestionsPerScenario)
	case d.Workers < 0:
		return invalid("dataset.workers", "%d < 0", d.Workers)
	case d.OutputDir == "":
		return invalid("dataset.output_dir", "empty")
	}

	return nil
}

func (c Config) validateGraph() error {
	g := c.Graph
	if len(g.Topologies) == 0 {
		return invalid("graph.topologies", "empty")
	}
	seen := make(map[string]struct{}, len(g.Topologies))
	for i, name := range g.Topologies {
		if _, err := builder.ParseTopology(name); err != nil {
			return invalid(fmt.Sprintf("graph.topologies[%d]", i), "unknown topology %q", name)
		}
		if _, dup := seen[name]; dup {
			return invalid(fmt.Sprintf("graph.topologies[%d]", i), "duplicate %q", name)
		}
		seen[name] = struct{}{}
	}
	if _, err := builder.ParseStarMode(g.StarMode); err != nil {
		return invalid("graph.star_mode", "unknown mode %q", g.StarMode)
	}
	if _, err := builder.ParseDirection(g.BipartiteDirection); err != nil {
		return invalid("graph.bipartite_direction", "unknown direction %q", g.BipartiteDirection)
	}
	switch {
	case g.MaxChildren < 1:
		return invalid("graph.max_children", "%d < 1", g.MaxChildren)
	case g.CompleteCap < 2:
		return invalid("graph.complete_cap", "%d < 2", g.CompleteCap)
	case g.CycleExactLimit < 0:
		return invalid("graph.cycle_exact_limit", "%d < 0", g.CycleExactLimit)
	case g.CycleCap < 1:
		return invalid("graph.cycle_cap", "%d < 1", g.CycleCap)
	case g.PathCutoff < 1:
		return invalid("graph.path_cutoff", "%d < 1", g.PathCutoff)
	}

	return nil
}

// validateDifficulty needs a valid graph section: every agent count a
// template allows must admit at least one enabled topology.
func (c Config) validateDifficulty() error {
	d := c.Difficulty
	if len(d.Templates) == 0 {
		return invalid("difficulty.templates", "empty")
	}
	for _, name := range sortedKeys(d.Templates) {
		t := d.Templates[name]
		key := "difficulty.templates." + name
		if err := checkBounds(key+".agents", t.Agents, 2); err != nil {
			return err
		}
		if err := checkBounds(key+".object_types", t.ObjectTypes, 1); err != nil {
			return err
		}
		if err := checkBounds(key+".transfers", t.Transfers, 1); err != nil {
			return err
		}
		if t.MaxQuantity < max(1, c.Generation.MinTransfer) {
			return invalid(key+".max_quantity", "%d below the minimum transfer quantity", t.MaxQuantity)
		}
		for n := t.Agents.Min; n <= t.Agents.Max; n++ {
			if len(c.TopologiesFor(n)) == 0 {
				return invalid(key+".agents", "no enabled topology supports %d agents", n)
			}
		}
	}

	if len(d.Distribution) == 0 {
		return invalid("difficulty.distribution", "empty")
	}
	total := 0
	for _, name := range sortedKeys(d.Distribution) {
		n := d.Distribution[name]
		if _, ok := d.Templates[name]; !ok {
			return invalid("difficulty.distribution."+name, "no template")
		}
		if n < 0 {
			return invalid("difficulty.distribution."+name, "%d < 0", n)
		}
		total += n
	}
	if total == 0 {
		return invalid("difficulty.distribution", "all counts are zero")
	}

	return nil
}

func (c Config) validateGeneration() error {
	g := c.Generation
	if err := checkBounds("generation.inventory.buffer_range", g.Inventory.BufferRange, 0); err != nil {
		return err
	}
	if g.Inventory.MaxInitialBase < 1 {
		return invalid("generation.inventory.max_initial_base", "%d < 1", g.Inventory.MaxInitialBase)
	}
	for _, name := range sortedKeys(c.Difficulty.Templates) {
		m, ok := g.Inventory.DifficultyMultipliers[name]
		if !ok {
			return invalid("generation.inventory.difficulty_multipliers", "missing entry for %q", name)
		}
		if m <= 0 {
			return invalid("generation.inventory.difficulty_multipliers."+name, "%v <= 0", m)
		}
	}
	if err := checkProbability("generation.probabilities.object_presence", g.Probabilities.ObjectPresence); err != nil {
		return err
	}
	if err := checkProbability("generation.probabilities.small_quantity", g.Probabilities.SmallQuantity); err != nil {
		return err
	}
	if g.MinTransfer < 1 {
		return invalid("generation.min_transfer_quantity", "%d < 1", g.MinTransfer)
	}
	if g.MaxAttempts < 1 {
		return invalid("generation.max_scenario_attempts", "%d < 1", g.MaxAttempts)
	}

	return nil
}

func (c Config) validateObjects() error {
	o := c.Objects
	for i, cat := range o.Categories {
		if _, ok := scenario.DefaultObjects[cat]; !ok {
			return invalid(fmt.Sprintf("objects.categories[%d]", i), "unknown category %q", cat)
		}
	}
	if o.CategoryPreference != "" {
		if _, ok := scenario.DefaultObjects[o.CategoryPreference]; !ok {
			return invalid("objects.category_preference", "unknown category %q", o.CategoryPreference)
		}
	}
	if len(c.ObjectPool()) == 0 {
		return invalid("objects", "empty object catalog")
	}

	return nil
}

func (c Config) validateAgents() error {
	seen := make(map[string]struct{}, len(c.AgentPool))
	for i, name := range c.AgentPool {
		if name == "" {
			return invalid(fmt.Sprintf("agent_pool[%d]", i), "empty name")
		}
		if _, dup := seen[name]; dup {
			return invalid(fmt.Sprintf("agent_pool[%d]", i), "duplicate %q", name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

func (c Config) validateComplexity() error {
	x := c.Complexity
	w := x.Weights
	for _, v := range []float64{w.Diameter, w.Density, w.Branching, w.Cycles, w.Transfers, w.Agents, w.Objects} {
		if v < 0 {
			return invalid("complexity.weights", "negative weight %v", v)
		}
	}
	if _, err := typeMap("complexity.question_type_weights", x.QuestionTypeWeights); err != nil {
		return err
	}
	if _, err := typeMap("complexity.advanced_multipliers", x.AdvancedMultipliers); err != nil {
		return err
	}
	if _, _, err := maskingFactorMap(x.MaskingFactors); err != nil {
		return err
	}
	if len(x.Targets) == 0 {
		return invalid("complexity.targets", "empty")
	}
	for _, name := range sortedKeys(x.Targets) {
		if r := x.Targets[name]; r.Min > r.Max {
			return invalid("complexity.targets."+name, "min %v > max %v", r.Min, r.Max)
		}
	}

	return nil
}

func (c Config) validateQuestions() error {
	q := c.Questions
	weights, err := typeMap("questions.type_weights", q.TypeWeights)
	if err != nil {
		return err
	}
	if c.Dataset.QuestionsPerScenario > 0 {
		enabled := false
		for _, v := range weights {
			enabled = enabled || v > 0
		}
		if !enabled {
			return invalid("questions.type_weights", "every weight is zero")
		}
	}
	if err := checkProbability("questions.masking_probability", q.MaskingProbability); err != nil {
		return err
	}
	if err := checkProbability("questions.scramble_probability", q.ScrambleProbability); err != nil {
		return err
	}
	if _, err := patternMap(q.PatternWeights); err != nil {
		return err
	}
	switch {
	case q.ChainLength < 2:
		return invalid("questions.chain_length", "%d < 2", q.ChainLength)
	case q.CombinedAgents < 2:
		return invalid("questions.combined_agents", "%d < 2", q.CombinedAgents)
	case q.MaxResample < 1:
		return invalid("questions.max_resample", "%d < 1", q.MaxResample)
	}

	return checkBounds("questions.conditional_extra", q.ConditionalExtra, 1)
}

func checkBounds(key string, b Bounds, floor int) error {
	if b.Min < floor {
		return invalid(key, "min %d < %d", b.Min, floor)
	}
	if b.Max < b.Min {
		return invalid(key, "inverted range %s", b)
	}

	return nil
}

func checkProbability(key string, p float64) error {
	if p < 0 || p > 1 {
		return invalid(key, "%v outside [0, 1]", p)
	}

	return nil
}

// typeMap resolves a question-type keyed map. Every type needs exactly one
// non-negative entry.
func typeMap(key string, m map[string]float64) (map[answer.QuestionType]float64, error) {
	out := make(map[answer.QuestionType]float64, len(m))
	for _, name := range sortedKeys(m) {
		qt, err := answer.ParseType(name)
		if err != nil {
			return nil, invalid(key, "unknown question type %q", name)
		}
		if m[name] < 0 {
			return nil, invalid(key+"."+name, "%v < 0", m[name])
		}
		out[qt] = m[name]
	}
	for _, qt := range answer.Types() {
		if _, ok := out[qt]; !ok {
			return nil, invalid(key, "missing entry for %s", qt)
		}
	}

	return out, nil
}

// patternMap resolves masking pattern weights: one non-negative entry per
// masked pattern. Unmasked is not drawn by weight and may not appear.
func patternMap(m map[string]float64) (map[masking.Pattern]float64, error) {
	const key = "questions.pattern_weights"
	out := make(map[masking.Pattern]float64, len(m))
	for _, name := range sortedKeys(m) {
		p, err := masking.ParsePattern(name)
		if err != nil || p == masking.Unmasked {
			return nil, invalid(key, "unknown masked pattern %q", name)
		}
		if _, dup := out[p]; dup {
			return nil, invalid(key, "pattern %s given twice", p)
		}
		if m[name] < 0 {
			return nil, invalid(key+"."+name, "%v < 0", m[name])
		}
		out[p] = m[name]
	}
	for _, p := range masking.Patterns() {
		if _, ok := out[p]; !ok && p != masking.Unmasked {
			return nil, invalid(key, "missing entry for %s", p)
		}
	}

	return out, nil
}

// maskingFactorMap resolves masking factors: every pattern plus the scramble addend.
func maskingFactorMap(m map[string]float64) (map[masking.Pattern]float64, float64, error) {
	const key = "complexity.masking_factors"
	scramble, ok := m[ScrambleFactorKey]
	if !ok {
		return nil, 0, invalid(key, "missing entry for %s", ScrambleFactorKey)
	}
	if scramble < 0 {
		return nil, 0, invalid(key+"."+ScrambleFactorKey, "%v < 0", scramble)
	}
	out := make(map[masking.Pattern]float64, len(m))
	for _, name := range sortedKeys(m) {
		if name == ScrambleFactorKey {
			continue
		}
		p, err := masking.ParsePattern(name)
		if err != nil {
			return nil, 0, invalid(key, "unknown pattern %q", name)
		}
		if _, dup := out[p]; dup {
			return nil, 0, invalid(key, "pattern %s given twice", p)
		}
		if m[name] < 0 {
			return nil, 0, invalid(key+"."+name, "%v < 0", m[name])
		}
		out[p] = m[name]
	}
	for _, p := range masking.Patterns() {
		if _, ok := out[p]; !ok {
			return nil, 0, invalid(key, "missing entry for %s", p)
		}
	}

	return out, scramble, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
