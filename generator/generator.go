package generator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/complexity"
	"github.com/katalvlaran/awpgen/config"
	"github.com/katalvlaran/awpgen/metrics"
	"github.com/katalvlaran/awpgen/question"
	"github.com/katalvlaran/awpgen/rng"
	"github.com/katalvlaran/awpgen/scenario"
)

// ErrScenarioGeneration reports a scenario index whose attempts all failed.
var ErrScenarioGeneration = errors.New("generator: scenario generation failed")

// Generator builds scenarios and questions from a validated configuration.
// It is safe for concurrent use.
type Generator struct {
	cfg     config.Config
	sampler *question.Sampler
	logger  *zap.Logger
	metrics *Metrics
	workers int
}

// Option tunes a Generator. Constructors panic on meaningless values.
type Option func(*Generator)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}

// WithMetrics sets the metrics sink. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("generator: WithMetrics(nil)")
	}
	return func(g *Generator) { g.metrics = m }
}

// WithWorkers overrides dataset.workers; 0 means one per CPU. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("generator: WithWorkers(n<0)")
	}
	return func(g *Generator) { g.workers = n }
}

// New validates cfg and returns a Generator for it.
func New(cfg config.Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:     cfg,
		sampler: cfg.Sampler(),
		logger:  zap.NewNop(),
		workers: cfg.Dataset.Workers,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.metrics == nil {
		g.metrics = NewMetrics()
	}
	if g.workers == 0 {
		g.workers = runtime.GOMAXPROCS(0)
	}

	return g, nil
}

// Metrics returns the sink the Generator reports to.
func (g *Generator) Metrics() *Metrics { return g.metrics }

// Entry is one generated scenario with its questions.
type Entry struct {
	Scenario  *scenario.Scenario
	Questions []question.Instance
}

// Batch is the result of a run, in index order.
type Batch struct {
	Entries []Entry
	Report  Report
}

// Scenarios returns the generated scenarios in index order.
func (b *Batch) Scenarios() []*scenario.Scenario {
	out := make([]*scenario.Scenario, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = e.Scenario
	}

	return out
}

// Questions returns every question in scenario index order.
func (b *Batch) Questions() []question.Instance {
	var out []question.Instance
	for _, e := range b.Entries {
		out = append(out, e.Questions...)
	}

	return out
}

// slot is the per-index result written by exactly one goroutine.
type slot struct {
	entry    Entry
	attempts int
	err      error
}

// Run generates dataset.num_scenarios scenarios.
//
// Difficulties are assigned by config.Plan, seeded with the run seed. Skipped
// indices are reported, not returned as errors; Run fails only on
// configuration-class errors or when ctx ends.
func (g *Generator) Run(ctx context.Context) (*Batch, error) {
	start := time.Now()
	n := g.cfg.Dataset.NumScenarios
	plan := g.cfg.Plan(rng.New(g.cfg.Meta.Seed), n)
	slots := make([]slot, len(plan))

	g.logger.Info("generation started",
		zap.Int("scenarios", n),
		zap.Int("questions_per_scenario", g.cfg.Dataset.QuestionsPerScenario),
		zap.Int("workers", g.workers),
		zap.Int64("seed", g.cfg.Meta.Seed),
	)

	// gctx ends when Wait returns; only the caller's ctx decides the outcome.
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i := range plan {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			began := time.Now()
			entry, attempts, err := g.generate(gctx, i, plan[i])
			g.metrics.duration.Observe(time.Since(began).Seconds())
			if err != nil && fatal(err) {
				return err
			}
			slots[i] = slot{entry: entry, attempts: attempts, err: err}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch := &Batch{Report: Report{Requested: n}}
	for i, s := range slots {
		batch.Report.Attempts += s.attempts
		if s.err != nil {
			batch.Report.skip(i)
			g.metrics.scenarios.WithLabelValues("skipped", plan[i]).Inc()
			g.logger.Warn("scenario skipped",
				zap.Int("index", i),
				zap.String("difficulty", plan[i]),
				zap.Error(s.err),
			)
			continue
		}
		batch.Entries = append(batch.Entries, s.entry)
		batch.Report.add(s.entry)
		g.metrics.scenarios.WithLabelValues("generated", plan[i]).Inc()
	}
	batch.Report.Elapsed = time.Since(start)

	g.logger.Info("generation finished",
		zap.Int("generated", batch.Report.Generated),
		zap.Int("skipped", batch.Report.Skipped),
		zap.Int("questions", batch.Report.Questions),
		zap.Duration("elapsed", batch.Report.Elapsed),
	)

	return batch, nil
}

// Generate builds the scenario at index with the given difficulty, retrying
// up to generation.max_scenario_attempts times with fresh sub-seeds.
func (g *Generator) Generate(ctx context.Context, index int, difficulty string) (Entry, error) {
	e, _, err := g.generate(ctx, index, difficulty)

	return e, err
}

func (g *Generator) generate(ctx context.Context, index int, difficulty string) (Entry, int, error) {
	if _, ok := g.cfg.Difficulty.Templates[difficulty]; !ok {
		return Entry{}, 0, fmt.Errorf("generator: difficulty %q: %w", difficulty, config.ErrInvalidConfig)
	}

	var last error
	attempt := 0
	for ; attempt < g.cfg.Generation.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Entry{}, attempt, err
		}
		src := rng.New(rng.Derive(g.cfg.Meta.Seed, index, attempt))
		entry, stage, err := g.attempt(ctx, src, index, attempt, difficulty)
		if err == nil {
			return entry, attempt + 1, nil
		}
		if fatal(err) {
			return Entry{}, attempt + 1, err
		}
		g.metrics.attempts.WithLabelValues(stage).Inc()
		g.logger.Debug("scenario attempt failed",
			zap.Int("index", index),
			zap.Int("attempt", attempt),
			zap.String("stage", stage),
			zap.Error(err),
		)
		last = err
	}

	return Entry{}, attempt, fmt.Errorf("generator: scenario %d after %d attempts: %w: %w", index, attempt, ErrScenarioGeneration, last)
}

// attempt runs one seeded build: agents and objects, topology, inventories,
// simulation, metrics, validation and questions. stage names the failing step.
func (g *Generator) attempt(ctx context.Context, src *rng.Source, index, attempt int, difficulty string) (Entry, string, error) {
	cfg := g.cfg
	t := cfg.Difficulty.Templates[difficulty]

	names := scenario.SampleNames(src, cfg.AgentPool, src.IntRange(t.Agents.Min, t.Agents.Max))
	objects := scenario.SampleObjects(src, cfg.ObjectPool(), src.IntRange(t.ObjectTypes.Min, t.ObjectTypes.Max))

	topologies := cfg.TopologiesFor(len(names))
	if len(topologies) == 0 {
		return Entry{}, "topology", fmt.Errorf("generator: no enabled topology for %d agents: %w", len(names), config.ErrInvalidConfig)
	}
	topo := rng.Pick(src, topologies)
	layout, err := builder.BuildTopology(topo, names, cfg.BuilderOptions(src, t)...)
	if err != nil {
		return Entry{}, "topology", err
	}

	initial := scenario.SampleInventories(src, names, objects, cfg.InventoryParams(difficulty))
	out, err := scenario.Simulate(src, layout.Graph, objects, initial, cfg.Quantities(t))
	if err != nil {
		return Entry{}, "simulation", err
	}

	m, err := metrics.Compute(layout.Graph, append(cfg.MetricsOptions(), metrics.WithContext(ctx))...)
	if err != nil {
		return Entry{}, "metrics", err
	}

	sc := &scenario.Scenario{
		ID:                 scenario.NewID(cfg.Meta.Seed, index),
		Index:              index,
		Seed:               src.Seed(),
		Attempt:            attempt,
		Difficulty:         difficulty,
		Agents:             scenario.BuildAgents(names, initial, out.Final),
		Transfers:          out.Transfers,
		ObjectTypes:        objects,
		Topology:           topo,
		TopologyBestEffort: layout.BestEffort,
		Metrics:            m,
		SkippedEdges:       out.Skipped,
	}
	sc.Complexity = complexity.Scenario(cfg.Complexity.Weights, complexity.ShapeOf(sc))
	if err := scenario.Validate(sc); err != nil {
		return Entry{}, "validation", err
	}

	qs, err := g.sampler.SampleN(src, sc, cfg.Dataset.QuestionsPerScenario)
	if err != nil {
		return Entry{}, "questions", err
	}

	g.metrics.complexity.Observe(sc.Complexity)
	for _, q := range qs {
		g.metrics.questions.WithLabelValues(q.Type.String(), q.Pattern.String()).Inc()
		if q.Fallback {
			g.metrics.fallbacks.Inc()
		}
	}
	if len(out.Skipped) > 0 {
		g.logger.Debug("edges skipped by simulation",
			zap.String("scenario", sc.ID),
			zap.Int("skipped", len(out.Skipped)),
		)
	}

	return Entry{Scenario: sc, Questions: qs}, "", nil
}

// fatal reports errors that abort the run instead of skipping a scenario.
func fatal(err error) bool {
	return errors.Is(err, config.ErrInvalidConfig) ||
		builder.IsConfiguration(err) ||
		errors.Is(err, question.ErrNoQuestionTypes) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
