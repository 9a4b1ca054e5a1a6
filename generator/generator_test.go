package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/awpgen/config"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/scenario"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func smallConfig() config.Config {
	c := config.Default()
	c.Dataset.NumScenarios = 12
	c.Dataset.QuestionsPerScenario = 4
	c.Dataset.Workers = 3
	c.Difficulty.Distribution = map[string]int{"simple": 1, "moderate": 1}

	return c
}

func run(t *testing.T, c config.Config, opts ...Option) *Batch {
	t.Helper()
	g, err := New(c, opts...)
	require.NoError(t, err)
	b, err := g.Run(context.Background())
	require.NoError(t, err)

	return b
}

func TestRun_IndependentOfWorkers(t *testing.T) {
	c := smallConfig()
	one := run(t, c, WithWorkers(1))
	many := run(t, c, WithWorkers(6))

	require.Len(t, one.Entries, 12)
	if diff := cmp.Diff(one.Entries, many.Entries); diff != "" {
		t.Fatalf("worker count changed the batch (-1 +6):\n%s", diff)
	}
}

func TestRun_EveryRecordHolds(t *testing.T) {
	c := smallConfig()
	b := run(t, c)
	eng := c.AnswerEngine()

	assert.Equal(t, 12, b.Report.Generated)
	assert.Zero(t, b.Report.Skipped)
	assert.Equal(t, 48, b.Report.Questions)

	ids := map[string]struct{}{}
	for i, sc := range b.Scenarios() {
		assert.Equal(t, i, sc.Index, "entries stay in index order")
		require.NoError(t, scenario.Validate(sc))
		assert.Contains(t, []string{"simple", "moderate"}, sc.Difficulty)
		assert.Positive(t, sc.Complexity)
		ids[sc.ID] = struct{}{}
	}
	assert.Len(t, ids, 12)

	for _, e := range b.Entries {
		for _, q := range e.Questions {
			got, err := eng.Compute(e.Scenario, q.Type, q.Target)
			require.NoError(t, err, "%s %+v", q.Type, q.Target)
			assert.Equal(t, q.Answer, got)
			require.NoError(t, masking.Verify(q.Presentation, q.Question(), eng))
			assert.Equal(t, e.Scenario.ID, q.ScenarioID)
		}
	}
}

func TestRun_SkipsUnsatisfiableScenarios(t *testing.T) {
	c := smallConfig()
	c.Dataset.NumScenarios = 3
	c.Difficulty.Distribution = map[string]int{"simple": 1}
	c.Generation.Inventory.BufferRange = config.Bounds{Min: 0, Max: 0}
	c.Generation.Inventory.MaxInitialBase = 1
	c.Generation.MinTransfer = 20
	c.Generation.MaxAttempts = 2

	core, logs := observer.New(zapcore.DebugLevel)
	g, err := New(c, WithLogger(zap.New(core)))
	require.NoError(t, err)

	b, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, b.Entries)
	assert.Equal(t, 3, b.Report.Skipped)
	assert.Equal(t, []int{0, 1, 2}, b.Report.SkippedIndices)
	assert.Equal(t, 6, b.Report.Attempts)
	assert.Equal(t, 3, logs.FilterMessage("scenario skipped").Len())
	assert.Equal(t, 6, logs.FilterMessage("scenario attempt failed").Len())

	_, err = g.Generate(context.Background(), 0, "simple")
	require.ErrorIs(t, err, ErrScenarioGeneration)
	require.ErrorIs(t, err, scenario.ErrSimulation)
}

func TestRun_Canceled(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_LeavesParentContextLive(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)

	ctx := context.Background()
	for range 2 {
		b, err := g.Run(ctx)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Len(t, b.Entries, 12)
	}
}

func TestRun_ParentCanceledMidRun(t *testing.T) {
	c := smallConfig()
	c.Dataset.NumScenarios = 200
	g, err := New(c, WithWorkers(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		cancel()
	}()
	b, err := g.Run(ctx)
	if err == nil {
		// The run may finish before the cancel lands.
		assert.Equal(t, 200, b.Report.Requested)
		assert.Equal(t, 200, b.Report.Generated+b.Report.Skipped)
		return
	}
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, b)
}

func TestGenerate_UnknownDifficulty(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), 0, "legendary")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestGenerate_Reproducible(t *testing.T) {
	g, err := New(smallConfig())
	require.NoError(t, err)

	a, err := g.Generate(context.Background(), 5, "moderate")
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), 5, "moderate")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, scenario.NewID(42, 5), a.Scenario.ID)
}

func TestNew_InvalidConfig(t *testing.T) {
	c := smallConfig()
	c.Graph.Topologies = []string{"hexagon"}
	_, err := New(c)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { WithLogger(nil) })
	assert.Panics(t, func() { WithMetrics(nil) })
	assert.Panics(t, func() { WithWorkers(-1) })
}

func TestMetrics_Textfile(t *testing.T) {
	m := NewMetrics()
	b := run(t, smallConfig(), WithMetrics(m))
	require.NotEmpty(t, b.Entries)

	path := filepath.Join(t.TempDir(), "awpgen.prom")
	require.NoError(t, m.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(raw)
	assert.Contains(t, text, "awpgen_scenarios_total{difficulty=")
	assert.Contains(t, text, `outcome="generated"`)
	assert.Contains(t, text, "awpgen_questions_total{")
	assert.Contains(t, text, "awpgen_scenario_complexity_count 12")
}

func TestReport_String(t *testing.T) {
	r := Report{Requested: 4, Generated: 3, Skipped: 1, Questions: 30, Fallbacks: 2, Attempts: 6}
	assert.Equal(t, "generated 3/4 scenarios (1 skipped), 30 questions (2 fallbacks), 6 attempts in 0s", r.String())
}
