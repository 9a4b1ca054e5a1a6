package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/awpgen/dataset"
	"github.com/katalvlaran/awpgen/generator"
)

var genFlags struct {
	out         string
	seed        int64
	scenarios   int
	questions   int
	workers     int
	compress    bool
	metricsFile string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dataset",
	Long: `Generates scenarios and questions and writes them to the output directory
as scenarios.jsonl and questions.jsonl (zstd-compressed with --compress),
plus report.json with run counts and distribution statistics.

Example:
  awpgen generate --config awpgen.yaml --out data --seed 7 --workers 8`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genFlags.out, "out", "o", "", "output directory (overrides dataset.output_dir)")
	f.Int64Var(&genFlags.seed, "seed", 0, "run seed (overrides meta.seed)")
	f.IntVarP(&genFlags.scenarios, "scenarios", "n", 0, "number of scenarios (overrides dataset.num_scenarios)")
	f.IntVarP(&genFlags.questions, "questions", "q", 0, "questions per scenario (overrides dataset.questions_per_scenario)")
	f.IntVarP(&genFlags.workers, "workers", "w", 0, "parallel workers, 0 for one per CPU (overrides dataset.workers)")
	f.BoolVar(&genFlags.compress, "compress", false, "zstd-compress the JSONL files (overrides dataset.compress)")
	f.StringVar(&genFlags.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
}

type runReport struct {
	Run      generator.Report `json:"run"`
	Analysis dataset.Analysis `json:"analysis"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Dataset.OutputDir = genFlags.out
	}
	if flags.Changed("seed") {
		cfg.Meta.Seed = genFlags.seed
	}
	if flags.Changed("scenarios") {
		cfg.Dataset.NumScenarios = genFlags.scenarios
	}
	if flags.Changed("questions") {
		cfg.Dataset.QuestionsPerScenario = genFlags.questions
	}
	if flags.Changed("workers") {
		cfg.Dataset.Workers = genFlags.workers
	}
	if flags.Changed("compress") {
		cfg.Dataset.Compress = genFlags.compress
	}

	metrics := generator.NewMetrics()
	gen, err := generator.New(cfg, generator.WithLogger(logger), generator.WithMetrics(metrics))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	batch, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	w, err := dataset.NewWriter(cfg.Dataset.OutputDir, cfg.Dataset.Compress)
	if err != nil {
		return err
	}
	for _, e := range batch.Entries {
		if err := w.WriteScenario(e.Scenario); err != nil {
			_ = w.Close()
			return err
		}
		if err := w.WriteQuestions(e.Questions...); err != nil {
			_ = w.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	report := runReport{
		Run:      batch.Report,
		Analysis: dataset.Analyze(batch.Scenarios(), batch.Questions(), cfg.Complexity.Targets),
	}
	if err := w.WriteReport(report); err != nil {
		return err
	}
	if genFlags.metricsFile != "" {
		if err := metrics.WriteTextfile(genFlags.metricsFile); err != nil {
			return err
		}
	}

	logger.Info("dataset written",
		zap.String("dir", cfg.Dataset.OutputDir),
		zap.Bool("compressed", cfg.Dataset.Compress),
	)
	fmt.Fprintln(cmd.OutOrStdout(), batch.Report)

	return nil
}
