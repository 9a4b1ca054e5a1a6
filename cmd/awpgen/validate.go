package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/awpgen/complexity"
	"github.com/katalvlaran/awpgen/dataset"
)

var datasetDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every record of a dataset",
	Long: `Checks each record against the JSON schemas, re-verifies the scenario
invariants, recomputes every answer and re-derives it from the stated facts
of its masked presentation. Use the --config the dataset was generated with.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		res, err := dataset.Validate(datasetDir, cfg.AnswerEngine())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, issue := range res.Issues {
			fmt.Fprintln(out, issue)
		}
		fmt.Fprintf(out, "%d scenarios, %d questions, %d issues\n", res.Scenarios, res.Questions, len(res.Issues))
		if !res.OK() {
			logger.Warn("dataset failed validation", zap.String("dir", datasetDir), zap.Int("issues", len(res.Issues)))
			return fmt.Errorf("%d invalid records", len(res.Issues))
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print distribution statistics of a dataset as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := complexity.DefaultTargets()
		if configPath != "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			targets = cfg.Complexity.Targets
		}
		r, err := dataset.Open(datasetDir)
		if err != nil {
			return err
		}
		scenarios, err := r.Scenarios()
		if err != nil {
			return err
		}
		questions, err := r.Questions()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dataset.Analyze(scenarios, questions, targets))
	},
}

func init() {
	for _, c := range []*cobra.Command{validateCmd, analyzeCmd} {
		c.Flags().StringVarP(&datasetDir, "dir", "d", "output", "dataset directory")
	}
}
