// Command awpgen generates and checks arithmetic word-problem datasets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/awpgen/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger = zap.NewNop()
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

var rootCmd = &cobra.Command{
	Use:   "awpgen",
	Short: "Arithmetic word-problem dataset generator",
	Long: `awpgen lays multi-agent object transfers over graph topologies, derives
questions of 18 types from them, masks part of each story while keeping the
answer derivable, and scores every question for complexity.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			level.SetLevel(zapcore.DebugLevel)
		}
		cfg.Level = level
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration (defaults when empty)")

	rootCmd.AddCommand(generateCmd, validateCmd, analyzeCmd, configCmd)
}

// loadConfig reads --config, or returns the defaults. Unless --verbose is
// set the log level follows meta.log_level.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
	}
	if !verbose {
		level.SetLevel(cfg.Level())
	}

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
