package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/awpgen/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var printDefaultCmd = &cobra.Command{
	Use:   "print-default",
	Short: "Print the default configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := config.Default().Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}

var checkConfigCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Load and validate a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.Load(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(printDefaultCmd, checkConfigCmd)
}
