package main

import (
	"fmt"

	"textgen/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceInit bool

// configCmd groups configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the textgen config file",
}

// configInitCmd writes the effective configuration to --config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current settings to the config file",
	Long: `Writes the effective configuration (defaults, environment overrides and
any flags given on this command line) to the --config path.

Example:
  textgen config init
  textgen --delay 500ms --seed 7 config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := cfg.Save(configPath, forceInit); err != nil {
		return fmt.Errorf("config init: %w", err)
	}
	logging.For(logger, cfg.Logging, logging.CategoryBoot).Debug("config written", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}
