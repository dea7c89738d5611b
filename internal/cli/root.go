// Package cli wires the carbonsense commands together with cobra.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonsense/internal/config"
	"github.com/rshade/carbonsense/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonsense CLI.
// Without a subcommand it starts the interactive calculator.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "carbonsense",
		Short: "Smartphone charging carbon calculator",
		Long: `CarbonSense: understand the carbon footprint of how you charge your phone.

Run without arguments to start the interactive calculator, or use
"carbonsense report" to compute a report from flags or a habits file.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: runCalculator,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.carbonsense/config.yaml)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.AddCommand(NewRunCmd(), NewReportCmd(), newConfigCmd())

	return cmd
}

// loadConfig reads .env, the config file and environment overrides, then
// applies the --no-color flag.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		return nil, err
	}

	flagPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.ResolvePath(flagPath, lookupEnv))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(lookupEnv)

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.TUI.NoColor = true
	}
	return cfg, nil
}

const rootCmdExample = `  # Start the interactive calculator
  carbonsense

  # Report for three charges a day, unplugging at 80%
  carbonsense report --charges-per-day 3 --unplug 80

  # Report from a habits file as JSON
  carbonsense report --habits-file habits.yaml --output json

  # Override a single value
  carbonsense report --set phoneAge="4+ years"

  # Create the default configuration
  carbonsense config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
