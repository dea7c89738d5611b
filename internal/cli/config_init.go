package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonsense/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at
~/.carbonsense/config.yaml, or at the path given by --config or
CARBONSENSE_CONFIG.

An existing file is only replaced with --force, or after confirmation when
running in a terminal.`,
		Example: `  # Create configuration
  carbonsense config init

  # Create configuration, overwriting existing
  carbonsense config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initConfig writes the default configuration to the resolved config path.
func initConfig(cmd *cobra.Command, force bool) error {
	path := config.GetGlobalConfig().ConfigPath()
	if path == "" {
		return errors.New("cannot determine configuration path, use --config")
	}

	if !force {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			question := fmt.Sprintf("Configuration file %s already exists. Overwrite it?", path)
			if !Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), question).Accepted {
				return errors.New("configuration file already exists, use --force to overwrite")
			}
		case !os.IsNotExist(err):
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	cfg := config.New()
	cfg.SetConfigPath(path)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Debug().Ctx(cmd.Context()).Str("path", path).Msg("configuration initialized")
	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}
