package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/carbonsense/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after environment and flag overrides.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  # Show configuration
  carbonsense config show

  # Show configuration with an environment override applied
  CARBONSENSE_OUTPUT_FORMAT=json carbonsense config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			cmd.Printf("# %s\n", cfg.ConfigPath())
			cmd.Print(cfg.String())
			return nil
		},
	}
}
