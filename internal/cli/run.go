package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonsense/internal/config"
	"github.com/rshade/carbonsense/internal/tui"
)

// ErrNotATerminal is returned when the calculator is started without a TTY.
const ErrNotATerminal = constError("the interactive calculator requires a terminal")

type constError string

func (e constError) Error() string { return string(e) }

// NewRunCmd creates the run command, which starts the interactive calculator.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive calculator",
		Long: `Starts the three-screen calculator: learn about charging emissions,
answer five questions about your habits, and read your carbon report.`,
		Args: cobra.NoArgs,
		RunE: runCalculator,
	}
}

// runCalculator runs the Bubble Tea program until the user quits.
func runCalculator(cmd *cobra.Command, _ []string) error {
	if !tui.IsTTY() {
		return fmt.Errorf("%w; use \"carbonsense report\" for non-interactive output", ErrNotATerminal)
	}

	cfg := config.GetGlobalConfig()
	if cfg.TUI.NoColor {
		tui.DisableColor()
	}

	ctx := quietContext(cmd.Context())
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if cfg.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Debug().Ctx(cmd.Context()).Bool("alt_screen", cfg.TUI.AltScreen).Msg("starting calculator")

	p := tea.NewProgram(tui.NewAppModel(ctx), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive calculator: %w", err)
	}
	return nil
}
