package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonsense/internal/config"
	"github.com/rshade/carbonsense/internal/habits"
	"github.com/rshade/carbonsense/internal/report"
	"github.com/rshade/carbonsense/internal/tui"
)

// Limits on --set overrides.
const (
	maxOverrides       = 16
	maxOverrideKeyLen  = 64
	maxOverrideValLen  = 64
	keyValueParts      = 2
	maxHabitsFileBytes = 64 * 1024
)

// ReportParams holds the parameters for the report command.
// Exported for testing.
type ReportParams struct {
	ChargesPerDay int
	ChargingTime  string
	PlugIn        int
	Unplug        int
	PhoneAge      string
	HabitsFile    string
	Set           []string
	Output        string
}

// NewReportCmd creates the report command, which computes a carbon report
// without the interactive calculator.
func NewReportCmd() *cobra.Command {
	var params ReportParams

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute a carbon report from charging habits",
		Long: `Computes the charging carbon report non-interactively.

Habits start from the calculator defaults (1 charge a day, evening, 20% to
100%, 1-2 year old phone). A habits file replaces any of them, explicit flags
replace the file, and --set overrides replace everything.`,
		Example: `  # Defaults
  carbonsense report

  # Three charges a day in the optimal window
  carbonsense report --charges-per-day 3 --plug-in 20 --unplug 80

  # From a YAML file, as NDJSON
  carbonsense report --habits-file habits.yaml --output ndjson

  # Loose keys and values are accepted by --set
  carbonsense report --set charges=4 --set time="late night"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeReport(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.ChargesPerDay, "charges-per-day", habits.DefaultChargesPerDay,
		fmt.Sprintf("charges per day (%d-%d)", habits.MinChargesPerDay, habits.MaxChargesPerDay))
	cmd.Flags().StringVar(&params.ChargingTime, "charging-time", string(habits.DefaultChargingTime),
		"usual charging time (morning, afternoon, evening, late night, random)")
	cmd.Flags().IntVar(&params.PlugIn, "plug-in", habits.DefaultPlugInPercent,
		fmt.Sprintf("battery %% when plugging in (%d-%d, step %d)",
			habits.MinPlugInPercent, habits.MaxPlugInPercent, habits.PercentStep))
	cmd.Flags().IntVar(&params.Unplug, "unplug", habits.DefaultUnplugPercent,
		fmt.Sprintf("battery %% when unplugging (%d-%d, step %d)",
			habits.MinUnplugPercent, habits.MaxUnplugPercent, habits.PercentStep))
	cmd.Flags().StringVar(&params.PhoneAge, "phone-age", string(habits.DefaultPhoneAge),
		"phone age (<1, 1-2, 2-3, 3-4, 4+ years)")
	cmd.Flags().StringVar(&params.HabitsFile, "habits-file", "", "YAML file with charging habits")
	cmd.Flags().StringArrayVar(&params.Set, "set", nil, "habit override key=value (repeatable)")
	cmd.Flags().StringVarP(&params.Output, "output", "o", "", "output format: table, json or ndjson (default from config)")

	return cmd
}

// executeReport resolves the habits, computes the report and renders it.
func executeReport(cmd *cobra.Command, params ReportParams) error {
	ctx := cmd.Context()

	h, err := resolveHabits(cmd, params)
	if err != nil {
		return err
	}
	if err = h.Validate(); err != nil {
		return fmt.Errorf("invalid charging habits: %w", err)
	}

	outputFormat := params.Output
	if outputFormat == "" {
		outputFormat = config.GetDefaultOutputFormat()
	}
	format, err := report.ParseOutputFormat(outputFormat)
	if err != nil {
		return err
	}

	r := report.Compute(h)
	logger.Debug().Ctx(ctx).
		Str("habits", report.Summary(h)).
		Float64("daily_grams", r.DailyEmissionGrams).
		Str("output", string(format)).
		Msg("report computed")

	out := cmd.OutOrStdout()
	if format != report.OutputTable {
		return report.Render(out, format, r)
	}

	switch tui.DetectOutputMode(false, config.GetGlobalConfig().TUI.NoColor, false) {
	case tui.OutputModeStyled, tui.OutputModeInteractive:
		_, err = fmt.Fprint(out, tui.RenderReportSummary(r, tui.TerminalWidth()))
		return err
	case tui.OutputModePlain:
		fallthrough
	default:
		return report.RenderTable(out, r)
	}
}

// resolveHabits layers defaults, the habits file, changed flags and --set
// overrides, in that order.
func resolveHabits(cmd *cobra.Command, params ReportParams) (habits.ChargingHabits, error) {
	h := habits.Defaults()

	if params.HabitsFile != "" {
		values, err := readHabitsFile(params.HabitsFile)
		if err != nil {
			return h, err
		}
		if h, err = habits.FromMap(h, values); err != nil {
			return h, fmt.Errorf("habits file %s: %w", params.HabitsFile, err)
		}
	}

	flagValues := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("charges-per-day") {
		flagValues[habits.FieldChargesPerDay.String()] = params.ChargesPerDay
	}
	if flags.Changed("charging-time") {
		flagValues[habits.FieldChargingTime.String()] = params.ChargingTime
	}
	if flags.Changed("plug-in") {
		flagValues[habits.FieldPlugInPercent.String()] = params.PlugIn
	}
	if flags.Changed("unplug") {
		flagValues[habits.FieldUnplugPercent.String()] = params.Unplug
	}
	if flags.Changed("phone-age") {
		flagValues[habits.FieldPhoneAge.String()] = params.PhoneAge
	}
	h, err := habits.FromMap(h, flagValues)
	if err != nil {
		return h, fmt.Errorf("invalid flag: %w", err)
	}

	overrides, err := ParseOverrides(params.Set)
	if err != nil {
		return h, err
	}
	setValues := make(map[string]any, len(overrides))
	for k, v := range overrides {
		setValues[k] = v
	}
	if h, err = habits.FromMap(h, setValues); err != nil {
		return h, fmt.Errorf("invalid --set override: %w", err)
	}

	return h, nil
}

// readHabitsFile loads a YAML mapping of habit keys to values.
func readHabitsFile(path string) (map[string]any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading habits file: %w", err)
	}
	if info.Size() > maxHabitsFileBytes {
		return nil, fmt.Errorf("habits file %s is too large: %d bytes (max %d)", path, info.Size(), maxHabitsFileBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading habits file: %w", err)
	}

	var values map[string]any
	if err = yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing habits file %s: %w", path, err)
	}
	return values, nil
}

// ParseOverrides parses --set key=value flags into a map.
// Exported for testing.
func ParseOverrides(sets []string) (map[string]string, error) {
	if len(sets) > maxOverrides {
		return nil, fmt.Errorf("too many overrides: %d (max %d)", len(sets), maxOverrides)
	}

	overrides := make(map[string]string, len(sets))
	for _, s := range sets {
		parts := strings.SplitN(s, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("invalid override format %q: expected key=value", s)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		if key == "" {
			return nil, fmt.Errorf("override key cannot be empty in %q", s)
		}
		if len(key) > maxOverrideKeyLen {
			return nil, fmt.Errorf("override key too long: %d bytes (max %d)", len(key), maxOverrideKeyLen)
		}
		if len(value) > maxOverrideValLen {
			return nil, fmt.Errorf("override value too large for key %q: %d bytes (max %d)",
				key, len(value), maxOverrideValLen)
		}
		overrides[key] = value
	}
	return overrides, nil
}
