package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// OutputFormat selects how a report is written by Render.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// tabPadding is the column padding for the table renderer.
const tabPadding = 2

// ErrUnsupportedFormat indicates an unknown output format.
const ErrUnsupportedFormat = constError("unsupported output format")

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ParseOutputFormat validates s as an output format.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputNDJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want table, json or ndjson)", ErrUnsupportedFormat, s)
	}
}

// Render writes r to w in the given format.
func Render(w io.Writer, format OutputFormat, r Report) error {
	switch format {
	case OutputTable:
		return RenderTable(w, r)
	case OutputJSON:
		return RenderJSON(w, r)
	case OutputNDJSON:
		return RenderNDJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// RenderTable writes a human-readable report.
func RenderTable(w io.Writer, r Report) error {
	var sb strings.Builder

	sb.WriteString("Your Charging Carbon Report\n")
	sb.WriteString(Summary(r.Habits))
	sb.WriteString("\n\n")

	tw := tabwriter.NewWriter(&sb, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	fmt.Fprintln(tw, "------\t-----")
	fmt.Fprintf(tw, "Daily Emissions\t%sg CO₂\n", FormatGrams(r.DailyEmissionGrams))
	fmt.Fprintf(tw, "Monthly Emissions\t%sg CO₂\n", FormatGrams(r.MonthlyEmissionGrams))
	fmt.Fprintf(tw, "Yearly Emissions\t%skg CO₂\n", FormatKg(r.YearlyEmissionKg))
	fmt.Fprintf(tw, "Average User\t%sg CO₂/day\n", FormatGrams(r.AverageDailyEmissionGrams))
	fmt.Fprintf(tw, "Driving Equivalent\t%s km\n", FormatKm(r.DrivingEquivalentKm))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("rendering metrics table: %w", err)
	}

	sb.WriteString("\nHow You Compare\n")
	sb.WriteString("  You emit " + ComparisonText(r) + "\n")

	sb.WriteString("\nWhat This Means\n")
	sb.WriteString("  " + r.Narrative() + "\n")
	for _, a := range r.Advisories() {
		sb.WriteString("  " + a.Icon + " " + a.Message + "\n")
	}

	sb.WriteString("\nImprove Your Charging Habits\n")
	for _, rec := range Recommendations() {
		sb.WriteString("  - " + rec.Title + ": " + rec.Description + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// jsonOutput is the document written by RenderJSON.
type jsonOutput struct {
	Report          Report           `json:"report"`
	Comparison      string           `json:"comparison"`
	Narrative       string           `json:"narrative"`
	Advisories      []Advisory       `json:"advisories"`
	Recommendations []Recommendation `json:"recommendations"`
}

// RenderJSON writes r as a single indented JSON document.
func RenderJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(jsonOutput{
		Report:          r,
		Comparison:      ComparisonText(r),
		Narrative:       r.Narrative(),
		Advisories:      r.Advisories(),
		Recommendations: Recommendations(),
	}); err != nil {
		return fmt.Errorf("encoding report JSON: %w", err)
	}
	return nil
}

// ndjsonRecord is one line written by RenderNDJSON.
type ndjsonRecord struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Value   *float64 `json:"value,omitempty"`
	Unit    string   `json:"unit,omitempty"`
	Flag    *bool    `json:"flag,omitempty"`
	Message string   `json:"message,omitempty"`
}

// RenderNDJSON writes one JSON object per metric, flag and advisory.
func RenderNDJSON(w io.Writer, r Report) error {
	metric := func(name string, v float64, unit string) ndjsonRecord {
		return ndjsonRecord{Type: "metric", Name: name, Value: &v, Unit: unit}
	}
	flag := func(name string, v bool) ndjsonRecord {
		return ndjsonRecord{Type: "flag", Name: name, Flag: &v}
	}

	records := []ndjsonRecord{
		metric("daily_emission", r.DailyEmissionGrams, "g"),
		metric("monthly_emission", r.MonthlyEmissionGrams, "g"),
		metric("yearly_emission", r.YearlyEmissionKg, "kg"),
		metric("average_daily_emission", r.AverageDailyEmissionGrams, "g"),
		metric("comparison", r.ComparisonPercent, "%"),
		metric("driving_equivalent", r.DrivingEquivalentKm, "km"),
		flag("optimal_range", r.IsOptimalRange),
		flag("overcharging", r.IsOvercharging),
	}
	for _, a := range r.Advisories() {
		records = append(records, ndjsonRecord{Type: "advisory", Name: a.Kind.String(), Message: a.Message})
	}

	encoder := json.NewEncoder(w)
	for _, rec := range records {
		if err := encoder.Encode(rec); err != nil {
			return fmt.Errorf("encoding report NDJSON: %w", err)
		}
	}
	return nil
}
