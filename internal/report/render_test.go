package report_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonsense/internal/habits"
	"github.com/rshade/carbonsense/internal/report"
)

func TestParseOutputFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", " ndjson "} {
		_, err := report.ParseOutputFormat(in)
		require.NoError(t, err, in)
	}

	_, err := report.ParseOutputFormat("xml")
	require.ErrorIs(t, err, report.ErrUnsupportedFormat)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.OutputTable, report.Compute(habits.Defaults())))

	out := buf.String()
	assert.Contains(t, out, "Your Charging Carbon Report")
	assert.Contains(t, out, "METRIC")
	assert.Contains(t, out, "240g CO₂")
	assert.Contains(t, out, "2.92kg CO₂")
	assert.Contains(t, out, "33% less CO₂ than the average user")
	assert.Contains(t, out, "Avoid Overnight Charging")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.OutputJSON, report.Compute(habitsWith(2, 20, 100))))

	var doc struct {
		Report struct {
			DailyEmissionGrams float64 `json:"dailyEmissionGrams"`
			IsOvercharging     bool    `json:"isOvercharging"`
			Habits             struct {
				ChargesPerDay int `json:"chargesPerDay"`
			} `json:"habits"`
		} `json:"report"`
		Advisories []struct {
			Kind string `json:"kind"`
		} `json:"advisories"`
		Recommendations []json.RawMessage `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.InDelta(t, 16.0, doc.Report.DailyEmissionGrams, 1e-9)
	assert.True(t, doc.Report.IsOvercharging)
	assert.Equal(t, 2, doc.Report.Habits.ChargesPerDay)
	require.Len(t, doc.Advisories, 2)
	assert.Equal(t, "overcharging", doc.Advisories[0].Kind)
	assert.Len(t, doc.Recommendations, 6)
}

func TestRenderNDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.OutputNDJSON, report.Compute(habitsWith(3, 20, 80))))

	names := map[string]map[string]any{}
	scanner := bufio.NewScanner(strings.NewReader(buf.String()))
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		names[rec["name"].(string)] = rec
	}

	require.Contains(t, names, "daily_emission")
	assert.InDelta(t, 24.0, names["daily_emission"]["value"], 1e-9)
	assert.Equal(t, "g", names["daily_emission"]["unit"])
	assert.Equal(t, true, names["optimal_range"]["flag"])
	assert.Equal(t, false, names["overcharging"]["flag"])
	assert.Equal(t, "advisory", names["range_praise"]["type"])
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := report.Render(&buf, report.OutputFormat("yaml"), report.Compute(habits.Defaults()))
	require.ErrorIs(t, err, report.ErrUnsupportedFormat)
	assert.Empty(t, buf.String())
}
