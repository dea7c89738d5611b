// Package report derives carbon emission figures and advice from a user's
// charging habits.
//
// Compute is a pure, total function over habits.ChargingHabits. The rest of
// the package turns a Report into text: advisories, the narrative paragraph,
// static recommendations and the table/JSON/NDJSON renderers used by the CLI.
package report

import "github.com/rshade/carbonsense/internal/habits"

// Report holds the values derived from one habits submission.
type Report struct {
	// Habits is the payload the report was computed from.
	Habits habits.ChargingHabits `json:"habits"`

	// DailyEmissionGrams is chargesPerDay × 8.
	DailyEmissionGrams float64 `json:"dailyEmissionGrams"`

	// MonthlyEmissionGrams is the daily figure × 30.
	MonthlyEmissionGrams float64 `json:"monthlyEmissionGrams"`

	// YearlyEmissionKg is the daily figure × 365 / 1000.
	YearlyEmissionKg float64 `json:"yearlyEmissionKg"`

	// AverageDailyEmissionGrams is the fixed 12 g/day baseline.
	AverageDailyEmissionGrams float64 `json:"averageDailyEmissionGrams"`

	// ComparisonPercent is how far the daily figure is above (positive) or
	// below (negative) the baseline.
	ComparisonPercent float64 `json:"comparisonPercent"`

	// IsOptimalRange is true when charging stays inside the 20–80% window.
	IsOptimalRange bool `json:"isOptimalRange"`

	// IsOvercharging is true when charging to 100% more than once a day.
	IsOvercharging bool `json:"isOvercharging"`

	// DrivingEquivalentKm is the yearly figure × 4, for display only.
	DrivingEquivalentKm float64 `json:"drivingEquivalentKm"`
}

// AboveAverage reports whether the user emits more than the baseline.
func (r Report) AboveAverage() bool {
	return r.ComparisonPercent > 0
}

// AdvisoryKind identifies one of the advisory messages.
type AdvisoryKind int

const (
	// AdvisoryOvercharging warns about charging to 100% several times a day.
	AdvisoryOvercharging AdvisoryKind = iota
	// AdvisoryRangeSuggestion suggests moving into the optimal window.
	AdvisoryRangeSuggestion
	// AdvisoryRangePraise praises charging inside the optimal window.
	AdvisoryRangePraise
)

// String returns the advisory kind name.
func (k AdvisoryKind) String() string {
	switch k {
	case AdvisoryOvercharging:
		return "overcharging"
	case AdvisoryRangeSuggestion:
		return "range_suggestion"
	case AdvisoryRangePraise:
		return "range_praise"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name in JSON output.
func (k AdvisoryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Advisory is a habit-specific message shown with the report.
type Advisory struct {
	Kind    AdvisoryKind `json:"kind"`
	Icon    string       `json:"icon"`
	Message string       `json:"message"`
}

// Recommendation is one of the static tips shown under the report.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Fact is one of the awareness figures shown on the home screen.
type Fact struct {
	Title  string `json:"title"`
	Figure string `json:"figure"`
	Detail string `json:"detail"`
}

// Illustration is a decorative image. Terminals render the Alt text as a
// placeholder; the URL is informational only.
type Illustration struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}
