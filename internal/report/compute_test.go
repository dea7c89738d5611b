package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonsense/internal/habits"
	"github.com/rshade/carbonsense/internal/report"
)

func habitsWith(charges, plugIn, unplug int) habits.ChargingHabits {
	h := habits.Defaults()
	h.ChargesPerDay = charges
	h.PlugInPercent = plugIn
	h.UnplugPercent = unplug
	return h
}

func TestCompute_Scenarios(t *testing.T) {
	t.Run("one evening charge to full", func(t *testing.T) {
		h := habits.ChargingHabits{
			ChargesPerDay: 1,
			ChargingTime:  habits.ChargingTimeEvening,
			PlugInPercent: 20,
			UnplugPercent: 100,
			PhoneAge:      habits.PhoneAgeOneToTwoYears,
		}
		r := report.Compute(h)

		assert.Equal(t, h, r.Habits)
		assert.InDelta(t, 8.0, r.DailyEmissionGrams, 1e-9)
		assert.InDelta(t, 240.0, r.MonthlyEmissionGrams, 1e-9)
		assert.InDelta(t, 2.92, r.YearlyEmissionKg, 1e-9)
		assert.InDelta(t, -33.333, r.ComparisonPercent, 0.001)
		assert.Equal(t, "33", report.FormatPercent(r.ComparisonPercent))
		assert.False(t, r.IsOptimalRange)
		assert.False(t, r.IsOvercharging)
	})

	t.Run("three charges in the optimal window", func(t *testing.T) {
		r := report.Compute(habitsWith(3, 20, 80))

		assert.InDelta(t, 24.0, r.DailyEmissionGrams, 1e-9)
		assert.InDelta(t, 100.0, r.ComparisonPercent, 1e-9)
		assert.True(t, r.IsOptimalRange)
		assert.False(t, r.IsOvercharging)
	})

	t.Run("two charges to full", func(t *testing.T) {
		r := report.Compute(habitsWith(2, 20, 100))

		assert.True(t, r.IsOvercharging)
	})
}

func TestCompute_Formulas(t *testing.T) {
	for charges := habits.MinChargesPerDay; charges <= habits.MaxChargesPerDay; charges++ {
		r := report.Compute(habitsWith(charges, 20, 80))

		daily := float64(charges) * report.CO2PerChargeGrams
		assert.InDelta(t, daily, r.DailyEmissionGrams, 1e-9, "charges=%d", charges)
		assert.InDelta(t, daily*30, r.MonthlyEmissionGrams, 1e-9, "charges=%d", charges)
		assert.InDelta(t, daily*365/1000, r.YearlyEmissionKg, 1e-9, "charges=%d", charges)
		assert.InDelta(t, r.YearlyEmissionKg*4, r.DrivingEquivalentKm, 1e-9, "charges=%d", charges)
		assert.InDelta(t, 12.0, r.AverageDailyEmissionGrams, 1e-9)
		assert.InDelta(t, (daily-12)/12*100, r.ComparisonPercent, 1e-9, "charges=%d", charges)

		// One charge is the only value below the average.
		assert.Equal(t, charges > 1, r.AboveAverage(), "charges=%d", charges)
	}
}

func TestCompute_IsPure(t *testing.T) {
	h := habitsWith(4, 10, 90)
	require.Equal(t, report.Compute(h), report.Compute(h))
	assert.Equal(t, habitsWith(4, 10, 90), h)
}

func TestIsOptimalRange(t *testing.T) {
	tests := []struct {
		plugIn, unplug int
		want           bool
	}{
		{20, 80, true},
		{50, 70, true},
		{15, 80, false},
		{20, 85, false},
		{0, 100, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, report.IsOptimalRange(tt.plugIn, tt.unplug),
			"plugIn=%d unplug=%d", tt.plugIn, tt.unplug)
	}
}

func TestIsOvercharging(t *testing.T) {
	tests := []struct {
		unplug, charges int
		want            bool
	}{
		{100, 1, false},
		{100, 2, true},
		{100, 6, true},
		{90, 5, false},
		{95, 6, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, report.IsOvercharging(tt.unplug, tt.charges),
			"unplug=%d charges=%d", tt.unplug, tt.charges)
	}
}
