package report

import (
	"fmt"

	"github.com/rshade/carbonsense/internal/habits"
)

// Advisories returns the habit-specific messages for r.
//
// The overcharging warning is independent of the range messages and comes
// first when present. Exactly one of the range suggestion and range praise
// is always included.
func (r Report) Advisories() []Advisory {
	advisories := make([]Advisory, 0, 2) //nolint:mnd // At most two advisories.

	if r.IsOvercharging {
		advisories = append(advisories, Advisory{
			Kind: AdvisoryOvercharging,
			Icon: "⚠️",
			Message: "You're charging to 100% multiple times a day. This not only increases energy " +
				"consumption but can also degrade your battery faster, potentially shortening your " +
				"phone's lifespan.",
		})
	}

	if r.IsOptimalRange {
		advisories = append(advisories, Advisory{
			Kind: AdvisoryRangePraise,
			Icon: "✨",
			Message: "Excellent! You're charging in the optimal range (20-80%), which is great for " +
				"battery longevity and energy efficiency.",
		})
	} else {
		advisories = append(advisories, Advisory{
			Kind: AdvisoryRangeSuggestion,
			Icon: "💡",
			Message: fmt.Sprintf("Your charging range (%d%% to %d%%) could be optimized. Keeping your "+
				"battery between 20-80%% helps maintain battery health and reduces unnecessary energy use.",
				r.Habits.PlugInPercent, r.Habits.UnplugPercent),
		})
	}

	return advisories
}

// Narrative returns the "What This Means" paragraph for r.
func (r Report) Narrative() string {
	unit := "times"
	if r.Habits.ChargesPerDay == 1 {
		unit = "time"
	}
	return fmt.Sprintf("Charging your phone %d %s per day generates approximately %sg of CO₂ daily. "+
		"Over a year, that's %skg, roughly equivalent to driving a car for %s kilometers.",
		r.Habits.ChargesPerDay, unit,
		FormatGrams(r.DailyEmissionGrams),
		FormatKg(r.YearlyEmissionKg),
		FormatKm(r.DrivingEquivalentKm))
}

// Recommendations returns the static tips shown with every report.
func Recommendations() []Recommendation {
	return []Recommendation{
		{
			Title: "Charge Between 20-80%",
			Description: "This range extends battery life and reduces energy waste from overcharging. " +
				"Unplug when you hit 80%.",
		},
		{
			Title: "Avoid Overnight Charging",
			Description: "Leaving your phone plugged in all night wastes energy. " +
				"Charge before bed and unplug when full.",
		},
		{
			Title: "Use Energy Saver Mode",
			Description: "Enable low power mode to reduce battery drain and decrease how often " +
				"you need to charge.",
		},
		{
			Title: "Reduce App Usage",
			Description: "Close background apps and lower screen brightness to minimize power " +
				"consumption throughout the day.",
		},
		{
			Title: "Recycle Responsibly",
			Description: "When upgrading, recycle your old device properly. E-waste contains valuable " +
				"materials and harmful substances.",
		},
		{
			Title: "Keep Your Phone Longer",
			Description: "The most eco-friendly phone is the one you already have. Extend its life " +
				"with good charging habits.",
		},
	}
}

// Facts returns the awareness figures shown on the home screen.
func Facts() []Fact {
	return []Fact{
		{
			Title:  "Per Charge",
			Figure: fmt.Sprintf("~%s grams CO₂", FormatGrams(CO2PerChargeGrams)),
			Detail: "Charging a smartphone once emits approximately 8 grams of carbon dioxide",
		},
		{
			Title:  "Global Impact",
			Figure: "1.5% of emissions",
			Detail: "Digital devices contribute about 1.5% of global greenhouse gas emissions",
		},
		{
			Title:  "Your Power",
			Figure: "Make a difference",
			Detail: "Smart charging habits can reduce your carbon footprint by up to 30%",
		},
	}
}

// Decorative illustrations for the home and results screens.
//
//nolint:gochecknoglobals // Static decorative assets.
var (
	HomeIllustration = Illustration{
		URL: "https://images.unsplash.com/photo-1673433106882-c80d94df8b46?fit=max&fm=jpg&q=80&w=1080",
		Alt: "Smartphone charging",
	}
	ResultsIllustration = Illustration{
		URL: "https://images.unsplash.com/photo-1594267238613-80da343fc886?fit=max&fm=jpg&q=80&w=1080",
		Alt: "Earth sustainability",
	}
)

// Summary returns a one-line description of the habits behind r, used in
// logs and the table renderer.
func Summary(h habits.ChargingHabits) string {
	return fmt.Sprintf("%s per day, %s, %d%% → %d%%, phone %s",
		habits.ChargesPerDayLabel(h.ChargesPerDay), h.ChargingTime.Label(),
		h.PlugInPercent, h.UnplugPercent, h.PhoneAge.Label())
}
