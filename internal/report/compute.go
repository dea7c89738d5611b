package report

import "github.com/rshade/carbonsense/internal/habits"

// Compute derives the emission report for h.
//
// It is total over every ChargingHabits value the form can produce and
// performs no validation.
func Compute(h habits.ChargingHabits) Report {
	daily := float64(h.ChargesPerDay) * CO2PerChargeGrams
	yearlyKg := daily * DaysPerYear / GramsPerKg

	return Report{
		Habits:                    h,
		DailyEmissionGrams:        daily,
		MonthlyEmissionGrams:      daily * DaysPerMonth,
		YearlyEmissionKg:          yearlyKg,
		AverageDailyEmissionGrams: AverageDailyEmissionGrams,
		ComparisonPercent:         (daily - AverageDailyEmissionGrams) / AverageDailyEmissionGrams * percentScale,
		IsOptimalRange:            IsOptimalRange(h.PlugInPercent, h.UnplugPercent),
		IsOvercharging:            IsOvercharging(h.UnplugPercent, h.ChargesPerDay),
		DrivingEquivalentKm:       yearlyKg * DrivingKmPerKg,
	}
}

// IsOptimalRange reports whether a plug-in/unplug pair stays inside the
// battery-friendly window.
func IsOptimalRange(plugInPercent, unplugPercent int) bool {
	return plugInPercent >= OptimalPlugInMinPercent && unplugPercent <= OptimalUnplugMaxPercent
}

// IsOvercharging reports whether the user charges to full more than once a day.
func IsOvercharging(unplugPercent, chargesPerDay int) bool {
	return unplugPercent == FullChargePercent && chargesPerDay > 1
}
