package report

// Emission model constants.
//
// Per-charge emissions are a fixed estimate; the average is a hardcoded
// population figure, never derived from user data.
const (
	// CO2PerChargeGrams is grams of CO2 emitted by one full smartphone charge.
	CO2PerChargeGrams = 8.0

	// AverageChargesPerDay is the charges per day of an average user.
	AverageChargesPerDay = 1.5

	// AverageDailyEmissionGrams is the baseline used for comparisons (12 g/day).
	AverageDailyEmissionGrams = AverageChargesPerDay * CO2PerChargeGrams

	// DrivingKmPerKg converts kg CO2 into the illustrative car kilometres.
	DrivingKmPerKg = 4.0
)

// Period conversion constants.
const (
	DaysPerMonth = 30
	DaysPerYear  = 365
	GramsPerKg   = 1000.0
	percentScale = 100.0
)

// Charging range classification thresholds.
const (
	// OptimalPlugInMinPercent is the lowest plug-in level inside the optimal window.
	OptimalPlugInMinPercent = 20

	// OptimalUnplugMaxPercent is the highest unplug level inside the optimal window.
	OptimalUnplugMaxPercent = 80

	// FullChargePercent is the unplug level treated as charging to full.
	FullChargePercent = 100
)
