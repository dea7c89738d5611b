package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Display precisions.
const (
	kgPrecision      = 2
	drivingPrecision = 1
)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the specified precision and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	return groupIntPart(formatted)
}

// FormatGrams formats a gram figure without forcing a precision: integers
// print without decimals, anything else keeps its shortest exact form.
func FormatGrams(g float64) string {
	return groupIntPart(strconv.FormatFloat(g, 'f', -1, 64))
}

// FormatKg formats a kilogram figure to two decimals.
func FormatKg(kg float64) string {
	return FormatFloat(kg, kgPrecision)
}

// FormatKm formats the driving equivalent to one decimal.
func FormatKm(km float64) string {
	return FormatFloat(km, drivingPrecision)
}

// FormatPercent formats the magnitude of a percentage with no decimals.
func FormatPercent(p float64) string {
	return FormatFloat(math.Abs(p), 0)
}

// groupIntPart adds thousand separators to the integer part of a plain
// decimal string, leaving the fraction untouched.
func groupIntPart(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	grouped := FormatNumber(n)
	if intPart == "-0" {
		grouped = "-0"
	}
	if !hasFrac {
		return grouped
	}
	return grouped + "." + frac
}

// ComparisonText describes how the daily figure compares with the average,
// e.g. "33% less CO₂ than the average user (12g/day)".
func ComparisonText(r Report) string {
	direction := "less"
	if r.AboveAverage() {
		direction = "more"
	}
	return fmt.Sprintf("%s%% %s CO₂ than the average user (%sg/day)",
		FormatPercent(r.ComparisonPercent), direction, FormatGrams(r.AverageDailyEmissionGrams))
}
