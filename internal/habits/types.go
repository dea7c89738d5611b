// Package habits models the smartphone charging habits collected by the
// input screen.
//
// ChargingHabits is the frozen payload handed to the report calculator.
// Draft is the immutable working copy edited one field at a time by the form;
// every setter returns a new Draft so the form never aliases a submitted value.
package habits

import "fmt"

// ChargingTime is the part of the day the user usually charges.
type ChargingTime string

// Charging time values. The string form matches the form's wire values.
const (
	ChargingTimeMorning   ChargingTime = "Morning"
	ChargingTimeAfternoon ChargingTime = "Afternoon"
	ChargingTimeEvening   ChargingTime = "Evening"
	ChargingTimeLateNight ChargingTime = "Late Night"
	ChargingTimeRandom    ChargingTime = "Random"
)

// ChargingTimes lists the dropdown options in display order.
//
//nolint:gochecknoglobals // Fixed option list for the charging time dropdown.
var ChargingTimes = []ChargingTime{
	ChargingTimeMorning,
	ChargingTimeAfternoon,
	ChargingTimeEvening,
	ChargingTimeLateNight,
	ChargingTimeRandom,
}

// Label returns the dropdown label including the hour range.
func (c ChargingTime) Label() string {
	switch c {
	case ChargingTimeMorning:
		return "Morning (6 AM - 12 PM)"
	case ChargingTimeAfternoon:
		return "Afternoon (12 PM - 6 PM)"
	case ChargingTimeEvening:
		return "Evening (6 PM - 10 PM)"
	case ChargingTimeLateNight:
		return "Late Night (10 PM - 6 AM)"
	case ChargingTimeRandom:
		return "Random times"
	default:
		return string(c)
	}
}

// IsValid reports whether c is one of the known charging times.
func (c ChargingTime) IsValid() bool {
	return indexOf(ChargingTimes, c) >= 0
}

// PhoneAge is the age bracket of the user's phone.
type PhoneAge string

// Phone age values. The string form matches the form's wire values.
const (
	PhoneAgeLessThan1Year    PhoneAge = "Less than 1 year"
	PhoneAgeOneToTwoYears    PhoneAge = "1-2 years"
	PhoneAgeTwoToThreeYears  PhoneAge = "2-3 years"
	PhoneAgeThreeToFourYears PhoneAge = "3-4 years"
	PhoneAgeFourPlusYears    PhoneAge = "4+ years"
)

// PhoneAges lists the dropdown options in display order.
//
//nolint:gochecknoglobals // Fixed option list for the phone age dropdown.
var PhoneAges = []PhoneAge{
	PhoneAgeLessThan1Year,
	PhoneAgeOneToTwoYears,
	PhoneAgeTwoToThreeYears,
	PhoneAgeThreeToFourYears,
	PhoneAgeFourPlusYears,
}

// Label returns the dropdown label.
func (p PhoneAge) Label() string {
	return string(p)
}

// IsValid reports whether p is one of the known phone ages.
func (p PhoneAge) IsValid() bool {
	return indexOf(PhoneAges, p) >= 0
}

// Widget bounds. The sliders and dropdowns of the form never produce values
// outside these ranges.
const (
	MinChargesPerDay = 1
	MaxChargesPerDay = 6

	MinPlugInPercent = 0
	MaxPlugInPercent = 50

	MinUnplugPercent = 70
	MaxUnplugPercent = 100

	// PercentStep is the slider step for both percentage fields.
	PercentStep = 5
)

// Default form values.
const (
	DefaultChargesPerDay = 1
	DefaultChargingTime  = ChargingTimeEvening
	DefaultPlugInPercent = 20
	DefaultUnplugPercent = 100
	DefaultPhoneAge      = PhoneAgeOneToTwoYears
)

// ChargingHabits is the five-field snapshot produced by the input screen.
type ChargingHabits struct {
	ChargesPerDay int          `json:"chargesPerDay" yaml:"chargesPerDay" mapstructure:"chargesPerDay"`
	ChargingTime  ChargingTime `json:"chargingTime"  yaml:"chargingTime"  mapstructure:"chargingTime"`
	PlugInPercent int          `json:"plugInPercent" yaml:"plugInPercent" mapstructure:"plugInPercent"`
	UnplugPercent int          `json:"unplugPercent" yaml:"unplugPercent" mapstructure:"unplugPercent"`
	PhoneAge      PhoneAge     `json:"phoneAge"      yaml:"phoneAge"      mapstructure:"phoneAge"`
}

// Defaults returns the habits the form starts with.
func Defaults() ChargingHabits {
	return ChargingHabits{
		ChargesPerDay: DefaultChargesPerDay,
		ChargingTime:  DefaultChargingTime,
		PlugInPercent: DefaultPlugInPercent,
		UnplugPercent: DefaultUnplugPercent,
		PhoneAge:      DefaultPhoneAge,
	}
}

// ChargesPerDayLabel renders a charges-per-day value the way the dropdown
// shows it ("1 time", "3 times", "6+ times").
func ChargesPerDayLabel(n int) string {
	switch {
	case n == 1:
		return "1 time"
	case n >= MaxChargesPerDay:
		return fmt.Sprintf("%d+ times", MaxChargesPerDay)
	default:
		return fmt.Sprintf("%d times", n)
	}
}

func indexOf[T comparable](options []T, v T) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}
