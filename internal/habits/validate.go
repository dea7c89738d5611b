package habits

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks h against the form's widget bounds.
//
// The form itself can never produce an invalid payload, so Validate is only
// needed for habits that arrive from flags or files. All violations are
// reported together; each wraps one of the sentinel errors in this package.
func (h ChargingHabits) Validate() error {
	var errs []error

	if h.ChargesPerDay < MinChargesPerDay || h.ChargesPerDay > MaxChargesPerDay {
		errs = append(errs, fmt.Errorf("%w: got %d, want %d-%d",
			ErrChargesPerDayOutOfRange, h.ChargesPerDay, MinChargesPerDay, MaxChargesPerDay))
	}
	if !h.ChargingTime.IsValid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownChargingTime, h.ChargingTime))
	}
	if err := checkPercent("plug-in", h.PlugInPercent, MinPlugInPercent, MaxPlugInPercent,
		ErrPlugInOutOfRange); err != nil {
		errs = append(errs, err)
	}
	if err := checkPercent("unplug", h.UnplugPercent, MinUnplugPercent, MaxUnplugPercent,
		ErrUnplugOutOfRange); err != nil {
		errs = append(errs, err)
	}
	if h.PlugInPercent >= h.UnplugPercent {
		errs = append(errs, fmt.Errorf("%w: %d%% >= %d%%",
			ErrPlugInNotBelowUnplug, h.PlugInPercent, h.UnplugPercent))
	}
	if !h.PhoneAge.IsValid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownPhoneAge, h.PhoneAge))
	}

	return errors.Join(errs...)
}

func checkPercent(name string, v, lo, hi int, rangeErr error) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: got %d%%, want %d-%d%%", rangeErr, v, lo, hi)
	}
	if v%PercentStep != 0 {
		return fmt.Errorf("%s: %w: got %d%%", name, ErrPercentStep, v)
	}
	return nil
}

// normalizeKey lowercases s and strips spaces, dashes and underscores so
// "Late Night", "late-night" and "LateNight" compare equal.
func normalizeKey(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "", "+", "plus")
	return r.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// ParseChargingTime resolves a charging time from its wire value, Go-style
// name or kebab-case slug, case-insensitively.
func ParseChargingTime(s string) (ChargingTime, error) {
	key := normalizeKey(s)
	for _, c := range ChargingTimes {
		if normalizeKey(string(c)) == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChargingTime, s)
}

// phoneAgeAliases maps extra spellings onto phone ages.
//
//nolint:gochecknoglobals // Fixed lookup table.
var phoneAgeAliases = map[string]PhoneAge{
	"<1year":           PhoneAgeLessThan1Year,
	"<1":               PhoneAgeLessThan1Year,
	"lessthan1":        PhoneAgeLessThan1Year,
	"12":               PhoneAgeOneToTwoYears,
	"23":               PhoneAgeTwoToThreeYears,
	"34":               PhoneAgeThreeToFourYears,
	"4plus":            PhoneAgeFourPlusYears,
	"onetotwoyears":    PhoneAgeOneToTwoYears,
	"twotothreeyears":  PhoneAgeTwoToThreeYears,
	"threetofouryears": PhoneAgeThreeToFourYears,
	"fourplusyears":    PhoneAgeFourPlusYears,
}

// ParsePhoneAge resolves a phone age from its wire value ("1-2 years"), its
// Go-style name ("OneToTwoYears") or a slug ("4plus-years"), case-insensitively.
func ParsePhoneAge(s string) (PhoneAge, error) {
	key := normalizeKey(s)
	for _, p := range PhoneAges {
		if normalizeKey(string(p)) == key {
			return p, nil
		}
	}
	if p, ok := phoneAgeAliases[key]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPhoneAge, s)
}
