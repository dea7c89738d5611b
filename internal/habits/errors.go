package habits

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Validation errors for habits supplied outside the form (flags, files).
// Compare with errors.Is.
var (
	// ErrChargesPerDayOutOfRange indicates chargesPerDay is outside 1..6.
	ErrChargesPerDayOutOfRange = constError("charges per day out of range")

	// ErrPlugInOutOfRange indicates plugInPercent is outside 0..50.
	ErrPlugInOutOfRange = constError("plug-in percent out of range")

	// ErrUnplugOutOfRange indicates unplugPercent is outside 70..100.
	ErrUnplugOutOfRange = constError("unplug percent out of range")

	// ErrPercentStep indicates a percentage that is not a multiple of the slider step.
	ErrPercentStep = constError("percent is not a multiple of 5")

	// ErrPlugInNotBelowUnplug indicates plugInPercent >= unplugPercent.
	ErrPlugInNotBelowUnplug = constError("plug-in percent must be below unplug percent")

	// ErrUnknownChargingTime indicates an unrecognised charging time.
	ErrUnknownChargingTime = constError("unknown charging time")

	// ErrUnknownPhoneAge indicates an unrecognised phone age.
	ErrUnknownPhoneAge = constError("unknown phone age")

	// ErrNotWholeNumber indicates a fractional value for an integer field.
	ErrNotWholeNumber = constError("value is not a whole number")

	// ErrDuplicateKey indicates two input keys naming the same field.
	ErrDuplicateKey = constError("habit given more than once")
)
