package habits

import "strconv"

// Field identifies one of the five form fields.
type Field int

const (
	// FieldChargesPerDay is the charges-per-day dropdown.
	FieldChargesPerDay Field = iota
	// FieldChargingTime is the charging time dropdown.
	FieldChargingTime
	// FieldPlugInPercent is the plug-in percentage slider.
	FieldPlugInPercent
	// FieldUnplugPercent is the unplug percentage slider.
	FieldUnplugPercent
	// FieldPhoneAge is the phone age dropdown.
	FieldPhoneAge

	// NumFields is the number of form fields.
	NumFields = 5
)

// Fields lists the form fields in display order.
//
//nolint:gochecknoglobals // Fixed field order for the input screen.
var Fields = []Field{
	FieldChargesPerDay,
	FieldChargingTime,
	FieldPlugInPercent,
	FieldUnplugPercent,
	FieldPhoneAge,
}

// String returns the field's wire key.
func (f Field) String() string {
	switch f {
	case FieldChargesPerDay:
		return "chargesPerDay"
	case FieldChargingTime:
		return "chargingTime"
	case FieldPlugInPercent:
		return "plugInPercent"
	case FieldUnplugPercent:
		return "unplugPercent"
	case FieldPhoneAge:
		return "phoneAge"
	default:
		return "unknown"
	}
}

// Question returns the prompt shown above the field.
func (f Field) Question() string {
	switch f {
	case FieldChargesPerDay:
		return "How many times do you charge your phone per day?"
	case FieldChargingTime:
		return "When do you usually charge?"
	case FieldPlugInPercent:
		return "At what % do you usually plug in?"
	case FieldUnplugPercent:
		return "At what % do you unplug?"
	case FieldPhoneAge:
		return "How old is your phone?"
	default:
		return ""
	}
}

// Hint returns the helper text shown under the field, if any.
func (f Field) Hint() string {
	switch f {
	case FieldPlugInPercent:
		return "Lower is better for battery health"
	case FieldUnplugPercent:
		return "80% is optimal for battery longevity"
	default:
		return ""
	}
}

// IsSlider reports whether the field is edited with a slider.
func (f Field) IsSlider() bool {
	return f == FieldPlugInPercent || f == FieldUnplugPercent
}

// Draft is the in-progress form state. The zero value is not useful; start
// from NewDraft.
type Draft struct {
	habits ChargingHabits
}

// NewDraft returns a draft holding the default habits.
func NewDraft() Draft {
	return Draft{habits: Defaults()}
}

// Habits returns a copy of the values currently held by the draft.
func (d Draft) Habits() ChargingHabits {
	return d.habits
}

// WithChargesPerDay returns a draft with chargesPerDay clamped to the dropdown range.
func (d Draft) WithChargesPerDay(n int) Draft {
	d.habits.ChargesPerDay = clamp(n, MinChargesPerDay, MaxChargesPerDay)
	return d
}

// WithChargingTime returns a draft with the charging time set. Unknown values
// leave the draft unchanged.
func (d Draft) WithChargingTime(c ChargingTime) Draft {
	if c.IsValid() {
		d.habits.ChargingTime = c
	}
	return d
}

// WithPlugInPercent returns a draft with plugInPercent snapped to the slider step.
func (d Draft) WithPlugInPercent(p int) Draft {
	d.habits.PlugInPercent = snap(p, MinPlugInPercent, MaxPlugInPercent, PercentStep)
	return d
}

// WithUnplugPercent returns a draft with unplugPercent snapped to the slider step.
func (d Draft) WithUnplugPercent(p int) Draft {
	d.habits.UnplugPercent = snap(p, MinUnplugPercent, MaxUnplugPercent, PercentStep)
	return d
}

// WithPhoneAge returns a draft with the phone age set. Unknown values leave
// the draft unchanged.
func (d Draft) WithPhoneAge(p PhoneAge) Draft {
	if p.IsValid() {
		d.habits.PhoneAge = p
	}
	return d
}

// Adjust moves field by delta widget steps. Dropdowns wrap around their
// option list; sliders stop at their bounds.
func (d Draft) Adjust(field Field, delta int) Draft {
	switch field {
	case FieldChargesPerDay:
		n := wrap(d.habits.ChargesPerDay-MinChargesPerDay+delta, MaxChargesPerDay-MinChargesPerDay+1)
		return d.WithChargesPerDay(n + MinChargesPerDay)
	case FieldChargingTime:
		i := wrap(indexOf(ChargingTimes, d.habits.ChargingTime)+delta, len(ChargingTimes))
		return d.WithChargingTime(ChargingTimes[i])
	case FieldPlugInPercent:
		return d.WithPlugInPercent(d.habits.PlugInPercent + delta*PercentStep)
	case FieldUnplugPercent:
		return d.WithUnplugPercent(d.habits.UnplugPercent + delta*PercentStep)
	case FieldPhoneAge:
		i := wrap(indexOf(PhoneAges, d.habits.PhoneAge)+delta, len(PhoneAges))
		return d.WithPhoneAge(PhoneAges[i])
	default:
		return d
	}
}

// Value returns the display value of field.
func (d Draft) Value(field Field) string {
	h := d.habits
	switch field {
	case FieldChargesPerDay:
		return ChargesPerDayLabel(h.ChargesPerDay)
	case FieldChargingTime:
		return h.ChargingTime.Label()
	case FieldPlugInPercent:
		return percentLabel(h.PlugInPercent)
	case FieldUnplugPercent:
		return percentLabel(h.UnplugPercent)
	case FieldPhoneAge:
		return h.PhoneAge.Label()
	default:
		return ""
	}
}

// Submit freezes the draft into a payload. It cannot fail: every setter
// keeps the draft inside the widget bounds.
func (d Draft) Submit() ChargingHabits {
	return d.habits
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// snap rounds v down to the nearest step above lo, then clamps it.
func snap(v, lo, hi, step int) int {
	v = clamp(v, lo, hi)
	return lo + ((v-lo)/step)*step
}

// wrap returns i modulo n, always non-negative.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func percentLabel(p int) string {
	return strconv.Itoa(p) + "%"
}
