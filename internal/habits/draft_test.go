package habits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	h := Defaults()

	assert.Equal(t, 1, h.ChargesPerDay)
	assert.Equal(t, ChargingTimeEvening, h.ChargingTime)
	assert.Equal(t, 20, h.PlugInPercent)
	assert.Equal(t, 100, h.UnplugPercent)
	assert.Equal(t, PhoneAgeOneToTwoYears, h.PhoneAge)
	assert.NoError(t, h.Validate())
}

func TestDraft_SettersReturnNewValue(t *testing.T) {
	original := NewDraft()
	changed := original.WithChargesPerDay(4)

	assert.Equal(t, 1, original.Habits().ChargesPerDay, "original draft must not change")
	assert.Equal(t, 4, changed.Habits().ChargesPerDay)
}

func TestDraft_SubmitIsDetached(t *testing.T) {
	d := NewDraft().WithPlugInPercent(30)
	submitted := d.Submit()

	d = d.WithPlugInPercent(40)

	assert.Equal(t, 30, submitted.PlugInPercent)
	assert.Equal(t, 40, d.Habits().PlugInPercent)
}

func TestDraft_WithChargesPerDay(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"minimum", 1, 1},
		{"middle", 3, 3},
		{"maximum", 6, 6},
		{"below range clamps", 0, 1},
		{"above range clamps", 9, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDraft().WithChargesPerDay(tt.in).Habits().ChargesPerDay)
		})
	}
}

func TestDraft_PercentSnapping(t *testing.T) {
	t.Run("plug-in snaps to step and bounds", func(t *testing.T) {
		assert.Equal(t, 0, NewDraft().WithPlugInPercent(-10).Habits().PlugInPercent)
		assert.Equal(t, 25, NewDraft().WithPlugInPercent(27).Habits().PlugInPercent)
		assert.Equal(t, 50, NewDraft().WithPlugInPercent(75).Habits().PlugInPercent)
	})

	t.Run("unplug snaps to step and bounds", func(t *testing.T) {
		assert.Equal(t, 70, NewDraft().WithUnplugPercent(10).Habits().UnplugPercent)
		assert.Equal(t, 85, NewDraft().WithUnplugPercent(88).Habits().UnplugPercent)
		assert.Equal(t, 100, NewDraft().WithUnplugPercent(120).Habits().UnplugPercent)
	})
}

func TestDraft_EnumSettersIgnoreUnknownValues(t *testing.T) {
	d := NewDraft().WithChargingTime("Midnight").WithPhoneAge("ancient")

	assert.Equal(t, DefaultChargingTime, d.Habits().ChargingTime)
	assert.Equal(t, DefaultPhoneAge, d.Habits().PhoneAge)
}

func TestDraft_Adjust(t *testing.T) {
	t.Run("charges per day wraps", func(t *testing.T) {
		d := NewDraft().Adjust(FieldChargesPerDay, -1)
		assert.Equal(t, 6, d.Habits().ChargesPerDay)
		d = d.Adjust(FieldChargesPerDay, 1)
		assert.Equal(t, 1, d.Habits().ChargesPerDay)
	})

	t.Run("charging time cycles options", func(t *testing.T) {
		d := NewDraft().Adjust(FieldChargingTime, 1)
		assert.Equal(t, ChargingTimeLateNight, d.Habits().ChargingTime)
		d = d.Adjust(FieldChargingTime, 2)
		assert.Equal(t, ChargingTimeMorning, d.Habits().ChargingTime)
	})

	t.Run("sliders move by one step and stop at bounds", func(t *testing.T) {
		d := NewDraft().Adjust(FieldPlugInPercent, 1)
		assert.Equal(t, 25, d.Habits().PlugInPercent)

		d = NewDraft().Adjust(FieldUnplugPercent, 1)
		assert.Equal(t, 100, d.Habits().UnplugPercent)

		d = NewDraft().Adjust(FieldUnplugPercent, -1)
		assert.Equal(t, 95, d.Habits().UnplugPercent)
	})

	t.Run("phone age cycles options", func(t *testing.T) {
		d := NewDraft().Adjust(FieldPhoneAge, -1)
		assert.Equal(t, PhoneAgeLessThan1Year, d.Habits().PhoneAge)
		d = d.Adjust(FieldPhoneAge, -1)
		assert.Equal(t, PhoneAgeFourPlusYears, d.Habits().PhoneAge)
	})
}

func TestDraft_Value(t *testing.T) {
	d := NewDraft().WithChargesPerDay(6)

	assert.Equal(t, "6+ times", d.Value(FieldChargesPerDay))
	assert.Equal(t, "Evening (6 PM - 10 PM)", d.Value(FieldChargingTime))
	assert.Equal(t, "20%", d.Value(FieldPlugInPercent))
	assert.Equal(t, "100%", d.Value(FieldUnplugPercent))
	assert.Equal(t, "1-2 years", d.Value(FieldPhoneAge))
}

func TestChargesPerDayLabel(t *testing.T) {
	assert.Equal(t, "1 time", ChargesPerDayLabel(1))
	assert.Equal(t, "2 times", ChargesPerDayLabel(2))
	assert.Equal(t, "6+ times", ChargesPerDayLabel(6))
}

func TestField_Texts(t *testing.T) {
	for _, f := range Fields {
		assert.NotEmpty(t, f.Question(), f.String())
	}
	assert.True(t, FieldPlugInPercent.IsSlider())
	assert.False(t, FieldPhoneAge.IsSlider())
	assert.Empty(t, FieldChargesPerDay.Hint())
	assert.Len(t, Fields, NumFields)
}
