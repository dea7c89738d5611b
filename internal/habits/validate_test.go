package habits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargingHabits_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(h *ChargingHabits)
		wantErr []error
	}{
		{
			name:   "defaults are valid",
			modify: func(*ChargingHabits) {},
		},
		{
			name:   "widest valid range",
			modify: func(h *ChargingHabits) { h.PlugInPercent = 50; h.UnplugPercent = 70 },
		},
		{
			name:    "charges per day zero",
			modify:  func(h *ChargingHabits) { h.ChargesPerDay = 0 },
			wantErr: []error{ErrChargesPerDayOutOfRange},
		},
		{
			name:    "charges per day seven",
			modify:  func(h *ChargingHabits) { h.ChargesPerDay = 7 },
			wantErr: []error{ErrChargesPerDayOutOfRange},
		},
		{
			name:    "plug-in above slider max",
			modify:  func(h *ChargingHabits) { h.PlugInPercent = 55 },
			wantErr: []error{ErrPlugInOutOfRange},
		},
		{
			name:    "unplug below slider min",
			modify:  func(h *ChargingHabits) { h.UnplugPercent = 65 },
			wantErr: []error{ErrUnplugOutOfRange},
		},
		{
			name:    "percent off step",
			modify:  func(h *ChargingHabits) { h.PlugInPercent = 22 },
			wantErr: []error{ErrPercentStep},
		},
		{
			name:    "unknown enums",
			modify:  func(h *ChargingHabits) { h.ChargingTime = "Noon"; h.PhoneAge = "10 years" },
			wantErr: []error{ErrUnknownChargingTime, ErrUnknownPhoneAge},
		},
		{
			name:    "plug-in not below unplug",
			modify:  func(h *ChargingHabits) { h.PlugInPercent = 100; h.UnplugPercent = 100 },
			wantErr: []error{ErrPlugInOutOfRange, ErrPlugInNotBelowUnplug},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Defaults()
			tt.modify(&h)

			err := h.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestParseChargingTime(t *testing.T) {
	tests := []struct {
		in   string
		want ChargingTime
	}{
		{"Morning", ChargingTimeMorning},
		{"afternoon", ChargingTimeAfternoon},
		{"Late Night", ChargingTimeLateNight},
		{"late-night", ChargingTimeLateNight},
		{"LateNight", ChargingTimeLateNight},
		{" RANDOM ", ChargingTimeRandom},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChargingTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseChargingTime("dawn")
	assert.ErrorIs(t, err, ErrUnknownChargingTime)
}

func TestParsePhoneAge(t *testing.T) {
	tests := []struct {
		in   string
		want PhoneAge
	}{
		{"Less than 1 year", PhoneAgeLessThan1Year},
		{"LessThan1Year", PhoneAgeLessThan1Year},
		{"1-2 years", PhoneAgeOneToTwoYears},
		{"OneToTwoYears", PhoneAgeOneToTwoYears},
		{"2-3 years", PhoneAgeTwoToThreeYears},
		{"three-to-four-years", PhoneAgeThreeToFourYears},
		{"4+ years", PhoneAgeFourPlusYears},
		{"FourPlusYears", PhoneAgeFourPlusYears},
		{"<1", PhoneAgeLessThan1Year},
		{"1-2", PhoneAgeOneToTwoYears},
		{"2-3", PhoneAgeTwoToThreeYears},
		{"3-4", PhoneAgeThreeToFourYears},
		{"4+", PhoneAgeFourPlusYears},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePhoneAge(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePhoneAge("vintage")
	assert.ErrorIs(t, err, ErrUnknownPhoneAge)
}
