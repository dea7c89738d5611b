package habits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	t.Run("empty map returns base", func(t *testing.T) {
		got, err := FromMap(Defaults(), nil)
		require.NoError(t, err)
		assert.Equal(t, Defaults(), got)
	})

	t.Run("decodes typed values", func(t *testing.T) {
		got, err := FromMap(Defaults(), map[string]any{
			"chargesPerDay": 3,
			"chargingTime":  "Morning",
			"plugInPercent": 30,
			"unplugPercent": 80,
			"phoneAge":      "4+ years",
		})
		require.NoError(t, err)
		assert.Equal(t, ChargingHabits{
			ChargesPerDay: 3,
			ChargingTime:  ChargingTimeMorning,
			PlugInPercent: 30,
			UnplugPercent: 80,
			PhoneAge:      PhoneAgeFourPlusYears,
		}, got)
	})

	t.Run("decodes string values and key aliases", func(t *testing.T) {
		got, err := FromMap(Defaults(), map[string]any{
			"charges-per-day": "2",
			"time":            "late-night",
			"plug_in":         "25",
			"unplug":          "90",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, got.ChargesPerDay)
		assert.Equal(t, ChargingTimeLateNight, got.ChargingTime)
		assert.Equal(t, 25, got.PlugInPercent)
		assert.Equal(t, 90, got.UnplugPercent)
		assert.Equal(t, DefaultPhoneAge, got.PhoneAge, "absent keys keep the base value")
	})

	t.Run("unknown key is an error", func(t *testing.T) {
		_, err := FromMap(Defaults(), map[string]any{"brightness": 50})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "brightness")
	})

	t.Run("unknown enum value is an error", func(t *testing.T) {
		_, err := FromMap(Defaults(), map[string]any{"phoneAge": "vintage"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrUnknownPhoneAge.Error())
	})

	t.Run("non-numeric count is an error", func(t *testing.T) {
		_, err := FromMap(Defaults(), map[string]any{"chargesPerDay": "often"})
		require.Error(t, err)
	})

	t.Run("fractional numbers are an error", func(t *testing.T) {
		for _, values := range []map[string]any{
			{"chargesPerDay": 2.7},
			{"plugInPercent": 22.5},
		} {
			got, err := FromMap(Defaults(), values)
			require.Error(t, err, "values=%v", values)
			assert.Contains(t, err.Error(), ErrNotWholeNumber.Error())
			assert.Equal(t, Defaults(), got)
		}
	})

	t.Run("whole floats from yaml are accepted", func(t *testing.T) {
		got, err := FromMap(Defaults(), map[string]any{"chargesPerDay": 3.0, "unplug": 80.0})
		require.NoError(t, err)
		assert.Equal(t, 3, got.ChargesPerDay)
		assert.Equal(t, 80, got.UnplugPercent)
	})

	t.Run("two aliases for one field are an error", func(t *testing.T) {
		for range 10 {
			_, err := FromMap(Defaults(), map[string]any{"charges": 2, "chargesPerDay": 3})
			require.ErrorIs(t, err, ErrDuplicateKey)
		}
	})

	t.Run("does not validate ranges", func(t *testing.T) {
		got, err := FromMap(Defaults(), map[string]any{"chargesPerDay": 9})
		require.NoError(t, err)
		assert.ErrorIs(t, got.Validate(), ErrChargesPerDayOutOfRange)
	})
}
