package habits

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// keyAliases maps normalised input keys onto the canonical field keys.
//
//nolint:gochecknoglobals // Fixed lookup table.
var keyAliases = map[string]string{
	"chargesperday": FieldChargesPerDay.String(),
	"charges":       FieldChargesPerDay.String(),
	"chargingtime":  FieldChargingTime.String(),
	"time":          FieldChargingTime.String(),
	"pluginpercent": FieldPlugInPercent.String(),
	"plugin":        FieldPlugInPercent.String(),
	"unplugpercent": FieldUnplugPercent.String(),
	"unplug":        FieldUnplugPercent.String(),
	"phoneage":      FieldPhoneAge.String(),
	"age":           FieldPhoneAge.String(),
}

// FromMap decodes loosely typed values onto base and returns the result.
//
// Keys may use camelCase, kebab-case or snake_case ("plugInPercent",
// "plug-in", "plug_in_percent"). Numbers may be given as strings and enum
// values in any spelling accepted by ParseChargingTime and ParsePhoneAge.
// Unknown keys, two keys naming the same field and fractional numbers for
// integer fields are errors. The result is not validated; call Validate.
func FromMap(base ChargingHabits, values map[string]any) (ChargingHabits, error) {
	if len(values) == 0 {
		return base, nil
	}

	canonical := make(map[string]any, len(values))
	for k, v := range values {
		key, ok := keyAliases[normalizeKey(k)]
		if !ok {
			return base, fmt.Errorf("unknown habit key %q", k)
		}
		if _, dup := canonical[key]; dup {
			return base, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		canonical[key] = v
	}

	result := base
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &result,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			wholeNumberDecodeHook,
			enumDecodeHook,
		),
	})
	if err != nil {
		return base, fmt.Errorf("creating habits decoder: %w", err)
	}

	if err = decoder.Decode(canonical); err != nil {
		return base, fmt.Errorf("decoding habits: %w", err)
	}
	return result, nil
}

// enumDecodeHook converts free-form strings into ChargingTime and PhoneAge.
func enumDecodeHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	s := reflect.ValueOf(data).String()

	switch to {
	case reflect.TypeOf(ChargingTime("")):
		return ParseChargingTime(s)
	case reflect.TypeOf(PhoneAge("")):
		return ParsePhoneAge(s)
	default:
		return data, nil
	}
}

// wholeNumberDecodeHook rejects fractional floats bound for int fields. YAML
// decodes "2.7" as float64 and weak typing would otherwise truncate it.
func wholeNumberDecodeHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
	default:
		return data, nil
	}

	v := reflect.ValueOf(data).Float()
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %v", ErrNotWholeNumber, v)
	}
	return int(v), nil
}
