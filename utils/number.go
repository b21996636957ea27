package utils

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// DecodeWeak decodes a loosely-typed request map into a typed struct.
// Older mobile clients send numeric fields as strings; accept both
func DecodeWeak(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// ToInt64 - converts a decoded JSON value to int64, accepting numbers and strings
func ToInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, err
		}
		return int64(parsed), nil
	}
	return 0, fmt.Errorf("Unable to convert %v to int64", value)
}
