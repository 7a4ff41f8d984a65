package wire

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode maps a payload onto a struct tagged with `mapstructure:"camelKey"`.
// Decoding is strict: no weak typing, so "true" never becomes a bool.
// Null values leave pointer fields nil.
func Decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: false,
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
