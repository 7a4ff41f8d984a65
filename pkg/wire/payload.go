package wire

import (
	"encoding/json"
	"fmt"
)

// Payload is an untyped key/value wire structure.
// Keys are the service's camelCase schema names.
type Payload map[string]any

// AsPayload accepts the map shapes produced by JSON/YAML decoders.
func AsPayload(v any) (Payload, bool) {
	switch m := v.(type) {
	case Payload:
		return m, true
	case map[string]any:
		return Payload(m), true
	default:
		return nil, false
	}
}

// Has reports whether key is present with a non-nil value.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Put stores *v under key when v is set.
func Put[T any](p Payload, key string, v *T) {
	if v != nil {
		p[key] = *v
	}
}

// PutString stores v under key when it is not blank.
func PutString(p Payload, key, v string) {
	if v != "" {
		p[key] = v
	}
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value or the zero value.
func Deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}

// Normalize round-trips v through JSON so that typed payloads
// (Payload, []Payload, structs) compare equal to freshly decoded ones.
func Normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return out, nil
}
