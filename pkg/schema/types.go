package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "bool").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// NonBlankType validates strings that contain something other than whitespace.
type NonBlankType struct{}

func (t *NonBlankType) Name() string { return "non-blank" }

func (t *NonBlankType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("expected non-blank string")
	}
	return nil
}

// BoolType validates strict boolean values. Strings such as "true" are rejected.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// EnumType validates strings drawn from a fixed set.
type EnumType struct {
	values []string
}

func (t *EnumType) Name() string {
	return "enum(" + strings.Join(t.values, "|") + ")"
}

func (t *EnumType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if !slices.Contains(t.values, s) {
		return fmt.Errorf("expected one of %s, got %q", strings.Join(t.values, ", "), s)
	}
	return nil
}

// Values returns the accepted values in declaration order.
func (t *EnumType) Values() []string {
	return slices.Clone(t.values)
}

// MapType validates nested key/value objects.
type MapType struct{}

func (t *MapType) Name() string { return "object" }

func (t *MapType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("expected object, got %T", value)
	}
	return nil
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// NonBlank creates a validator for strings that must carry content.
func NonBlank() Type { return &NonBlankType{} }

// Bool creates a strict boolean type validator.
func Bool() Type { return &BoolType{} }

// Enum creates a validator accepting only the given strings.
func Enum(values ...string) *EnumType {
	return &EnumType{values: slices.Clone(values)}
}

// Map creates a nested object validator.
func Map() Type { return &MapType{} }
