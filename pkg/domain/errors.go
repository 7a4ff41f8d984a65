package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyValue is returned when a required field is blank or absent.
var ErrEmptyValue = errors.New("empty value")

// ErrUnacceptableValue is returned when a value falls outside its enumerated or typed domain.
var ErrUnacceptableValue = errors.New("unacceptable value")

// ErrNonUniqueValue is returned when a collection that forbids duplicates receives one.
var ErrNonUniqueValue = errors.New("non-unique value")

// ErrNullReference is returned when a required collaborator (e.g. the transport) is missing.
var ErrNullReference = errors.New("null reference")

// ErrAssetNotFound is returned by transports when an asset cannot be resolved.
var ErrAssetNotFound = errors.New("asset not found")

// ValueError describes a single conversion or validation failure.
// Kind is one of the sentinel errors above and is exposed through Unwrap,
// so callers can match with errors.Is.
type ValueError struct {
	Property string // e.g. "PossibleValue"
	Field    string // wire key, e.g. "selectedByDefault"
	Value    any    // offending value, nil when absent
	Kind     error
	Reason   string
}

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("%s.%s: %s", e.Property, e.Field, e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %#v)", e.Value)
	}
	return msg
}

func (e *ValueError) Unwrap() error { return e.Kind }

// Empty builds an ErrEmptyValue failure.
func Empty(property, field string) error {
	return &ValueError{Property: property, Field: field, Kind: ErrEmptyValue}
}

// Unacceptable builds an ErrUnacceptableValue failure.
func Unacceptable(property, field string, value any, reason string) error {
	return &ValueError{Property: property, Field: field, Value: value, Kind: ErrUnacceptableValue, Reason: reason}
}

// NonUnique builds an ErrNonUniqueValue failure.
func NonUnique(property, field string, value any) error {
	return &ValueError{Property: property, Field: field, Value: value, Kind: ErrNonUniqueValue}
}

// NullReference builds an ErrNullReference failure for a missing collaborator.
func NullReference(property, collaborator string) error {
	return &ValueError{Property: property, Field: collaborator, Kind: ErrNullReference}
}
