package property

import (
	"strings"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// validate checks the required keys, then every other key that is present.
func validate(property string, s schema.Schema, p wire.Payload, required ...string) error {
	if err := schema.ValidateFields(s, p, required...); err != nil {
		return valueError(property, err)
	}
	if err := schema.ValidatePresent(s, p); err != nil {
		return valueError(property, err)
	}
	return nil
}

// valueError maps schema failures to the domain. A missing or blank value is
// EmptyValue and wins over a mistyped one.
func valueError(property string, err error) error {
	var unacceptable error
	for _, e := range schema.ValidationErrors(err) {
		ve := schema.FirstError(e)
		if ve == nil {
			continue
		}
		if s, ok := ve.Value.(string); ve.Value == nil || ok && blank(s) {
			return domain.Empty(property, ve.Key)
		}
		if unacceptable == nil {
			unacceptable = domain.Unacceptable(property, ve.Key, ve.Value, ve.Reason)
		}
	}
	if unacceptable == nil {
		return domain.Unacceptable(property, "", nil, err.Error())
	}
	return unacceptable
}

func decode(property string, p wire.Payload, out any) error {
	if err := wire.Decode(map[string]any(p), out); err != nil {
		return domain.Unacceptable(property, "", nil, err.Error())
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// payloadOf accepts nil (an absent payload) or a map shape.
func payloadOf(property, field string, v any) (wire.Payload, error) {
	if v == nil {
		return wire.Payload{}, nil
	}
	p, ok := wire.AsPayload(v)
	if !ok {
		return nil, domain.Unacceptable(property, field, v, "expected object")
	}
	return p, nil
}

// uniqueNonBlank enforces the rule shared by every multi-valued collection:
// with two or more entries, each must carry content and appear once.
func uniqueNonBlank(property, field string, values []string) error {
	if len(values) < 2 {
		return nil
	}
	for _, v := range values {
		if blank(v) {
			return domain.Empty(property, field)
		}
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			return domain.NonUnique(property, field, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
