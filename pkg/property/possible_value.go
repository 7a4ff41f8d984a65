package property

import (
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// PossibleValue is one option of a radio, checkbox, dropdown or multi-select
// field in a data definition.
type PossibleValue struct {
	value             string
	selectedByDefault *bool
}

type possibleValueWire struct {
	Value             *string `mapstructure:"value"`
	SelectedByDefault *bool   `mapstructure:"selectedByDefault"`
}

var possibleValueSchema = schema.Schema{
	"value":             schema.NonBlank(),
	"selectedByDefault": schema.Bool(),
}

// NewPossibleValue builds a PossibleValue. The value must not be blank and
// selectedByDefault, when present, must be a real boolean.
func NewPossibleValue(p wire.Payload) (*PossibleValue, error) {
	if err := validate("PossibleValue", possibleValueSchema, p, "value"); err != nil {
		return nil, err
	}
	var w possibleValueWire
	if err := decode("PossibleValue", p, &w); err != nil {
		return nil, err
	}
	return &PossibleValue{value: *w.Value, selectedByDefault: w.SelectedByDefault}, nil
}

func (v *PossibleValue) Value() string           { return v.value }
func (v *PossibleValue) SelectedByDefault() bool { return wire.Deref(v.selectedByDefault) }

// SetValue replaces the option value.
func (v *PossibleValue) SetValue(value string) error {
	if blank(value) {
		return domain.Empty("PossibleValue", "value")
	}
	v.value = value
	return nil
}

func (v *PossibleValue) SetSelectedByDefault(selected bool) *PossibleValue {
	v.selectedByDefault = wire.Ptr(selected)
	return v
}

func (v *PossibleValue) ToWire() wire.Payload {
	out := wire.Payload{"value": v.value}
	wire.Put(out, "selectedByDefault", v.selectedByDefault)
	return out
}

func (v *PossibleValue) Encode(wire.Mode) any { return v.ToWire() }
