package property

import (
	"fmt"

	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// DynamicField is a named custom metadata field and its values.
type DynamicField struct {
	name        string
	fieldValues *FieldValue
}

var dynamicFieldSchema = schema.Schema{"name": schema.NonBlank()}

// NewDynamicField builds a DynamicField. The name is required; the
// "fieldValues" member follows the FieldValue cardinality rules.
func NewDynamicField(p wire.Payload) (*DynamicField, error) {
	if err := validate("DynamicField", dynamicFieldSchema, p, "name"); err != nil {
		return nil, err
	}
	name, _ := p["name"].(string)

	fv, err := NewFieldValue(p["fieldValues"])
	if err != nil {
		return nil, fmt.Errorf("dynamic field %q: %w", name, err)
	}
	return &DynamicField{name: name, fieldValues: fv}, nil
}

func (d *DynamicField) Name() string { return d.name }

// FieldValue returns the held value set.
func (d *DynamicField) FieldValue() *FieldValue { return d.fieldValues }

// Values returns a copy of the held values.
func (d *DynamicField) Values() []string { return d.fieldValues.Values() }

// SetValues replaces the held values; see FieldValue.SetValues.
func (d *DynamicField) SetValues(values ...string) error {
	return d.fieldValues.SetValues(values...)
}

func (d *DynamicField) ToWire(mode wire.Mode) wire.Payload {
	return wire.Payload{
		"name":        d.name,
		"fieldValues": d.fieldValues.ToWire(mode),
	}
}

func (d *DynamicField) Encode(mode wire.Mode) any { return d.ToWire(mode) }
