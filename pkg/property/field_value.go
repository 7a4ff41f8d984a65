package property

import (
	"slices"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

const fieldValueWrapper = "fieldValue"

// FieldValue is the ordered value set of a dynamic metadata field.
//
// The set holds 0..N strings. With two or more entries every entry is
// non-blank and unique. A single empty entry is the "unset one value"
// placeholder and exports exactly like the empty set.
type FieldValue struct {
	values []string
}

var valueSchema = schema.Schema{"value": schema.String()}

type fieldValueWire struct {
	Value *string `mapstructure:"value"`
}

// NewFieldValue decodes the raw "fieldValues" member of a dynamic field.
// It accepts nil (absent), the SOAP wrapper object and the REST sequence.
func NewFieldValue(raw any) (*FieldValue, error) {
	c := wire.Classify(raw, fieldValueWrapper)

	values := make([]string, 0, c.Len())
	for _, item := range c.Items {
		v, err := fieldValueItem(item)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	fv := &FieldValue{}
	if err := fv.SetValues(values...); err != nil {
		return nil, err
	}
	return fv, nil
}

func fieldValueItem(item any) (string, error) {
	switch v := item.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}

	p, ok := wire.AsPayload(item)
	if !ok {
		return "", domain.Unacceptable("FieldValue", "value", item, "expected object with a value")
	}
	if err := validate("FieldValue", valueSchema, p); err != nil {
		return "", err
	}
	var w fieldValueWire
	if err := decode("FieldValue", p, &w); err != nil {
		return "", err
	}
	return wire.Deref(w.Value), nil
}

// Values returns a copy of the held values, in order.
func (f *FieldValue) Values() []string {
	return slices.Clone(f.values)
}

// Len returns the number of held values, counting the empty placeholder.
func (f *FieldValue) Len() int { return len(f.values) }

// IsEmpty reports whether the set exports as the empty collection.
func (f *FieldValue) IsEmpty() bool {
	return len(f.values) == 0 || (len(f.values) == 1 && f.values[0] == "")
}

// Contains reports whether value is one of the held values.
func (f *FieldValue) Contains(value string) bool {
	return slices.Contains(f.values, value)
}

// SetValues replaces the held sequence.
//
// No entries clears the set. A single blank entry stores the empty
// placeholder. Two or more entries must all be non-blank (ErrEmptyValue)
// and unique (ErrNonUniqueValue); on failure the previous values are kept.
func (f *FieldValue) SetValues(values ...string) error {
	switch len(values) {
	case 0:
		f.values = nil
		return nil
	case 1:
		if blank(values[0]) {
			f.values = []string{""}
		} else {
			f.values = []string{values[0]}
		}
		return nil
	}

	if err := uniqueNonBlank("FieldValue", "value", values); err != nil {
		return err
	}
	f.values = slices.Clone(values)
	return nil
}

// ToWire expands the set to the shape expected by mode:
// SOAP {} / {"fieldValue":{...}} / {"fieldValue":[...]},
// REST [] / [{...}] / [...].
func (f *FieldValue) ToWire(mode wire.Mode) any {
	// The lone placeholder exports as the empty collection in both dialects.
	if f.IsEmpty() {
		return wire.Expand(mode, fieldValueWrapper, nil)
	}
	items := make([]any, len(f.values))
	for i, v := range f.values {
		items[i] = wire.Payload{"value": v}
	}
	return wire.Expand(mode, fieldValueWrapper, items)
}

func (f *FieldValue) Encode(mode wire.Mode) any { return f.ToWire(mode) }
