package property

import (
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// Parameter is a name/value pair, as carried by connectors and triggers.
type Parameter struct {
	name  string
	value *string
}

type parameterWire struct {
	Name  *string `mapstructure:"name"`
	Value *string `mapstructure:"value"`
}

var parameterSchema = schema.Schema{
	"name":  schema.NonBlank(),
	"value": schema.String(),
}

// NewParameter builds a Parameter from a wire payload. The name is required.
func NewParameter(p wire.Payload) (*Parameter, error) {
	if err := validate("Parameter", parameterSchema, p, "name"); err != nil {
		return nil, err
	}
	var w parameterWire
	if err := decode("Parameter", p, &w); err != nil {
		return nil, err
	}
	return &Parameter{name: *w.Name, value: w.Value}, nil
}

func (p *Parameter) Name() string  { return p.name }
func (p *Parameter) Value() string { return wire.Deref(p.value) }

// SetValue replaces the value. Any string, including empty, is accepted.
func (p *Parameter) SetValue(v string) *Parameter {
	p.value = wire.Ptr(v)
	return p
}

func (p *Parameter) ToWire() wire.Payload {
	out := wire.Payload{"name": p.name}
	wire.Put(out, "value", p.value)
	return out
}

func (p *Parameter) Encode(wire.Mode) any { return p.ToWire() }
