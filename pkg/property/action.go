package property

import (
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// Action is an action available on a running workflow step.
type Action struct {
	identifier string
	label      *string
	actionType *string
	nextID     *string
}

type actionWire struct {
	Identifier *string `mapstructure:"identifier"`
	Label      *string `mapstructure:"label"`
	ActionType *string `mapstructure:"actionType"`
	NextID     *string `mapstructure:"nextId"`
}

var actionSchema = schema.Schema{
	"identifier": schema.NonBlank(),
	"label":      schema.String(),
	"actionType": schema.String(),
	"nextId":     schema.String(),
}

// NewAction builds an Action from a wire payload. The identifier is required.
func NewAction(p wire.Payload) (*Action, error) {
	if err := validate("Action", actionSchema, p, "identifier"); err != nil {
		return nil, err
	}
	var w actionWire
	if err := decode("Action", p, &w); err != nil {
		return nil, err
	}
	return &Action{
		identifier: *w.Identifier,
		label:      w.Label,
		actionType: w.ActionType,
		nextID:     w.NextID,
	}, nil
}

func (a *Action) Identifier() string { return a.identifier }
func (a *Action) Label() string      { return wire.Deref(a.label) }
func (a *Action) ActionType() string { return wire.Deref(a.actionType) }
func (a *Action) NextID() string     { return wire.Deref(a.nextID) }

func (a *Action) ToWire() wire.Payload {
	out := wire.Payload{"identifier": a.identifier}
	wire.Put(out, "label", a.label)
	wire.Put(out, "actionType", a.actionType)
	wire.Put(out, "nextId", a.nextID)
	return out
}

func (a *Action) Encode(wire.Mode) any { return a.ToWire() }
