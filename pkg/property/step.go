package property

import (
	"fmt"

	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

const actionWrapper = "action"

// Step is a step of a running workflow together with the actions it offers.
type Step struct {
	identifier string
	label      *string
	stepType   *string
	owner      *string
	actions    []*Action
}

type stepWire struct {
	Identifier *string `mapstructure:"identifier"`
	Label      *string `mapstructure:"label"`
	StepType   *string `mapstructure:"stepType"`
	Owner      *string `mapstructure:"owner"`
}

var stepSchema = schema.Schema{
	"identifier": schema.NonBlank(),
	"label":      schema.String(),
	"stepType":   schema.String(),
	"owner":      schema.String(),
}

// NewStep builds a Step. The identifier is required; "actions" follows the
// SOAP/REST cardinality rules with the "action" wrapper.
func NewStep(p wire.Payload) (*Step, error) {
	if err := validate("Step", stepSchema, p, "identifier"); err != nil {
		return nil, err
	}
	var w stepWire
	if err := decode("Step", p, &w); err != nil {
		return nil, err
	}

	s := &Step{
		identifier: *w.Identifier,
		label:      w.Label,
		stepType:   w.StepType,
		owner:      w.Owner,
	}

	for i, item := range wire.Classify(p["actions"], actionWrapper).Items {
		ap, err := payloadOf("Step", "actions", item)
		if err != nil {
			return nil, err
		}
		a, err := NewAction(ap)
		if err != nil {
			return nil, fmt.Errorf("step %q action %d: %w", s.identifier, i, err)
		}
		s.actions = append(s.actions, a)
	}
	return s, nil
}

func (s *Step) Identifier() string { return s.identifier }
func (s *Step) Label() string      { return wire.Deref(s.label) }
func (s *Step) StepType() string   { return wire.Deref(s.stepType) }
func (s *Step) Owner() string      { return wire.Deref(s.owner) }

// Actions returns the step's actions in wire order.
func (s *Step) Actions() []*Action {
	out := make([]*Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Action looks up an action by identifier.
func (s *Step) Action(identifier string) (*Action, bool) {
	for _, a := range s.actions {
		if a.Identifier() == identifier {
			return a, true
		}
	}
	return nil, false
}

func (s *Step) ToWire(mode wire.Mode) wire.Payload {
	out := wire.Payload{"identifier": s.identifier}
	wire.Put(out, "label", s.label)
	wire.Put(out, "stepType", s.stepType)
	wire.Put(out, "owner", s.owner)

	items := make([]any, len(s.actions))
	for i, a := range s.actions {
		items[i] = a.ToWire()
	}
	out["actions"] = wire.Expand(mode, actionWrapper, items)
	return out
}

func (s *Step) Encode(mode wire.Mode) any { return s.ToWire(mode) }
