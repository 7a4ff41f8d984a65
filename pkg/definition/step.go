package definition

import (
	"fmt"
	"strings"

	"github.com/aretw0/cascade/pkg/markup"
)

// Step types.
const (
	StepTypeSystem     = "system"
	StepTypeTransition = "transition"
	StepTypeEdit       = "edit"
)

// StepDefinition is a <step> of a workflow definition.
type StepDefinition struct {
	typ         string
	label       string
	identifier  string
	defaultUser string
	actions     []*ActionDefinition
}

// NewStepDefinition parses a <step> element. identifier and type are
// required; default-user defaults to "". Actions are read from the
// <actions> container.
func NewStepDefinition(n markup.Node) (*StepDefinition, error) {
	if err := requireNode("StepDefinition", n, "step"); err != nil {
		return nil, err
	}
	identifier, err := requiredAttr("StepDefinition", n, "identifier")
	if err != nil {
		return nil, err
	}
	typ, err := requiredAttr("StepDefinition", n, "type")
	if err != nil {
		return nil, fmt.Errorf("step %q: %w", identifier, err)
	}

	s := &StepDefinition{
		typ:         typ,
		label:       markup.AttrOr(n, "label", ""),
		identifier:  identifier,
		defaultUser: markup.AttrOr(n, "default-user", ""),
	}

	container := n.Child("actions")
	if container == nil {
		return s, nil
	}
	for _, an := range container.Children("action") {
		a, err := NewActionDefinition(an)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", identifier, err)
		}
		s.actions = append(s.actions, a)
	}
	return s, nil
}

func (s *StepDefinition) Type() string        { return s.typ }
func (s *StepDefinition) Label() string       { return s.label }
func (s *StepDefinition) Identifier() string  { return s.identifier }
func (s *StepDefinition) DefaultUser() string { return s.defaultUser }

// Actions returns the step's actions in parse order.
func (s *StepDefinition) Actions() []*ActionDefinition {
	out := make([]*ActionDefinition, len(s.actions))
	copy(out, s.actions)
	return out
}

// Action looks up an action by identifier.
func (s *StepDefinition) Action(identifier string) (*ActionDefinition, bool) {
	for _, a := range s.actions {
		if a.identifier == identifier {
			return a, true
		}
	}
	return nil, false
}

// ToXML renders the step; it self-closes when it has no actions.
func (s *StepDefinition) ToXML() string {
	var sb strings.Builder
	s.writeXML(&sb)
	return sb.String()
}

func (s *StepDefinition) writeXML(sb *strings.Builder) {
	attrs := []attr{
		{name: "type", value: s.typ},
		{name: "label", value: s.label},
		{name: "identifier", value: s.identifier},
		{name: "default-user", value: s.defaultUser, optional: true},
	}
	if len(s.actions) == 0 {
		openTag(sb, "step", attrs, true)
		return
	}
	openTag(sb, "step", attrs, false)
	openTag(sb, "actions", nil, false)
	for _, a := range s.actions {
		a.writeXML(sb)
	}
	closeTag(sb, "actions")
	closeTag(sb, "step")
}
