package definition

import (
	"fmt"
	"strings"

	"github.com/aretw0/cascade/pkg/markup"
)

// Action moves.
const (
	MoveForward = "forward"
	MoveReverse = "reverse"
)

// ActionDefinition is an <action> of a step definition.
type ActionDefinition struct {
	typ        string
	label      string
	identifier string
	move       string
	nextID     string
	triggers   []*TriggerDefinition
}

// NewActionDefinition parses an <action> element. identifier and type are
// required; move and next-id default to "".
func NewActionDefinition(n markup.Node) (*ActionDefinition, error) {
	if err := requireNode("ActionDefinition", n, "action"); err != nil {
		return nil, err
	}
	identifier, err := requiredAttr("ActionDefinition", n, "identifier")
	if err != nil {
		return nil, err
	}
	typ, err := requiredAttr("ActionDefinition", n, "type")
	if err != nil {
		return nil, fmt.Errorf("action %q: %w", identifier, err)
	}

	a := &ActionDefinition{
		typ:        typ,
		label:      markup.AttrOr(n, "label", ""),
		identifier: identifier,
		move:       markup.AttrOr(n, "move", ""),
		nextID:     markup.AttrOr(n, "next-id", ""),
	}
	for _, tn := range n.Children("trigger") {
		t, err := NewTriggerInvocation(tn)
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", identifier, err)
		}
		a.triggers = append(a.triggers, t)
	}
	return a, nil
}

func (a *ActionDefinition) Type() string       { return a.typ }
func (a *ActionDefinition) Label() string      { return a.label }
func (a *ActionDefinition) Identifier() string { return a.identifier }
func (a *ActionDefinition) Move() string       { return a.move }
func (a *ActionDefinition) NextID() string     { return a.nextID }

// Triggers returns the invoked triggers in parse order.
func (a *ActionDefinition) Triggers() []*TriggerDefinition {
	out := make([]*TriggerDefinition, len(a.triggers))
	copy(out, a.triggers)
	return out
}

// ToXML renders the action; it self-closes when it invokes no trigger.
func (a *ActionDefinition) ToXML() string {
	var sb strings.Builder
	a.writeXML(&sb)
	return sb.String()
}

func (a *ActionDefinition) writeXML(sb *strings.Builder) {
	attrs := []attr{
		{name: "type", value: a.typ},
		{name: "label", value: a.label},
		{name: "identifier", value: a.identifier},
		{name: "move", value: a.move, optional: true},
		{name: "next-id", value: a.nextID, optional: true},
	}
	if len(a.triggers) == 0 {
		openTag(sb, "action", attrs, true)
		return
	}
	openTag(sb, "action", attrs, false)
	for _, t := range a.triggers {
		t.writeXML(sb)
	}
	closeTag(sb, "action")
}
