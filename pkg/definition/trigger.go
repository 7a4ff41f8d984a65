package definition

import (
	"fmt"
	"strings"

	"github.com/aretw0/cascade/pkg/markup"
)

// TriggerKind tells where a trigger element was parsed.
type TriggerKind int

const (
	// DeclaredTrigger is a child of <triggers>: name and class, no parameters.
	DeclaredTrigger TriggerKind = iota + 1
	// InvokedTrigger is a child of <action>: name and parameters, no class.
	InvokedTrigger
)

func (k TriggerKind) String() string {
	switch k {
	case DeclaredTrigger:
		return "declared"
	case InvokedTrigger:
		return "invoked"
	default:
		return fmt.Sprintf("TriggerKind(%d)", int(k))
	}
}

// TriggerDefinition is a <trigger> element in one of its two contexts.
type TriggerDefinition struct {
	kind       TriggerKind
	name       string
	class      string
	parameters []*ParameterDefinition
}

// NewTriggerDeclaration parses a trigger declared under <triggers>.
// Both name and class are required; parameters are ignored.
func NewTriggerDeclaration(n markup.Node) (*TriggerDefinition, error) {
	if err := requireNode("TriggerDefinition", n, "trigger"); err != nil {
		return nil, err
	}
	name, err := requiredAttr("TriggerDefinition", n, "name")
	if err != nil {
		return nil, err
	}
	class, err := requiredAttr("TriggerDefinition", n, "class")
	if err != nil {
		return nil, fmt.Errorf("trigger %q: %w", name, err)
	}
	return &TriggerDefinition{kind: DeclaredTrigger, name: name, class: class}, nil
}

// NewTriggerInvocation parses a trigger invoked by an action.
// The name is required; a class attribute is ignored.
func NewTriggerInvocation(n markup.Node) (*TriggerDefinition, error) {
	if err := requireNode("TriggerDefinition", n, "trigger"); err != nil {
		return nil, err
	}
	name, err := requiredAttr("TriggerDefinition", n, "name")
	if err != nil {
		return nil, err
	}

	t := &TriggerDefinition{kind: InvokedTrigger, name: name}
	for i, pn := range n.Children("parameter") {
		p, err := NewParameterDefinition(pn)
		if err != nil {
			return nil, fmt.Errorf("trigger %q parameter %d: %w", name, i, err)
		}
		t.parameters = append(t.parameters, p)
	}
	return t, nil
}

func (t *TriggerDefinition) Kind() TriggerKind { return t.kind }
func (t *TriggerDefinition) Name() string      { return t.name }

// Class is the implementing class; empty for invoked triggers.
func (t *TriggerDefinition) Class() string { return t.class }

// Parameters returns the parameters in parse order; empty for declared triggers.
func (t *TriggerDefinition) Parameters() []*ParameterDefinition {
	out := make([]*ParameterDefinition, len(t.parameters))
	copy(out, t.parameters)
	return out
}

// Parameter looks up a parameter value by name.
func (t *TriggerDefinition) Parameter(name string) (string, bool) {
	for _, p := range t.parameters {
		if p.name == name {
			return p.value, true
		}
	}
	return "", false
}

// ToXML renders the trigger in the shape of its parse context.
func (t *TriggerDefinition) ToXML() string {
	var sb strings.Builder
	t.writeXML(&sb)
	return sb.String()
}

func (t *TriggerDefinition) writeXML(sb *strings.Builder) {
	if t.kind == DeclaredTrigger {
		openTag(sb, "trigger", []attr{{name: "name", value: t.name}, {name: "class", value: t.class}}, true)
		return
	}

	attrs := []attr{{name: "name", value: t.name}}
	if len(t.parameters) == 0 {
		openTag(sb, "trigger", attrs, true)
		return
	}
	openTag(sb, "trigger", attrs, false)
	for _, p := range t.parameters {
		p.writeXML(sb)
	}
	closeTag(sb, "trigger")
}
