package definition

import (
	"fmt"
	"strings"

	"github.com/aretw0/cascade/pkg/markup"
)

// RootTag is the document element of a workflow definition.
const RootTag = "system-workflow-definition"

// WorkflowDefinition is the root of a workflow definition document.
type WorkflowDefinition struct {
	name            string
	initialStep     string
	triggers        []*TriggerDefinition
	steps           []*StepDefinition
	nonOrderedSteps []*StepDefinition
}

// NewWorkflowDefinition parses the root element of a workflow definition.
func NewWorkflowDefinition(n markup.Node) (*WorkflowDefinition, error) {
	if err := requireNode("WorkflowDefinition", n, RootTag); err != nil {
		return nil, err
	}

	w := &WorkflowDefinition{
		name:        markup.AttrOr(n, "name", ""),
		initialStep: markup.AttrOr(n, "initial-step", ""),
	}

	if c := n.Child("triggers"); c != nil {
		for _, tn := range c.Children("trigger") {
			t, err := NewTriggerDeclaration(tn)
			if err != nil {
				return nil, fmt.Errorf("triggers: %w", err)
			}
			w.triggers = append(w.triggers, t)
		}
	}

	var err error
	if w.steps, err = parseSteps(n, "steps"); err != nil {
		return nil, err
	}
	if w.nonOrderedSteps, err = parseSteps(n, "non-ordered-steps"); err != nil {
		return nil, err
	}
	return w, nil
}

// ParseWorkflowDefinition parses a workflow definition document.
func ParseWorkflowDefinition(doc string) (*WorkflowDefinition, error) {
	root, err := markup.ParseString(doc)
	if err != nil {
		return nil, err
	}
	return NewWorkflowDefinition(root)
}

func parseSteps(n markup.Node, container string) ([]*StepDefinition, error) {
	c := n.Child(container)
	if c == nil {
		return nil, nil
	}
	var steps []*StepDefinition
	for _, sn := range c.Children("step") {
		s, err := NewStepDefinition(sn)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", container, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func (w *WorkflowDefinition) Name() string        { return w.name }
func (w *WorkflowDefinition) InitialStep() string { return w.initialStep }

// Triggers returns the declared triggers in parse order.
func (w *WorkflowDefinition) Triggers() []*TriggerDefinition {
	out := make([]*TriggerDefinition, len(w.triggers))
	copy(out, w.triggers)
	return out
}

// Steps returns the ordered steps.
func (w *WorkflowDefinition) Steps() []*StepDefinition {
	out := make([]*StepDefinition, len(w.steps))
	copy(out, w.steps)
	return out
}

// NonOrderedSteps returns the steps reachable only through next-id.
func (w *WorkflowDefinition) NonOrderedSteps() []*StepDefinition {
	out := make([]*StepDefinition, len(w.nonOrderedSteps))
	copy(out, w.nonOrderedSteps)
	return out
}

// AllSteps returns ordered steps followed by non-ordered steps.
func (w *WorkflowDefinition) AllSteps() []*StepDefinition {
	out := make([]*StepDefinition, 0, len(w.steps)+len(w.nonOrderedSteps))
	out = append(out, w.steps...)
	return append(out, w.nonOrderedSteps...)
}

// Step looks up a step in either container.
func (w *WorkflowDefinition) Step(identifier string) (*StepDefinition, bool) {
	for _, s := range w.AllSteps() {
		if s.identifier == identifier {
			return s, true
		}
	}
	return nil, false
}

// Trigger looks up a declared trigger by name.
func (w *WorkflowDefinition) Trigger(name string) (*TriggerDefinition, bool) {
	for _, t := range w.triggers {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// Target returns the identifier of the step an action leads to.
// next-id wins; otherwise forward/reverse moves follow the ordered steps.
// It returns "" when the action does not lead anywhere.
func (w *WorkflowDefinition) Target(from *StepDefinition, a *ActionDefinition) string {
	if a.nextID != "" {
		return a.nextID
	}
	idx := -1
	for i, s := range w.steps {
		if s == from {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ""
	}
	switch a.move {
	case MoveForward:
		if idx+1 < len(w.steps) {
			return w.steps[idx+1].identifier
		}
	case MoveReverse:
		if idx > 0 {
			return w.steps[idx-1].identifier
		}
	}
	return ""
}

// ToXML renders the whole document.
func (w *WorkflowDefinition) ToXML() string {
	var sb strings.Builder
	openTag(&sb, RootTag, []attr{
		{name: "name", value: w.name},
		{name: "initial-step", value: w.initialStep},
	}, false)

	if len(w.triggers) > 0 {
		openTag(&sb, "triggers", nil, false)
		for _, t := range w.triggers {
			t.writeXML(&sb)
		}
		closeTag(&sb, "triggers")
	}

	writeSteps(&sb, "steps", w.steps)
	if len(w.nonOrderedSteps) > 0 {
		writeSteps(&sb, "non-ordered-steps", w.nonOrderedSteps)
	}

	closeTag(&sb, RootTag)
	return sb.String()
}

func writeSteps(sb *strings.Builder, container string, steps []*StepDefinition) {
	if len(steps) == 0 {
		openTag(sb, container, nil, true)
		return
	}
	openTag(sb, container, nil, false)
	for _, s := range steps {
		s.writeXML(sb)
	}
	closeTag(sb, container)
}
