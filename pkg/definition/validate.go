package definition

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDefinition wraps every problem reported by Validate.
var ErrInvalidDefinition = errors.New("invalid workflow definition")

// Problems lists broken references in the definition, in document order:
// a missing or unknown initial step, duplicate step identifiers, next-id
// targets that name no step, and invoked triggers that are not declared.
func (w *WorkflowDefinition) Problems() []string {
	var problems []string

	known := make(map[string]bool)
	for _, s := range w.AllSteps() {
		if known[s.identifier] {
			problems = append(problems, fmt.Sprintf("duplicate step identifier '%s'", s.identifier))
		}
		known[s.identifier] = true
	}

	switch {
	case w.initialStep == "":
		problems = append(problems, "missing initial-step")
	case !known[w.initialStep]:
		problems = append(problems, fmt.Sprintf("initial-step '%s' does not exist", w.initialStep))
	}

	for _, s := range w.AllSteps() {
		for _, a := range s.actions {
			if a.nextID != "" && !known[a.nextID] {
				problems = append(problems, fmt.Sprintf("step '%s' action '%s': next-id '%s' does not exist", s.identifier, a.identifier, a.nextID))
			}
			for _, t := range a.triggers {
				if _, ok := w.Trigger(t.name); !ok {
					problems = append(problems, fmt.Sprintf("step '%s' action '%s': trigger '%s' is not declared", s.identifier, a.identifier, t.name))
				}
			}
		}
	}

	return problems
}

// Validate returns nil when Problems is empty.
func (w *WorkflowDefinition) Validate() error {
	problems := w.Problems()
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: found %d errors:\n- %s", ErrInvalidDefinition, len(problems), strings.Join(problems, "\n- "))
}
