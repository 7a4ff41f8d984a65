package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/cascade/pkg/definition"
)

// Describe renders a workflow definition as a markdown summary:
// triggers, then every step with its actions and their resolved targets.
func Describe(wf *definition.WorkflowDefinition) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Workflow: %s\n\n", orDash(wf.Name()))
	fmt.Fprintf(&sb, "Initial step: `%s`\n\n", orDash(wf.InitialStep()))

	if triggers := wf.Triggers(); len(triggers) > 0 {
		sb.WriteString("## Triggers\n\n")
		sb.WriteString("| Name | Class |\n|---|---|\n")
		for _, t := range triggers {
			fmt.Fprintf(&sb, "| %s | `%s` |\n", cell(t.Name()), cell(t.Class()))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Steps\n")
	for _, step := range wf.AllSteps() {
		describeStep(&sb, wf, step)
	}

	if problems := wf.Problems(); len(problems) > 0 {
		sb.WriteString("\n## Problems\n\n")
		for _, p := range problems {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
	}

	return sb.String()
}

func describeStep(sb *strings.Builder, wf *definition.WorkflowDefinition, step *definition.StepDefinition) {
	title := step.Label()
	if title == "" {
		title = step.Identifier()
	}
	fmt.Fprintf(sb, "\n### %s (`%s`)\n\n", title, step.Identifier())
	fmt.Fprintf(sb, "- Type: %s\n", orDash(step.Type()))
	if step.DefaultUser() != "" {
		fmt.Fprintf(sb, "- Default user: %s\n", step.DefaultUser())
	}

	actions := step.Actions()
	if len(actions) == 0 {
		return
	}

	sb.WriteString("\n| Action | Type | Target | Triggers |\n|---|---|---|---|\n")
	for _, a := range actions {
		label := a.Label()
		if label == "" {
			label = a.Identifier()
		}

		names := make([]string, 0, len(a.Triggers()))
		for _, t := range a.Triggers() {
			names = append(names, t.Name())
		}

		fmt.Fprintf(sb, "| %s | %s | %s | %s |\n",
			cell(label), cell(a.Type()), cell(wf.Target(step, a)), cell(strings.Join(names, ", ")))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func cell(s string) string {
	return strings.ReplaceAll(orDash(s), "|", `\|`)
}
