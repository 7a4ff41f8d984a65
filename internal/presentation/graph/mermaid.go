package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/cascade/pkg/definition"
)

// GraphOverlay highlights steps on the rendered graph.
type GraphOverlay struct {
	VisitedSteps []string
	CurrentStep  string
}

// GenerateMermaid produces a Mermaid flowchart of a workflow definition.
// Steps are nodes shaped by type:
// - Initial step: ((Circle))
// - System: [[Subroutine]]
// - Transition (review/approval): {Rhombus}
// - Default (edit): [Rectangle]
// Actions are edges labelled with the action label. next-id edges are solid,
// forward/reverse moves through the ordered steps are dotted.
// Steps and edges are emitted in document order, so the output is deterministic.
func GenerateMermaid(wf *definition.WorkflowDefinition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, step := range wf.AllSteps() {
		safeID := sanitizeMermaidID(step.Identifier())

		opener, closer := "[", "]"
		switch {
		case step.Identifier() == wf.InitialStep():
			opener, closer = "((", "))"
		case step.Type() == definition.StepTypeSystem:
			opener, closer = "[[", "]]"
		case step.Type() == definition.StepTypeTransition:
			opener, closer = "{", "}"
		}

		label := step.Label()
		if label == "" {
			label = step.Identifier()
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer)

		for _, action := range step.Actions() {
			target := wf.Target(step, action)
			if target == "" {
				continue
			}

			arrowLabel := action.Label()
			if arrowLabel == "" {
				arrowLabel = action.Identifier()
			}
			arrow := fmt.Sprintf("-- \"%s\" -->", escapeLabel(arrowLabel))
			if action.NextID() == "" {
				arrow = fmt.Sprintf("-. \"%s\" .->", escapeLabel(arrowLabel))
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, sanitizeMermaidID(target))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedSteps {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentStep != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentStep))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
