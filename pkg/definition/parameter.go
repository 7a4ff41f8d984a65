package definition

import (
	"strings"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/markup"
)

// ParameterDefinition is a <parameter><name/><value/></parameter> element
// passed to a trigger invoked by an action.
type ParameterDefinition struct {
	name  string
	value string
}

// NewParameterDefinition parses a <parameter> element. The name is required.
func NewParameterDefinition(n markup.Node) (*ParameterDefinition, error) {
	if err := requireNode("ParameterDefinition", n, "parameter"); err != nil {
		return nil, err
	}
	name := markup.ChildText(n, "name")
	if strings.TrimSpace(name) == "" {
		return nil, domain.Empty("ParameterDefinition", "name")
	}
	return &ParameterDefinition{name: name, value: markup.ChildText(n, "value")}, nil
}

func (p *ParameterDefinition) Name() string  { return p.name }
func (p *ParameterDefinition) Value() string { return p.value }

// ToXML renders <parameter><name>n</name><value>v</value></parameter>.
func (p *ParameterDefinition) ToXML() string {
	var sb strings.Builder
	p.writeXML(&sb)
	return sb.String()
}

func (p *ParameterDefinition) writeXML(sb *strings.Builder) {
	openTag(sb, "parameter", nil, false)
	textElement(sb, "name", p.name)
	textElement(sb, "value", p.value)
	closeTag(sb, "parameter")
}
