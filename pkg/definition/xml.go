package definition

import (
	"encoding/xml"
	"strings"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/markup"
)

type attr struct {
	name     string
	value    string
	optional bool
}

// openTag writes <name a="v"...> or <name a="v".../> when selfClose is set.
// Optional attributes are skipped when empty.
func openTag(sb *strings.Builder, name string, attrs []attr, selfClose bool) {
	sb.WriteString("<")
	sb.WriteString(name)
	for _, a := range attrs {
		if a.optional && a.value == "" {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		escape(sb, a.value)
		sb.WriteString(`"`)
	}
	if selfClose {
		sb.WriteString("/>")
		return
	}
	sb.WriteString(">")
}

func closeTag(sb *strings.Builder, name string) {
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteString(">")
}

func textElement(sb *strings.Builder, name, text string) {
	openTag(sb, name, nil, false)
	escape(sb, text)
	closeTag(sb, name)
}

func escape(sb *strings.Builder, s string) {
	// strings.Builder never returns a write error.
	_ = xml.EscapeText(sb, []byte(s))
}

// requiredAttr reads an attribute that must be present and non-blank.
func requiredAttr(kind string, n markup.Node, name string) (string, error) {
	v, ok := n.Attr(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", domain.Empty(kind, name)
	}
	return v, nil
}

func requireNode(kind string, n markup.Node, tag string) error {
	if markup.IsNil(n) {
		return domain.Empty(kind, tag)
	}
	if n.Name() != tag {
		return domain.Unacceptable(kind, tag, n.Name(), "unexpected element")
	}
	return nil
}
