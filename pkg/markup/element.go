package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Element is an in-memory XML element.
type Element struct {
	name     string
	attrs    []xml.Attr
	children []*Element
	text     strings.Builder
}

// NewElement builds an element by hand; used by tests and builders.
func NewElement(name string, attrs ...xml.Attr) *Element {
	return &Element{name: name, attrs: attrs}
}

// Append adds children and returns e for chaining.
func (e *Element) Append(children ...*Element) *Element {
	e.children = append(e.children, children...)
	return e
}

// SetText replaces the character data of e.
func (e *Element) SetText(text string) *Element {
	e.text.Reset()
	e.text.WriteString(text)
	return e
}

// Attr builds an xml.Attr without namespace.
func Attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func (e *Element) Name() string { return e.name }

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) Children(tag string) []Node {
	out := make([]Node, 0, len(e.children))
	for _, c := range e.children {
		if tag == "" || c.name == tag {
			out = append(out, c)
		}
	}
	return out
}

func (e *Element) Child(tag string) Node {
	for _, c := range e.children {
		if c.name == tag {
			return c
		}
	}
	return nil
}

// Text returns the raw character data of e, whitespace included.
func (e *Element) Text() string {
	return e.text.String()
}

// ErrNoRoot is returned when the input contains no element.
var ErrNoRoot = errors.New("markup: document has no root element")

// Parse reads a whole document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{name: t.Name.Local, attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("markup: multiple root elements (%s, %s)", root.name, el.name)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}
