package markup

// Node is a read-only element of a markup tree.
type Node interface {
	// Name returns the local tag name.
	Name() string
	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)
	// Children returns element children with the given tag, in document order.
	// An empty tag returns every element child.
	Children(tag string) []Node
	// Child returns the first element child with the given tag, or nil.
	Child(tag string) Node
	// Text returns the concatenated character data directly inside the element.
	Text() string
}

// AttrOr returns the named attribute or def when it is absent.
func AttrOr(n Node, name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// ChildText returns the raw text of the first child with tag, or "".
func ChildText(n Node, tag string) string {
	c := n.Child(tag)
	if c == nil {
		return ""
	}
	return c.Text()
}

// IsNil reports whether n is nil, including a nil *Element stored in the interface.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	e, ok := n.(*Element)
	return ok && e == nil
}
