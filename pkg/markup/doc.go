// Package markup exposes a parsed XML document as a generic tree.
//
// Definition converters consume the Node interface (attribute lookup, ordered
// child iteration by tag, text content) and never parse text themselves, so
// any parser able to produce Nodes can feed them. Element is the in-memory
// implementation built from encoding/xml tokens.
package markup
