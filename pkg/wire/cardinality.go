package wire

// Shape tags how a repeated field was represented on the wire.
type Shape int

const (
	// Absent means the field was missing, null or empty.
	Absent Shape = iota
	// Single means one value, wrapped (SOAP) or as a one-element sequence (REST).
	Single
	// Many means a sequence of values.
	Many
)

func (s Shape) String() string {
	switch s {
	case Single:
		return "single"
	case Many:
		return "many"
	default:
		return "absent"
	}
}

// Cardinal is the decoded form of a repeated wire field.
// Items is always in wire order; it is empty when Shape is Absent.
type Cardinal struct {
	Shape Shape
	Items []any
}

// Len returns the number of decoded items.
func (c Cardinal) Len() int { return len(c.Items) }

// Classify inspects a raw repeated field.
//
// SOAP sends {wrapper: item} for one value and {wrapper: [items]} for many;
// REST sends [items]. A map without the wrapper key is taken as a bare
// single item.
func Classify(v any, wrapper string) Cardinal {
	if v == nil {
		return Cardinal{Shape: Absent}
	}

	if items, ok := asSlice(v); ok {
		return fromSlice(items)
	}

	if m, ok := AsPayload(v); ok {
		if len(m) == 0 {
			return Cardinal{Shape: Absent}
		}
		inner, found := m[wrapper]
		if !found {
			return Cardinal{Shape: Single, Items: []any{map[string]any(m)}}
		}
		if inner == nil {
			return Cardinal{Shape: Absent}
		}
		if items, ok := asSlice(inner); ok {
			return fromSlice(items)
		}
		return Cardinal{Shape: Single, Items: []any{inner}}
	}

	return Cardinal{Shape: Single, Items: []any{v}}
}

func fromSlice(items []any) Cardinal {
	switch len(items) {
	case 0:
		return Cardinal{Shape: Absent}
	case 1:
		return Cardinal{Shape: Single, Items: []any{items[0]}}
	default:
		out := make([]any, len(items))
		copy(out, items)
		return Cardinal{Shape: Many, Items: out}
	}
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []Payload:
		out := make([]any, len(s))
		for i, p := range s {
			out[i] = p
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, p := range s {
			out[i] = p
		}
		return out, true
	default:
		return nil, false
	}
}

// Expand re-creates the mode-specific shape of a repeated field.
//
//	        0 items   1 item            N items
//	SOAP    {}        {wrapper: item}   {wrapper: [items]}
//	REST    []        [item]            [items]
func Expand(mode Mode, wrapper string, items []any) any {
	if mode == SOAP {
		switch len(items) {
		case 0:
			return Payload{}
		case 1:
			return Payload{wrapper: items[0]}
		default:
			out := make([]any, len(items))
			copy(out, items)
			return Payload{wrapper: out}
		}
	}

	out := make([]any, len(items))
	copy(out, items)
	return out
}
