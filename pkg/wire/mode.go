package wire

import (
	"fmt"
	"strings"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/ports"
)

// Mode selects the wire dialect used when exporting a value object.
type Mode int

const (
	// SOAP wraps single repeated values in a named object.
	SOAP Mode = iota + 1
	// REST uses bare ordered sequences.
	REST
)

func (m Mode) String() string {
	switch m {
	case SOAP:
		return "soap"
	case REST:
		return "rest"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the known dialects.
func (m Mode) Valid() bool {
	return m == SOAP || m == REST
}

// ParseMode converts "soap" or "rest" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soap":
		return SOAP, nil
	case "rest":
		return REST, nil
	default:
		return 0, domain.Unacceptable("Mode", "mode", s, "expected soap or rest")
	}
}

// ModeOf asks the transport which dialect it speaks.
func ModeOf(t ports.Transport) (Mode, error) {
	if t == nil {
		return 0, domain.NullReference("Mode", "transport")
	}
	switch {
	case t.IsSoap():
		return SOAP, nil
	case t.IsRest():
		return REST, nil
	default:
		return 0, domain.Unacceptable("Mode", "transport", nil, "transport reports neither soap nor rest")
	}
}
