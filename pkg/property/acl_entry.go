package property

import (
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// Access levels and principal types accepted by AclEntry.
const (
	LevelRead  = "read"
	LevelWrite = "write"

	PrincipalUser  = "user"
	PrincipalGroup = "group"
)

var (
	aclLevels = schema.Enum(LevelRead, LevelWrite)
	aclTypes  = schema.Enum(PrincipalUser, PrincipalGroup)
)

// AclEntry grants a user or group read or write access to an asset.
type AclEntry struct {
	level string
	typ   string
	name  string
}

type aclEntryWire struct {
	Level *string `mapstructure:"level"`
	Type  *string `mapstructure:"type"`
	Name  *string `mapstructure:"name"`
}

var aclEntrySchema = schema.Schema{
	"level": aclLevels,
	"type":  aclTypes,
	"name":  schema.NonBlank(),
}

// NewAclEntry builds an AclEntry. All three attributes are required.
func NewAclEntry(p wire.Payload) (*AclEntry, error) {
	if err := schema.Validate(aclEntrySchema, p); err != nil {
		return nil, valueError("AclEntry", err)
	}
	var w aclEntryWire
	if err := decode("AclEntry", p, &w); err != nil {
		return nil, err
	}
	return &AclEntry{level: *w.Level, typ: *w.Type, name: *w.Name}, nil
}

func (e *AclEntry) Level() string { return e.level }
func (e *AclEntry) Type() string  { return e.typ }
func (e *AclEntry) Name() string  { return e.name }

// SetLevel changes the access level; only "read" and "write" are accepted.
func (e *AclEntry) SetLevel(level string) error {
	if err := aclLevels.Validate(level); err != nil {
		return domain.Unacceptable("AclEntry", "level", level, err.Error())
	}
	e.level = level
	return nil
}

// SetType changes the principal type; only "user" and "group" are accepted.
func (e *AclEntry) SetType(typ string) error {
	if err := aclTypes.Validate(typ); err != nil {
		return domain.Unacceptable("AclEntry", "type", typ, err.Error())
	}
	e.typ = typ
	return nil
}

func (e *AclEntry) ToWire() wire.Payload {
	return wire.Payload{
		"level": e.level,
		"type":  e.typ,
		"name":  e.name,
	}
}

func (e *AclEntry) Encode(wire.Mode) any { return e.ToWire() }
