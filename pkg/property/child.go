package property

import (
	"context"
	"fmt"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/ports"
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// Child references an asset inside a container, by id and/or path.
type Child struct {
	id       *string
	path     *Path
	typ      string
	recycled *bool
}

// Identifier is the same reference used outside of folder listings.
type Identifier = Child

type childWire struct {
	ID       *string        `mapstructure:"id"`
	Path     map[string]any `mapstructure:"path"`
	Type     *string        `mapstructure:"type"`
	Recycled *bool          `mapstructure:"recycled"`
}

var childSchema = schema.Schema{
	"id":       schema.String(),
	"path":     schema.Map(),
	"type":     schema.NonBlank(),
	"recycled": schema.Bool(),
}

// NewChild builds a Child from a wire payload. The type is required.
func NewChild(p wire.Payload) (*Child, error) {
	return newChild("Child", p)
}

// NewIdentifier builds an Identifier from a wire payload.
func NewIdentifier(p wire.Payload) (*Identifier, error) {
	return newChild("Identifier", p)
}

func newChild(property string, p wire.Payload) (*Child, error) {
	if err := validate(property, childSchema, p, "type"); err != nil {
		return nil, err
	}
	var w childWire
	if err := decode(property, p, &w); err != nil {
		return nil, err
	}

	c := &Child{id: w.ID, typ: *w.Type, recycled: w.Recycled}
	if w.Path != nil {
		path, err := NewPath(w.Path)
		if err != nil {
			return nil, fmt.Errorf("%s.path: %w", property, err)
		}
		c.path = path
	}
	return c, nil
}

func (c *Child) ID() string     { return wire.Deref(c.id) }
func (c *Child) Type() string   { return c.typ }
func (c *Child) Recycled() bool { return wire.Deref(c.recycled) }

// Path returns the path reference, or nil when the payload carried none.
func (c *Child) Path() *Path { return c.path }

// PathString is a shortcut for Path().Path().
func (c *Child) PathString() string {
	if c.path == nil {
		return ""
	}
	return c.path.Path()
}

// Resolve asks the transport for the referenced asset.
// The id wins over the path when both are present.
func (c *Child) Resolve(ctx context.Context, t ports.Transport) (domain.Asset, error) {
	if t == nil {
		return domain.Asset{}, domain.NullReference("Child", "transport")
	}
	if c.id != nil && !blank(*c.id) {
		return t.ResolveAsset(ctx, c.typ, *c.id, "")
	}
	if c.path != nil && !blank(c.path.Path()) {
		return t.ResolveAsset(ctx, c.typ, c.path.Path(), c.path.SiteName())
	}
	return domain.Asset{}, domain.Empty("Child", "id")
}

// ToWire returns the payload with only the attributes that are set.
func (c *Child) ToWire() wire.Payload {
	out := wire.Payload{}
	wire.Put(out, "id", c.id)
	if c.path != nil {
		out["path"] = c.path.ToWire()
	}
	out["type"] = c.typ
	wire.Put(out, "recycled", c.recycled)
	return out
}

func (c *Child) Encode(wire.Mode) any { return c.ToWire() }
