package property

import (
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// Path locates an asset by path within a site.
type Path struct {
	path     *string
	siteID   *string
	siteName *string
}

type pathWire struct {
	Path     *string `mapstructure:"path"`
	SiteID   *string `mapstructure:"siteId"`
	SiteName *string `mapstructure:"siteName"`
}

var pathSchema = schema.Schema{
	"path":     schema.String(),
	"siteId":   schema.String(),
	"siteName": schema.String(),
}

// NewPath builds a Path from a wire payload. A nil payload yields an empty Path.
func NewPath(p wire.Payload) (*Path, error) {
	if err := validate("Path", pathSchema, p); err != nil {
		return nil, err
	}
	var w pathWire
	if err := decode("Path", p, &w); err != nil {
		return nil, err
	}
	return &Path{path: w.Path, siteID: w.SiteID, siteName: w.SiteName}, nil
}

func (p *Path) Path() string     { return wire.Deref(p.path) }
func (p *Path) SiteID() string   { return wire.Deref(p.siteID) }
func (p *Path) SiteName() string { return wire.Deref(p.siteName) }

// IsZero reports whether no attribute is set.
func (p *Path) IsZero() bool {
	return p.path == nil && p.siteID == nil && p.siteName == nil
}

// ToWire returns the payload with only the attributes that are set.
func (p *Path) ToWire() wire.Payload {
	out := wire.Payload{}
	wire.Put(out, "path", p.path)
	wire.Put(out, "siteId", p.siteID)
	wire.Put(out, "siteName", p.siteName)
	return out
}

func (p *Path) Encode(wire.Mode) any { return p.ToWire() }
