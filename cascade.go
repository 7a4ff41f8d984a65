package cascade

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/cascade/internal/logging"
	loamAdapter "github.com/aretw0/cascade/pkg/adapters/loam"
	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/ports"
	"github.com/aretw0/cascade/pkg/property"
	"github.com/aretw0/cascade/pkg/registry"
	"github.com/aretw0/cascade/pkg/wire"
)

// Converter is the high-level entry point of the library.
// It decodes raw wire payloads into value objects and re-exports them in
// the dialect of the configured transport.
type Converter struct {
	registry  *registry.Registry
	transport ports.Transport
	source    ports.PayloadSource
	mode      wire.Mode
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithTransport sets the remote service collaborator. Its dialect becomes
// the export mode unless WithMode is also given.
func WithTransport(t ports.Transport) Option {
	return func(c *Converter) {
		c.transport = t
	}
}

// WithMode forces the export dialect.
func WithMode(m wire.Mode) Option {
	return func(c *Converter) {
		c.mode = m
	}
}

// WithSource injects a custom PayloadSource, bypassing the default Loam fixtures.
func WithSource(s ports.PayloadSource) Option {
	return func(c *Converter) {
		c.source = s
	}
}

// WithRegistry replaces the default property registry.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Converter) {
		c.registry = r
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// New initializes a Converter.
// When fixturesDir is not empty and no source is injected, payload fixtures
// are read from a Loam repository at that path.
func New(fixturesDir string, opts ...Option) (*Converter, error) {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}

	if c.source == nil && fixturesDir != "" {
		src, err := loamAdapter.Open(fixturesDir)
		if err != nil {
			return nil, err
		}
		c.source = src
	}

	if c.registry == nil {
		c.registry = property.NewRegistry()
	}

	if c.mode == 0 {
		if c.transport == nil {
			return nil, fmt.Errorf("a transport or an explicit mode is required: %w", domain.NullReference("Converter", "transport"))
		}
		m, err := wire.ModeOf(c.transport)
		if err != nil {
			return nil, err
		}
		c.mode = m
	}
	if !c.mode.Valid() {
		return nil, domain.Unacceptable("Converter", "mode", c.mode.String(), "expected soap or rest")
	}

	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	c.logger = c.logger.With("mode", c.mode.String())

	return c, nil
}

// Mode returns the export dialect.
func (c *Converter) Mode() wire.Mode { return c.mode }

// Kinds lists the property kinds the converter understands.
func (c *Converter) Kinds() []string { return c.registry.Kinds() }

// Decode builds the value object registered under kind.
// raw may be any JSON-marshalable value, tagged structs included.
func (c *Converter) Decode(kind string, raw any) (registry.Encoder, error) {
	v, err := normalize(kind, raw)
	if err != nil {
		return nil, err
	}
	return c.registry.Decode(kind, v)
}

// Convert decodes raw as kind and exports it in the converter's mode.
func (c *Converter) Convert(kind string, raw any) (any, error) {
	v, err := normalize(kind, raw)
	if err != nil {
		return nil, err
	}
	out, err := c.registry.Convert(kind, v, c.mode)
	if err != nil {
		c.logger.Debug("conversion failed", "kind", kind, "error", err)
		return nil, err
	}
	c.logger.Debug("converted", "kind", kind)
	return out, nil
}

func normalize(kind string, raw any) (any, error) {
	v, err := wire.Normalize(raw)
	if err != nil {
		return nil, domain.Unacceptable(kind, "payload", nil, err.Error())
	}
	return v, nil
}

// Fixture is a stored payload together with the kind it should decode as.
type Fixture struct {
	ID      string `mapstructure:"-"`
	Kind    string `mapstructure:"kind"`
	Payload any    `mapstructure:"payload"`
}

// Fixture loads a payload envelope from the source.
func (c *Converter) Fixture(ctx context.Context, id string) (Fixture, error) {
	if c.source == nil {
		return Fixture{}, domain.NullReference("Converter", "source")
	}
	envelope, err := c.source.Payload(ctx, id)
	if err != nil {
		return Fixture{}, err
	}

	var f Fixture
	if err := wire.Decode(envelope, &f); err != nil {
		return Fixture{}, fmt.Errorf("fixture %s: %w", id, err)
	}
	f.ID = id
	return f, nil
}

// Fixtures lists the IDs available in the source.
func (c *Converter) Fixtures(ctx context.Context) ([]string, error) {
	if c.source == nil {
		return nil, domain.NullReference("Converter", "source")
	}
	return c.source.List(ctx)
}

// ConvertFixture loads a fixture and converts its payload.
// A non-empty kind overrides the one stored in the envelope.
func (c *Converter) ConvertFixture(ctx context.Context, id, kind string) (any, error) {
	f, err := c.Fixture(ctx, id)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		kind = f.Kind
	}
	if kind == "" {
		return nil, fmt.Errorf("fixture %s: %w", id, domain.Empty("Fixture", "kind"))
	}
	return c.Convert(kind, f.Payload)
}

// Resolve decodes raw as an asset Identifier and asks the transport for the asset.
func (c *Converter) Resolve(ctx context.Context, raw any) (domain.Asset, error) {
	v, err := normalize("Identifier", raw)
	if err != nil {
		return domain.Asset{}, err
	}
	p, ok := wire.AsPayload(v)
	if !ok {
		return domain.Asset{}, domain.Unacceptable("Identifier", "payload", raw, "expected object")
	}
	id, err := property.NewIdentifier(p)
	if err != nil {
		return domain.Asset{}, err
	}
	return id.Resolve(ctx, c.transport)
}
