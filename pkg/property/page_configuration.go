package property

import (
	"fmt"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// Publish modes accepted by ContentTypePageConfiguration.
const (
	PublishAllDestinations      = "all-destinations"
	PublishSelectedDestinations = "selected-destinations"
	PublishDoNotPublish         = "do-not-publish"
)

const destinationWrapper = "assetIdentifier"

var publishModes = schema.Enum(PublishAllDestinations, PublishSelectedDestinations, PublishDoNotPublish)

// ContentTypePageConfiguration ties a page configuration of a content type
// to a publish mode and, for selected-destinations, a destination list.
type ContentTypePageConfiguration struct {
	pageConfigurationID   *string
	pageConfigurationName *string
	publishMode           string
	destinations          []*Identifier
}

type pageConfigurationWire struct {
	PageConfigurationID   *string `mapstructure:"pageConfigurationId"`
	PageConfigurationName *string `mapstructure:"pageConfigurationName"`
	PublishMode           *string `mapstructure:"publishMode"`
}

var pageConfigurationSchema = schema.Schema{
	"pageConfigurationId":   schema.String(),
	"pageConfigurationName": schema.String(),
	"publishMode":           publishModes,
}

// NewContentTypePageConfiguration builds the configuration. The publish mode
// is required and one of the Publish* constants.
func NewContentTypePageConfiguration(p wire.Payload) (*ContentTypePageConfiguration, error) {
	const property = "ContentTypePageConfiguration"

	if err := validate(property, pageConfigurationSchema, p, "publishMode"); err != nil {
		return nil, err
	}
	var w pageConfigurationWire
	if err := decode(property, p, &w); err != nil {
		return nil, err
	}

	c := &ContentTypePageConfiguration{
		pageConfigurationID:   w.PageConfigurationID,
		pageConfigurationName: w.PageConfigurationName,
		publishMode:           *w.PublishMode,
	}

	for i, item := range wire.Classify(p["destinations"], destinationWrapper).Items {
		dp, err := payloadOf(property, "destinations", item)
		if err != nil {
			return nil, err
		}
		id, err := NewIdentifier(dp)
		if err != nil {
			return nil, fmt.Errorf("destination %d: %w", i, err)
		}
		c.destinations = append(c.destinations, id)
	}
	return c, nil
}

func (c *ContentTypePageConfiguration) PageConfigurationID() string {
	return wire.Deref(c.pageConfigurationID)
}

func (c *ContentTypePageConfiguration) PageConfigurationName() string {
	return wire.Deref(c.pageConfigurationName)
}

func (c *ContentTypePageConfiguration) PublishMode() string { return c.publishMode }

// Destinations returns the destination identifiers in wire order.
func (c *ContentTypePageConfiguration) Destinations() []*Identifier {
	out := make([]*Identifier, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// SetPublishMode changes the publish mode. Leaving selected-destinations
// clears the destination list.
func (c *ContentTypePageConfiguration) SetPublishMode(mode string) error {
	if err := publishModes.Validate(mode); err != nil {
		return domain.Unacceptable("ContentTypePageConfiguration", "publishMode", mode, err.Error())
	}
	c.publishMode = mode
	if mode != PublishSelectedDestinations {
		c.destinations = nil
	}
	return nil
}

func (c *ContentTypePageConfiguration) ToWire(mode wire.Mode) wire.Payload {
	out := wire.Payload{}
	wire.Put(out, "pageConfigurationId", c.pageConfigurationID)
	wire.Put(out, "pageConfigurationName", c.pageConfigurationName)
	out["publishMode"] = c.publishMode

	if len(c.destinations) > 0 {
		items := make([]any, len(c.destinations))
		for i, d := range c.destinations {
			items[i] = d.ToWire()
		}
		out["destinations"] = wire.Expand(mode, destinationWrapper, items)
	}
	return out
}

func (c *ContentTypePageConfiguration) Encode(mode wire.Mode) any { return c.ToWire(mode) }
