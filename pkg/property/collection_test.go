package property_test

import (
	"testing"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/property"
	"github.com/aretw0/cascade/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAssignment(t *testing.T) {
	r, err := property.NewRoleAssignment(wire.Payload{
		"roleId": "10",
		"users":  "alice, bob",
		"groups": "editors",
	})
	require.NoError(t, err)
	assert.Equal(t, "10", r.RoleID())
	assert.Equal(t, []string{"alice", "bob"}, r.Users())
	assert.Equal(t, []string{"editors"}, r.Groups())

	t.Run("AddIsIdempotent", func(t *testing.T) {
		require.NoError(t, r.AddUser("carol"))
		require.NoError(t, r.AddUser("carol"))
		assert.Equal(t, []string{"alice", "bob", "carol"}, r.Users())
	})

	t.Run("AddRejectsBlankAndCommas", func(t *testing.T) {
		assert.ErrorIs(t, r.AddGroup(" "), domain.ErrEmptyValue)
		assert.ErrorIs(t, r.AddGroup("a,b"), domain.ErrUnacceptableValue)
	})

	t.Run("Remove", func(t *testing.T) {
		r.RemoveUser("bob")
		r.RemoveUser("nobody")
		assert.Equal(t, []string{"alice", "carol"}, r.Users())
	})

	t.Run("SetRejectsDuplicates", func(t *testing.T) {
		assert.ErrorIs(t, r.SetGroups("a", "a"), domain.ErrNonUniqueValue)
		assert.Equal(t, []string{"editors"}, r.Groups())
	})

	t.Run("Export", func(t *testing.T) {
		r.RemoveGroup("editors")
		assert.Equal(t, wire.Payload{"roleId": "10", "users": "alice,carol"}, r.ToWire())
	})

	t.Run("RoleRequired", func(t *testing.T) {
		_, err := property.NewRoleAssignment(wire.Payload{"users": "alice"})
		assert.ErrorIs(t, err, domain.ErrEmptyValue)
	})

	t.Run("DuplicateOnWire", func(t *testing.T) {
		_, err := property.NewRoleAssignment(wire.Payload{"roleName": "Approver", "users": "a,a"})
		assert.ErrorIs(t, err, domain.ErrNonUniqueValue)
	})
}

func TestStep(t *testing.T) {
	approve := map[string]any{"identifier": "approve", "label": "Approve", "nextId": "publish"}
	reject := map[string]any{"identifier": "reject", "label": "Reject", "nextId": "edit"}

	tests := []struct {
		name    string
		actions any
		want    []string
	}{
		{"NoActions", nil, nil},
		{"SoapSingle", map[string]any{"action": approve}, []string{"approve"}},
		{"SoapMany", map[string]any{"action": []any{approve, reject}}, []string{"approve", "reject"}},
		{"RestMany", []any{approve, reject}, []string{"approve", "reject"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := property.NewStep(wire.Payload{
				"identifier": "review",
				"label":      "Review",
				"stepType":   "transition",
				"owner":      "editors",
				"actions":    tt.actions,
			})
			require.NoError(t, err)
			assert.Equal(t, "review", s.Identifier())
			assert.Equal(t, "transition", s.StepType())

			var got []string
			for _, a := range s.Actions() {
				got = append(got, a.Identifier())
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Export", func(t *testing.T) {
		s, err := property.NewStep(wire.Payload{
			"identifier": "review",
			"actions":    []any{approve},
		})
		require.NoError(t, err)

		a, ok := s.Action("approve")
		require.True(t, ok)
		assert.Equal(t, "publish", a.NextID())
		_, ok = s.Action("missing")
		assert.False(t, ok)

		want := wire.Payload{"identifier": "approve", "label": "Approve", "nextId": "publish"}
		assert.Equal(t, wire.Payload{
			"identifier": "review",
			"actions":    wire.Payload{"action": want},
		}, s.ToWire(wire.SOAP))
		assert.Equal(t, wire.Payload{
			"identifier": "review",
			"actions":    []any{want},
		}, s.ToWire(wire.REST))
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := property.NewStep(wire.Payload{"label": "x"})
		assert.ErrorIs(t, err, domain.ErrEmptyValue)

		_, err = property.NewStep(wire.Payload{
			"identifier": "review",
			"actions":    []any{map[string]any{"label": "no id"}},
		})
		assert.ErrorIs(t, err, domain.ErrEmptyValue)

		_, err = property.NewStep(wire.Payload{"identifier": "review", "actions": []any{"approve", "reject"}})
		assert.ErrorIs(t, err, domain.ErrUnacceptableValue)
	})
}

func TestContentTypePageConfiguration(t *testing.T) {
	dest := map[string]any{"id": "d1", "type": "destination"}
	dest2 := map[string]any{"path": map[string]any{"path": "/staging"}, "type": "destination"}

	t.Run("SoapMany", func(t *testing.T) {
		c, err := property.NewContentTypePageConfiguration(wire.Payload{
			"pageConfigurationName": "Default",
			"publishMode":           property.PublishSelectedDestinations,
			"destinations":          map[string]any{"assetIdentifier": []any{dest, dest2}},
		})
		require.NoError(t, err)
		require.Len(t, c.Destinations(), 2)
		assert.Equal(t, "d1", c.Destinations()[0].ID())
		assert.Equal(t, "/staging", c.Destinations()[1].PathString())

		rest := c.ToWire(wire.REST)
		assert.Equal(t, []any{
			wire.Payload{"id": "d1", "type": "destination"},
			wire.Payload{"path": wire.Payload{"path": "/staging"}, "type": "destination"},
		}, rest["destinations"])
	})

	t.Run("SoapSingle", func(t *testing.T) {
		c, err := property.NewContentTypePageConfiguration(wire.Payload{
			"publishMode":  property.PublishSelectedDestinations,
			"destinations": map[string]any{"assetIdentifier": dest},
		})
		require.NoError(t, err)
		assert.Equal(t, wire.Payload{
			"publishMode":  property.PublishSelectedDestinations,
			"destinations": wire.Payload{"assetIdentifier": wire.Payload{"id": "d1", "type": "destination"}},
		}, c.ToWire(wire.SOAP))
	})

	t.Run("SetPublishModeClearsDestinations", func(t *testing.T) {
		c, err := property.NewContentTypePageConfiguration(wire.Payload{
			"publishMode":  property.PublishSelectedDestinations,
			"destinations": []any{dest},
		})
		require.NoError(t, err)

		assert.ErrorIs(t, c.SetPublishMode("sometimes"), domain.ErrUnacceptableValue)
		assert.Len(t, c.Destinations(), 1)

		require.NoError(t, c.SetPublishMode(property.PublishAllDestinations))
		assert.Empty(t, c.Destinations())
		assert.Equal(t, wire.Payload{"publishMode": property.PublishAllDestinations}, c.ToWire(wire.SOAP))
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := property.NewContentTypePageConfiguration(wire.Payload{"pageConfigurationId": "1"})
		assert.ErrorIs(t, err, domain.ErrEmptyValue)

		_, err = property.NewContentTypePageConfiguration(wire.Payload{"publishMode": "never"})
		assert.ErrorIs(t, err, domain.ErrUnacceptableValue)

		_, err = property.NewContentTypePageConfiguration(wire.Payload{
			"publishMode":  property.PublishSelectedDestinations,
			"destinations": []any{map[string]any{"id": "d1"}},
		})
		assert.ErrorIs(t, err, domain.ErrEmptyValue)
	})
}
