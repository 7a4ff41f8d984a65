package property

import (
	"github.com/aretw0/cascade/pkg/registry"
	"github.com/aretw0/cascade/pkg/wire"
)

// Kind names accepted by Register.
const (
	KindPath              = "path"
	KindChild             = "child"
	KindIdentifier        = "identifier"
	KindParameter         = "parameter"
	KindPossibleValue     = "possibleValue"
	KindAction            = "action"
	KindAclEntry          = "aclEntry"
	KindPageConfiguration = "pageConfiguration"
	KindFieldValue        = "fieldValue"
	KindDynamicField      = "dynamicField"
	KindRoleAssignment    = "roleAssignment"
	KindStep              = "step"
)

// Register adds a decoder for every property kind to r.
func Register(r *registry.Registry) {
	r.Register(KindPath, object("Path", NewPath))
	r.Register(KindChild, object("Child", NewChild))
	r.Register(KindIdentifier, object("Identifier", NewIdentifier))
	r.Register(KindParameter, object("Parameter", NewParameter))
	r.Register(KindPossibleValue, object("PossibleValue", NewPossibleValue))
	r.Register(KindAction, object("Action", NewAction))
	r.Register(KindAclEntry, object("AclEntry", NewAclEntry))
	r.Register(KindPageConfiguration, object("ContentTypePageConfiguration", NewContentTypePageConfiguration))
	r.Register(KindDynamicField, object("DynamicField", NewDynamicField))
	r.Register(KindRoleAssignment, object("RoleAssignment", NewRoleAssignment))
	r.Register(KindStep, object("Step", NewStep))

	r.Register(KindFieldValue, func(raw any) (registry.Encoder, error) {
		fv, err := NewFieldValue(raw)
		if err != nil {
			return nil, err
		}
		return fv, nil
	})
}

// NewRegistry returns a registry with every property kind registered.
func NewRegistry() *registry.Registry {
	r := registry.NewRegistry()
	Register(r)
	return r
}

func object[T registry.Encoder](property string, build func(wire.Payload) (T, error)) registry.DecodeFunc {
	return func(raw any) (registry.Encoder, error) {
		p, err := payloadOf(property, "payload", raw)
		if err != nil {
			return nil, err
		}
		v, err := build(p)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
