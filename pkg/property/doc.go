/*
Package property implements the value objects that mirror the sub-structures
of the content-management service's asset payloads.

Every type is built from a wire payload by its New* constructor, exposes typed
getters and validating setters, and converts back to the wire shape.

# Scalar Properties

Path, Child (alias Identifier), Parameter, PossibleValue, Action, AclEntry and
ContentTypePageConfiguration are flat field mappings. Absent or null keys leave
the attribute unset and ToWire emits only attributes that are set, so

	p, _ := property.NewPath(payload)
	p.ToWire() // equivalent to payload

# Collection Properties

FieldValue, DynamicField, RoleAssignment and Step hold repeated values whose
wire shape depends on cardinality and on the dialect (see package wire).
They normalise to an ordered slice on input and take the Mode explicitly on
output:

	fv, _ := property.NewFieldValue(raw)
	fv.ToWire(wire.REST)

Failures unwrap to the kinds declared in package domain.
*/
package property
