package property

import (
	"slices"
	"strings"

	"github.com/aretw0/cascade/pkg/domain"
	"github.com/aretw0/cascade/pkg/schema"
	"github.com/aretw0/cascade/pkg/wire"
)

// RoleAssignment binds a site role to users and groups.
// On the wire users and groups are comma-joined strings; an empty list is
// an absent key.
type RoleAssignment struct {
	roleID   *string
	roleName *string
	users    []string
	groups   []string
}

type roleAssignmentWire struct {
	RoleID   *string `mapstructure:"roleId"`
	RoleName *string `mapstructure:"roleName"`
	Users    *string `mapstructure:"users"`
	Groups   *string `mapstructure:"groups"`
}

var roleAssignmentSchema = schema.Schema{
	"roleId":   schema.String(),
	"roleName": schema.String(),
	"users":    schema.String(),
	"groups":   schema.String(),
}

// NewRoleAssignment builds a RoleAssignment. Either roleId or roleName is required.
func NewRoleAssignment(p wire.Payload) (*RoleAssignment, error) {
	if err := validate("RoleAssignment", roleAssignmentSchema, p); err != nil {
		return nil, err
	}
	var w roleAssignmentWire
	if err := decode("RoleAssignment", p, &w); err != nil {
		return nil, err
	}
	if blank(wire.Deref(w.RoleID)) && blank(wire.Deref(w.RoleName)) {
		return nil, domain.Empty("RoleAssignment", "roleId")
	}

	r := &RoleAssignment{roleID: w.RoleID, roleName: w.RoleName}
	if err := r.SetUsers(splitNames(wire.Deref(w.Users))...); err != nil {
		return nil, err
	}
	if err := r.SetGroups(splitNames(wire.Deref(w.Groups))...); err != nil {
		return nil, err
	}
	return r, nil
}

func splitNames(joined string) []string {
	if blank(joined) {
		return nil
	}
	parts := strings.Split(joined, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (r *RoleAssignment) RoleID() string   { return wire.Deref(r.roleID) }
func (r *RoleAssignment) RoleName() string { return wire.Deref(r.roleName) }
func (r *RoleAssignment) Users() []string  { return slices.Clone(r.users) }
func (r *RoleAssignment) Groups() []string { return slices.Clone(r.groups) }

// SetUsers replaces the user list. Names must be non-blank and unique.
func (r *RoleAssignment) SetUsers(names ...string) error {
	list, err := nameList("users", names)
	if err != nil {
		return err
	}
	r.users = list
	return nil
}

// SetGroups replaces the group list. Names must be non-blank and unique.
func (r *RoleAssignment) SetGroups(names ...string) error {
	list, err := nameList("groups", names)
	if err != nil {
		return err
	}
	r.groups = list
	return nil
}

func nameList(field string, names []string) ([]string, error) {
	for _, n := range names {
		if blank(n) {
			return nil, domain.Empty("RoleAssignment", field)
		}
		if strings.Contains(n, ",") {
			return nil, domain.Unacceptable("RoleAssignment", field, n, "names cannot contain commas")
		}
	}
	if err := uniqueNonBlank("RoleAssignment", field, names); err != nil {
		return nil, err
	}
	return slices.Clone(names), nil
}

// AddUser appends a user unless it is already assigned.
func (r *RoleAssignment) AddUser(name string) error {
	list, err := addName("users", r.users, name)
	if err != nil {
		return err
	}
	r.users = list
	return nil
}

// AddGroup appends a group unless it is already assigned.
func (r *RoleAssignment) AddGroup(name string) error {
	list, err := addName("groups", r.groups, name)
	if err != nil {
		return err
	}
	r.groups = list
	return nil
}

func addName(field string, list []string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if _, err := nameList(field, []string{name}); err != nil {
		return nil, err
	}
	if slices.Contains(list, name) {
		return list, nil
	}
	return append(list, name), nil
}

// RemoveUser drops a user; unknown names are ignored.
func (r *RoleAssignment) RemoveUser(name string) {
	r.users = slices.DeleteFunc(r.users, func(u string) bool { return u == name })
}

// RemoveGroup drops a group; unknown names are ignored.
func (r *RoleAssignment) RemoveGroup(name string) {
	r.groups = slices.DeleteFunc(r.groups, func(g string) bool { return g == name })
}

func (r *RoleAssignment) ToWire() wire.Payload {
	out := wire.Payload{}
	wire.Put(out, "roleId", r.roleID)
	wire.Put(out, "roleName", r.roleName)
	wire.PutString(out, "users", strings.Join(r.users, ","))
	wire.PutString(out, "groups", strings.Join(r.groups, ","))
	return out
}

func (r *RoleAssignment) Encode(wire.Mode) any { return r.ToWire() }
