// File: internal/domain/models/role.go
package models

import "fmt"

// Role is the closed enumeration of account roles. Role checks go through
// Contains rather than ad hoc string comparison at call sites.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleVIP       Role = "vip"
	RoleUser      Role = "user"
	RoleGuest     Role = "guest"
)

var allRoles = map[Role]struct{}{
	RoleOwner:     {},
	RoleAdmin:     {},
	RoleModerator: {},
	RoleVIP:       {},
	RoleUser:      {},
	RoleGuest:     {},
}

// ParseRole converts a raw claim value into a Role, rejecting anything
// outside the enumeration.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := allRoles[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether r is a member of the enumeration.
func (r Role) Valid() bool {
	_, ok := allRoles[r]
	return ok
}

func (r Role) String() string { return string(r) }

// Contains reports whether r is present in the allowlist. An empty
// allowlist admits any valid role (authenticated-only gate).
func Contains(allowlist []Role, r Role) bool {
	if len(allowlist) == 0 {
		return r.Valid()
	}
	for _, a := range allowlist {
		if a == r {
			return true
		}
	}
	return false
}
