// File: internal/domain/models/role_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"owner", "admin", "moderator", "vip", "user", "guest"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, role.String())
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)

	_, err = ParseRole("Admin")
	assert.Error(t, err, "role values are case sensitive")
}

func TestContains(t *testing.T) {
	allow := []Role{RoleOwner, RoleAdmin}

	assert.True(t, Contains(allow, RoleOwner))
	assert.True(t, Contains(allow, RoleAdmin))
	assert.False(t, Contains(allow, RoleModerator))
	assert.False(t, Contains(allow, RoleUser))
	assert.False(t, Contains(allow, Role("superuser")))
}

func TestContains_EmptyAllowlistAdmitsValidRolesOnly(t *testing.T) {
	assert.True(t, Contains(nil, RoleGuest))
	assert.True(t, Contains(nil, RoleVIP))
	assert.False(t, Contains(nil, Role("madeup")))
}
