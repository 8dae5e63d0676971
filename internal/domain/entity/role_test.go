package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStringsDropsUnknown(t *testing.T) {
	roles := RolesFromStrings([]string{"guild", "superuser", ""})

	assert.Equal(t, Roles{RoleGuild}, roles)
	assert.True(t, roles.Contains(RoleGuild))
}

func TestRolesToStrings(t *testing.T) {
	assert.Equal(t, []string{"guild"}, Roles{RoleGuild}.ToStrings())
	assert.Empty(t, RolesFromStrings(nil).ToStrings())
}
