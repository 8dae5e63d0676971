package entity

import "slices"

// Role is a permission carried by a session token.
type Role string

// RoleGuild is held by sessions opened with a guild (or the admin) password.
// It grants every ledger operation on that guild.
const RoleGuild Role = "guild"

var knownRoles = []Role{RoleGuild}

func (r Role) String() string {
	return string(r)
}

// Roles is the role set of one session.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to the claim format of the session token.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings reads token claims, dropping roles this service does not know.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); slices.Contains(knownRoles, role) {
			result = append(result, role)
		}
	}

	return result
}
