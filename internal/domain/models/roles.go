// internal/domain/models/roles.go
package models

// Association roles. The string values are part of the API contract and
// must match what clients and stored membership records use.
const (
	RolePresident          = "president"
	RoleVicePresident      = "vice_president"
	RoleTreasurer          = "treasurer"
	RoleAreaRepresentative = "area_representative"
	RoleMember             = "member"
)

// ValidRole reports whether role is one of the recognized association roles.
func ValidRole(role string) bool {
	switch role {
	case RolePresident, RoleVicePresident, RoleTreasurer, RoleAreaRepresentative, RoleMember:
		return true
	}
	return false
}

// OfficerRoles are the roles allowed to manage an association's settings
// and roster.
func OfficerRoles() []string {
	return []string{RolePresident, RoleVicePresident}
}
