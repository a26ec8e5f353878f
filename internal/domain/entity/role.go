// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a member can have in the system.
type Role string

const (
	// RoleUser indicates a regular member role.
	RoleUser Role = "USER"
	// RoleMentor indicates a mentor role.
	RoleMentor Role = "MENTOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMentor:
		return true
	default:
		return false
	}
}

// RoleFromString converts a claim string back to a Role.
// Returns false when the string names no known role.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
