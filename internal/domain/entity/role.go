// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleAdmin indicates an administrator role with full management access.
	RoleAdmin Role = "admin"
	// RoleUser indicates a regular editor role.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}
