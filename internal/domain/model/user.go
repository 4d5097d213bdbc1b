package model

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleVendor   Role = "VENDOR"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole maps a raw string onto the role enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether role belongs to the enum.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// User represents a registered account of any role.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
