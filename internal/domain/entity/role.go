// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdministrator may mutate the catalog and manage accounts.
	RoleAdministrator Role = "Administrator"
	// RoleCustomer is granted to every self-registered account.
	RoleCustomer Role = "Customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Normalized returns the upper-cased form stored for uniqueness checks.
func (r Role) Normalized() string {
	return strings.ToUpper(string(r))
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleCustomer:
		return true
	default:
		return false
	}
}

// BuiltinRoles lists the roles that must always exist.
func BuiltinRoles() Roles {
	return Roles{RoleAdministrator, RoleCustomer}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// RoleRecord is a persisted role row.
type RoleRecord struct {
	ID             uuid.UUID
	Name           Role
	NormalizedName string
}
