package domain

import "time"

// Role distinguishes landlords from renters. Every authenticated user has
// exactly one role, chosen on first profile save.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleTenant Role = "tenant"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleTenant
}

type User struct {
	ID         string
	ExternalID string // Subject from the identity provider, unique
	Email      string
	Name       string
	Role       Role
	Phone      string
	Bio        string
	Address    string
	City       string
	State      string
	ZipCode    string
	Country    string

	ProfilePhoto string // URL only; file storage lives elsewhere

	EmailNotifications bool
	SMSNotifications   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
