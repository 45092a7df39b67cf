// Package entities contains core business entities.
package entities

// Role enumerates caller roles carried by access tokens.
type Role string

const (
	// RoleClinic marks a caller acting as a clinic.
	RoleClinic Role = "clinic"
	// RoleDoctor marks a caller acting as a doctor.
	RoleDoctor Role = "doctor"
)

// Actor is the request-scoped caller identity resolved from the access token.
// The zero value means no authenticated caller.
type Actor struct {
	ID   int64
	Role Role
}

// Authenticated reports whether a caller identity is present.
func (a Actor) Authenticated() bool {
	return a.ID != 0 && (a.Role == RoleClinic || a.Role == RoleDoctor)
}

// IsClinic reports an authenticated clinic caller.
func (a Actor) IsClinic() bool {
	return a.Authenticated() && a.Role == RoleClinic
}

// IsDoctor reports an authenticated doctor caller.
func (a Actor) IsDoctor() bool {
	return a.Authenticated() && a.Role == RoleDoctor
}
