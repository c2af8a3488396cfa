package domain

import "time"

// Role enumerates the roles a credential can carry into a session.
type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleEmployee    Role = "Employee"
	RoleFacilitator Role = "Facilitator"
)

// Credential is a login record: identifier, shared secret and the identity
// baked into tokens issued for it. Immutable after process start.
//
// Secrets are held and compared in plain text, matching the original
// deployment. A hardened build should store salted hashes instead; see
// service.AuthService.
type Credential struct {
	Identifier  string
	Secret      string
	DisplayName string
	Role        Role
	CreatedAt   time.Time
}
