// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Role is the capability tier granted to an authenticated principal
// within its tenant.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Identity represents the currently authenticated principal as reported by
// the backend. It is replaced wholesale on every fetch and never patched
// field-by-field; consumers treat it as read-only.
type Identity struct {
	ID        string // Backend-assigned unique identifier for the principal.
	Email     string // The principal's login email.
	FirstName string // Given name, as registered.
	LastName  string // Family name, as registered.
	Role      Role   // Capability tier within the owning tenant.
	TenantID  string // Identifier of the tenant this principal belongs to.
}

// FullName returns the principal's display name.
func (i *Identity) FullName() string {
	if i.FirstName == "" {
		return i.LastName
	}
	if i.LastName == "" {
		return i.FirstName
	}

	return i.FirstName + " " + i.LastName
}
