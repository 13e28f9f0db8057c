package auth

import "github.com/pixelcraft/agency-backoffice/internal/domain"

// Identity is the resolved caller: who they are and which roles they
// currently hold. Role data is always read fresh, never from the token.
type Identity struct {
	UserID string
	Roles  domain.RoleSet
}

// Anonymous returns the empty identity used when no session can be resolved.
func Anonymous() Identity {
	return Identity{Roles: domain.RoleSet{}}
}

// IsAnonymous reports whether no authenticated user backs this identity.
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

// IsAdmin reports admin role membership.
func (i Identity) IsAdmin() bool {
	return i.Roles.Has(domain.RoleAdmin)
}

// IsStaffOnly reports staff membership without admin.
func (i Identity) IsStaffOnly() bool {
	return i.Roles.Has(domain.RoleStaff) && !i.IsAdmin()
}
