package domain

// Role enumerates back-office access levels.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
)

// RoleSet holds the roles granted to one account.
type RoleSet map[Role]struct{}

// NewRoleSet builds a set from a role slice.
func NewRoleSet(roles []Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the role.
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// IsExactlyClient reports whether the set grants client access and nothing
// above it. Accounts promoted to staff or admin stop counting as clients.
func (s RoleSet) IsExactlyClient() bool {
	return s.Has(RoleClient) && !s.Has(RoleStaff) && !s.Has(RoleAdmin)
}

// RoleAssignment links an account to one granted role.
type RoleAssignment struct {
	UserID string
	Role   Role
}
