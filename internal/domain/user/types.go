package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleCrew       Role = "crew"
	RoleDispatcher Role = "dispatcher"
	RoleOperations Role = "operations"
	RoleAdmin      Role = "admin"
)

var roleHierarchy = map[Role]int{
	RoleCrew:       1,
	RoleDispatcher: 2,
	RoleOperations: 3,
	RoleAdmin:      4,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

func (r Role) AtLeast(min Role) bool {
	level, ok := roleHierarchy[r]
	minLevel, minOK := roleHierarchy[min]
	return ok && minOK && level >= minLevel
}

// CanOverrideExit reports whether the role may approve an exit without crew consensus.
func (r Role) CanOverrideExit() bool {
	return r.AtLeast(RoleDispatcher)
}

// CanReadAnyDraft reports whether the role may read drafts owned by other users.
func (r Role) CanReadAnyDraft() bool {
	return r.AtLeast(RoleOperations)
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
