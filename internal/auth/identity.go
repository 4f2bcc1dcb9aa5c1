package auth

import "fmt"

// Role is a closed enumeration. Every switch over Role must handle all
// three values plus a default branch; never compare raw strings.
type Role string

const (
	RoleUser     Role = "user"
	RoleMechanic Role = "mechanic"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleMechanic, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Identity is the authenticated caller. Handlers receive it from the
// auth middleware and pass it explicitly into every use case.
type Identity struct {
	UserID uint
	Role   Role
}
