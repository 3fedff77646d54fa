package auth

import (
	"fmt"

	"github.com/leoAraujo20/lu-estilo-api/internal/common"
)

// Role is the closed set of account roles. Authorization policy is exact
// match: an admin-only operation requires RoleAdmin, nothing else satisfies it.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// ParseRole converts a stored or transmitted role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStandard:
		return RoleStandard, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Satisfies reports whether r grants the permissions of required.
// There is no role hierarchy.
func (r Role) Satisfies(required Role) bool {
	return r == required
}

// Principal is the validated identity making one request. It lives for the
// duration of that request only and is never shared across requests.
type Principal struct {
	UserID string
	Role   Role
}

// Authorize checks the principal's role against the required role.
// Returns common.ErrInsufficientPermission when the policy is not satisfied.
func Authorize(p *Principal, required Role) error {
	if p == nil {
		return common.ErrMissingCredentials
	}
	if !p.Role.Satisfies(required) {
		return common.ErrInsufficientPermission
	}
	return nil
}
