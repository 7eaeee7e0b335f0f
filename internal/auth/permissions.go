package auth

import (
	"errors"

	"chefbazaar_backend/internal/models"
)

// Gate describes what a protected operation demands from a caller: an
// optional role whitelist and whether fraud-flagged accounts are blocked.
// The three checks (credential, role, status) are independent and evaluated
// in that order.
type Gate struct {
	Roles       []models.UserRole
	ForbidFraud bool
}

// RoleAllowed reports whether the role passes the gate's whitelist.
// An empty whitelist allows any role.
func (g Gate) RoleAllowed(role models.UserRole) bool {
	if len(g.Roles) == 0 {
		return true
	}
	for _, r := range g.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// StatusAllowed reports whether the caller's status passes the gate.
func (g Gate) StatusAllowed(status models.UserStatus) bool {
	if g.ForbidFraud && status == models.UserStatusFraud {
		return false
	}
	return true
}

// IsAdmin reports whether the claim set carries the admin role.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// IsChef reports whether the claim set carries the chef role.
func IsChef(claims *Claims) bool {
	return claims.Role == models.UserRoleChef
}

// ValidateRole checks that a role value is one of the known roles.
func ValidateRole(role models.UserRole) error {
	switch role {
	case models.UserRoleUser, models.UserRoleChef, models.UserRoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
