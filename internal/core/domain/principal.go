package domain

import (
	"errors"
	"time"
)

// Role is the closed set of privileged roles a principal can carry.
// Ordinary clients are not principals and carry no role.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole converts a raw claim value into a Role. Anything outside the
// closed set is rejected so that role comparisons happen in exactly one place.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSuperAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")
var ErrDuplicateIdentity = errors.New("username or email already registered")
var ErrUnknownRole = errors.New("unknown role")
var ErrAdminNotFound = errors.New("admin not found")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// Principal is an authenticatable identity (admin or super-admin).
// PasswordHash is never serialized; plaintext passwords exist only for the
// duration of a Register or Login call.
type Principal struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
