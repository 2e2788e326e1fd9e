package admin

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents admin role
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// AdminUser represents an admin panel user
type AdminUser struct {
	ID                  uuid.UUID    `db:"id" json:"id"`
	Email               string       `db:"email" json:"email"`
	PasswordHash        string       `db:"password_hash" json:"-"`
	Role                Role         `db:"role" json:"role"`
	Name                string       `db:"name" json:"name"`
	IsActive            bool         `db:"is_active" json:"is_active"`
	FailedLoginAttempts int          `db:"failed_login_attempts" json:"-"`
	LockedUntil         sql.NullTime `db:"locked_until" json:"-"`
	LastLoginAt         sql.NullTime `db:"last_login_at" json:"last_login_at,omitempty"`
	CreatedAt           time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at" json:"updated_at"`
}

// HasPermission checks if admin has a specific permission
func (a *AdminUser) HasPermission(perm Permission) bool {
	permissions, ok := RolePermissions[a.Role]
	if !ok {
		return false
	}
	for _, p := range permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// IsLocked reports whether the account is currently locked out
func (a *AdminUser) IsLocked(now time.Time) bool {
	return a.LockedUntil.Valid && now.Before(a.LockedUntil.Time)
}
