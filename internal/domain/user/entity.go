package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents user role in the system (matches user_role enum)
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User represents a community user account
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	Role         Role      `db:"role"`
	IsBanned     bool      `db:"is_banned"`

	// Activity tracking feeds the admin "active today" counter
	LastActiveAt sql.NullTime `db:"last_active_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsAdmin returns true if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive returns true if user is not banned
func (u *User) IsActive() bool {
	return !u.IsBanned
}
