package admin

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest for POST /admin/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse after successful login
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Admin       *AdminResponse `json:"admin"`
}

// AdminResponse represents admin in API
type AdminResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	LastLoginAt *string   `json:"last_login_at,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// AdminResponseFromEntity converts entity to response
func AdminResponseFromEntity(a *AdminUser) *AdminResponse {
	resp := &AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      string(a.Role),
		Name:      a.Name,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}

	if a.LastLoginAt.Valid {
		s := a.LastLoginAt.Time.Format(time.RFC3339)
		resp.LastLoginAt = &s
	}

	if perms, ok := RolePermissions[a.Role]; ok {
		resp.Permissions = make([]string, len(perms))
		for i, p := range perms {
			resp.Permissions[i] = string(p)
		}
	}

	return resp
}

// CreateAdminRequest for POST /admin/admins
type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,admin_role"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

// UpdateAdminRequest for PATCH /admin/admins/{id}
type UpdateAdminRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Role     *string `json:"role,omitempty" validate:"omitempty,admin_role"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// BanUserRequest for POST /admin/users/{id}/ban
type BanUserRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// UserListFilter for GET /admin/users
type UserListFilter struct {
	Search string
	Banned *bool
	Limit  int
	Offset int
}

// Stats aggregates platform counters for the admin dashboard
type Stats struct {
	Users struct {
		Total       int `json:"total"`
		ActiveToday int `json:"active_today"`
		NewThisWeek int `json:"new_this_week"`
		Banned      int `json:"banned"`
	} `json:"users"`
	Posts struct {
		Total       int `json:"total"`
		NewThisWeek int `json:"new_this_week"`
	} `json:"posts"`
	Reports struct {
		Pending     int `json:"pending"`
		Reviewing   int `json:"reviewing"`
		Resolved    int `json:"resolved"`
		Dismissed   int `json:"dismissed"`
		NewThisWeek int `json:"new_this_week"`
	} `json:"reports"`
}
