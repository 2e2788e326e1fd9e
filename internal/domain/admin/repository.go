package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campusmind/campusmind-api/internal/domain/user"
)

// Repository defines admin data access
type Repository interface {
	// Admin users
	CreateAdmin(ctx context.Context, admin *AdminUser) error
	GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error)
	GetAdminByEmail(ctx context.Context, email string) (*AdminUser, error)
	ListAdmins(ctx context.Context) ([]*AdminUser, error)
	UpdateAdmin(ctx context.Context, admin *AdminUser) error
	UpdateLoginAttempts(ctx context.Context, id uuid.UUID, attempts int, lockedUntil sql.NullTime) error
	RecordLogin(ctx context.Context, id uuid.UUID) error

	// Platform users
	ListUsers(ctx context.Context, filter UserListFilter) ([]*user.User, int, error)

	// Dashboard
	GetStats(ctx context.Context) (*Stats, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates admin repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Admin users

func (r *repository) CreateAdmin(ctx context.Context, admin *AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, password_hash, role, name, is_active, failed_login_attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.Name,
		admin.IsActive,
		admin.FailedLoginAttempts,
		admin.CreatedAt,
		admin.UpdatedAt,
	)
	return err
}

func (r *repository) GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	query := `SELECT * FROM admin_users WHERE id = $1`
	var admin AdminUser
	err := r.db.GetContext(ctx, &admin, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) GetAdminByEmail(ctx context.Context, email string) (*AdminUser, error) {
	query := `SELECT * FROM admin_users WHERE email = $1`
	var admin AdminUser
	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func (r *repository) ListAdmins(ctx context.Context) ([]*AdminUser, error) {
	query := `SELECT * FROM admin_users ORDER BY created_at DESC`
	var admins []*AdminUser
	err := r.db.SelectContext(ctx, &admins, query)
	return admins, err
}

func (r *repository) UpdateAdmin(ctx context.Context, admin *AdminUser) error {
	query := `
		UPDATE admin_users SET
			name = $2, role = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		admin.ID,
		admin.Name,
		admin.Role,
		admin.IsActive,
	)
	return err
}

func (r *repository) UpdateLoginAttempts(ctx context.Context, id uuid.UUID, attempts int, lockedUntil sql.NullTime) error {
	query := `
		UPDATE admin_users SET
			failed_login_attempts = $2, locked_until = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, attempts, lockedUntil)
	return err
}

func (r *repository) RecordLogin(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE admin_users SET
			failed_login_attempts = 0, locked_until = NULL, last_login_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// Platform users

func (r *repository) ListUsers(ctx context.Context, filter UserListFilter) ([]*user.User, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filter.Search != "" {
		where += fmt.Sprintf(` AND (email ILIKE $%d OR display_name ILIKE $%d)`, argIndex, argIndex)
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.Banned != nil {
		where += fmt.Sprintf(` AND is_banned = $%d`, argIndex)
		args = append(args, *filter.Banned)
		argIndex++
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`+where, args...); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT * FROM users` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argIndex, argIndex+1)
	args = append(args, limit, offset)

	var users []*user.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Dashboard

func (r *repository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	// User stats
	r.db.GetContext(ctx, &stats.Users.Total, `SELECT COUNT(*) FROM users`)
	r.db.GetContext(ctx, &stats.Users.ActiveToday, `SELECT COUNT(*) FROM users WHERE last_active_at >= CURRENT_DATE`)
	r.db.GetContext(ctx, &stats.Users.NewThisWeek, `SELECT COUNT(*) FROM users WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'`)
	r.db.GetContext(ctx, &stats.Users.Banned, `SELECT COUNT(*) FROM users WHERE is_banned = true`)

	// Post stats
	r.db.GetContext(ctx, &stats.Posts.Total, `SELECT COUNT(*) FROM posts`)
	r.db.GetContext(ctx, &stats.Posts.NewThisWeek, `SELECT COUNT(*) FROM posts WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'`)

	// Report stats
	r.db.GetContext(ctx, &stats.Reports.Pending, `SELECT COUNT(*) FROM reports WHERE status = 'pending'`)
	r.db.GetContext(ctx, &stats.Reports.Reviewing, `SELECT COUNT(*) FROM reports WHERE status = 'reviewing'`)
	r.db.GetContext(ctx, &stats.Reports.Resolved, `SELECT COUNT(*) FROM reports WHERE status = 'resolved'`)
	r.db.GetContext(ctx, &stats.Reports.Dismissed, `SELECT COUNT(*) FROM reports WHERE status = 'dismissed'`)
	r.db.GetContext(ctx, &stats.Reports.NewThisWeek, `SELECT COUNT(*) FROM reports WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'`)

	return stats, nil
}
