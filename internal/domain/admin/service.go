package admin

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/campusmind/campusmind-api/internal/domain/user"
	"github.com/campusmind/campusmind-api/internal/pkg/password"
)

// Service handles admin business logic
type Service struct {
	repo            Repository
	userRepo        user.Repository
	maxLoginFails   int
	lockoutDuration time.Duration
}

// NewService creates admin service
func NewService(repo Repository, userRepo user.Repository, maxLoginFails int, lockoutDuration time.Duration) *Service {
	return &Service{
		repo:            repo,
		userRepo:        userRepo,
		maxLoginFails:   maxLoginFails,
		lockoutDuration: lockoutDuration,
	}
}

// --- Authentication ---

// Login authenticates admin. Repeated failures lock the account for
// lockoutDuration; the counter resets on a successful login.
func (s *Service) Login(ctx context.Context, email, pwd string) (*AdminUser, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil || admin == nil {
		return nil, ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, ErrAdminInactive
	}

	now := time.Now()
	if admin.IsLocked(now) {
		return nil, ErrAccountLocked
	}

	if !password.Verify(pwd, admin.PasswordHash) {
		s.recordFailedLogin(ctx, admin, now)
		return nil, ErrInvalidCredentials
	}

	_ = s.repo.RecordLogin(ctx, admin.ID)

	return admin, nil
}

func (s *Service) recordFailedLogin(ctx context.Context, admin *AdminUser, now time.Time) {
	attempts := admin.FailedLoginAttempts + 1
	if admin.LockedUntil.Valid && !now.Before(admin.LockedUntil.Time) {
		// Previous lock expired, start counting over
		attempts = 1
	}

	var lockedUntil sql.NullTime
	if attempts >= s.maxLoginFails {
		lockedUntil = sql.NullTime{Time: now.Add(s.lockoutDuration), Valid: true}
		log.Warn().
			Str("admin_id", admin.ID.String()).
			Int("attempts", attempts).
			Time("locked_until", lockedUntil.Time).
			Msg("admin account locked after repeated login failures")
	}

	if err := s.repo.UpdateLoginAttempts(ctx, admin.ID, attempts, lockedUntil); err != nil {
		log.Error().Err(err).Str("admin_id", admin.ID.String()).Msg("failed to record login attempt")
	}
}

// GetAdminByID returns admin by ID
func (s *Service) GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	admin, err := s.repo.GetAdminByID(ctx, id)
	if err != nil || admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// --- Admin Management ---

// CreateAdmin creates a new admin user
func (s *Service) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*AdminUser, error) {
	existing, _ := s.repo.GetAdminByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &AdminUser{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         Role(req.Role),
		Name:         req.Name,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// UpdateAdmin updates admin user
func (s *Service) UpdateAdmin(ctx context.Context, actorID, targetID uuid.UUID, req *UpdateAdminRequest) (*AdminUser, error) {
	admin, err := s.repo.GetAdminByID(ctx, targetID)
	if err != nil || admin == nil {
		return nil, ErrAdminNotFound
	}

	if actorID != targetID {
		actor, _ := s.repo.GetAdminByID(ctx, actorID)
		if actor != nil && !CanManage(actor.Role, admin.Role) {
			return nil, ErrCannotManageRole
		}
	}

	if req.Name != nil {
		admin.Name = *req.Name
	}
	if req.Role != nil {
		admin.Role = Role(*req.Role)
	}
	if req.IsActive != nil {
		admin.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// ListAdmins returns all admins
func (s *Service) ListAdmins(ctx context.Context) ([]*AdminUser, error) {
	return s.repo.ListAdmins(ctx)
}

// --- User Management ---

// ListUsers returns platform users for the admin panel
func (s *Service) ListUsers(ctx context.Context, filter UserListFilter) ([]*user.User, int, error) {
	return s.repo.ListUsers(ctx, filter)
}

// BanUser bans a platform user
func (s *Service) BanUser(ctx context.Context, adminID, userID uuid.UUID, reason string) error {
	if err := s.userRepo.SetBanned(ctx, userID, true); err != nil {
		if err == user.ErrUserNotFound {
			return ErrUserNotFound
		}
		return err
	}

	log.Info().
		Str("admin_id", adminID.String()).
		Str("user_id", userID.String()).
		Str("reason", reason).
		Msg("user banned")

	return nil
}

// UnbanUser lifts a ban from a platform user
func (s *Service) UnbanUser(ctx context.Context, adminID, userID uuid.UUID) error {
	if err := s.userRepo.SetBanned(ctx, userID, false); err != nil {
		if err == user.ErrUserNotFound {
			return ErrUserNotFound
		}
		return err
	}

	log.Info().
		Str("admin_id", adminID.String()).
		Str("user_id", userID.String()).
		Msg("user unbanned")

	return nil
}

// --- Dashboard ---

// GetStats returns aggregate platform counters
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	return s.repo.GetStats(ctx)
}
