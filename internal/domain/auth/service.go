package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/campusmind/campusmind-api/internal/domain/user"
	"github.com/campusmind/campusmind-api/internal/pkg/jwt"
	"github.com/campusmind/campusmind-api/internal/pkg/password"
)

// Service handles authentication business logic
type Service struct {
	userRepo   user.Repository
	jwtService *jwt.Service
	redis      *redis.Client // nil if Redis disabled
	accessTTL  time.Duration
}

// NewService creates auth service
func NewService(userRepo user.Repository, jwtService *jwt.Service, redis *redis.Client, accessTTL time.Duration) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redis,
		accessTTL:  accessTTL,
	}
}

// Register creates new user account
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	existing, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
		Role:         user.RoleStudent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.generateTokens(ctx, u)
}

// Login authenticates user
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if u.IsBanned {
		return nil, ErrUserBanned
	}

	_ = s.userRepo.TouchLastActive(ctx, u.ID)

	return s.generateTokens(ctx, u)
}

// Refresh rotates the refresh token and issues a new token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	if refreshToken == "" {
		return nil, ErrRefreshTokenRequired
	}

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// The jti must still be present in Redis, otherwise the token was
	// rotated out or revoked by logout.
	if err := s.consumeRefreshToken(ctx, claims.ID); err != nil {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	// Token refresh is an authenticated call too; it keeps the
	// last-active timestamp (and the "active today" stat) current for
	// users who never re-enter a password.
	_ = s.userRepo.TouchLastActive(ctx, u.ID)

	return s.generateTokens(ctx, u)
}

// Logout invalidates refresh token
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil // Nothing to logout
	}

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil // Already unusable
	}

	return s.deleteRefreshToken(ctx, claims.ID)
}

// GetCurrentUser returns current user by ID
func (s *Service) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}

	resp := NewUserResponse(u.ID, u.Email, u.DisplayName, string(u.Role), u.CreatedAt)
	return &resp, nil
}

// generateTokens creates access and refresh tokens
func (s *Service) generateTokens(ctx context.Context, u *user.User) (*AuthResponse, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(u.ID, string(u.Role), u.IsBanned)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.storeRefreshToken(ctx, claims.ID, u.ID); err != nil {
		return nil, err
	}

	return &AuthResponse{
		User: NewUserResponse(u.ID, u.Email, u.DisplayName, string(u.Role), u.CreatedAt),
		Tokens: TokensResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    int(s.accessTTL.Seconds()),
		},
	}, nil
}

// Redis helpers (handle nil redis gracefully)

func (s *Service) storeRefreshToken(ctx context.Context, jti string, userID uuid.UUID) error {
	if s.redis == nil {
		return nil // Skip if Redis not configured
	}
	return s.redis.Set(ctx, "refresh:"+jti, userID.String(), s.jwtService.GetRefreshTTL()).Err()
}

func (s *Service) consumeRefreshToken(ctx context.Context, jti string) error {
	if s.redis == nil {
		// Without Redis the signed JWT alone is trusted (no rotation)
		return nil
	}
	deleted, err := s.redis.Del(ctx, "refresh:"+jti).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrInvalidRefreshToken
	}
	return nil
}

func (s *Service) deleteRefreshToken(ctx context.Context, jti string) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, "refresh:"+jti).Err()
}
