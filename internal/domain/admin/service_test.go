package admin

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind-api/internal/domain/user"
	"github.com/campusmind/campusmind-api/internal/pkg/password"
)

type fakeAdminRepo struct {
	admins map[uuid.UUID]*AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[uuid.UUID]*AdminUser{}}
}

func (f *fakeAdminRepo) CreateAdmin(ctx context.Context, a *AdminUser) error {
	f.admins[a.ID] = a
	return nil
}
func (f *fakeAdminRepo) GetAdminByID(ctx context.Context, id uuid.UUID) (*AdminUser, error) {
	return f.admins[id], nil
}
func (f *fakeAdminRepo) GetAdminByEmail(ctx context.Context, email string) (*AdminUser, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}
func (f *fakeAdminRepo) ListAdmins(ctx context.Context) ([]*AdminUser, error) {
	var out []*AdminUser
	for _, a := range f.admins {
		out = append(out, a)
	}
	return out, nil
}
func (f *fakeAdminRepo) UpdateAdmin(ctx context.Context, a *AdminUser) error {
	f.admins[a.ID] = a
	return nil
}
func (f *fakeAdminRepo) UpdateLoginAttempts(ctx context.Context, id uuid.UUID, attempts int, lockedUntil sql.NullTime) error {
	a, ok := f.admins[id]
	if !ok {
		return ErrAdminNotFound
	}
	a.FailedLoginAttempts = attempts
	a.LockedUntil = lockedUntil
	return nil
}
func (f *fakeAdminRepo) RecordLogin(ctx context.Context, id uuid.UUID) error {
	a, ok := f.admins[id]
	if !ok {
		return ErrAdminNotFound
	}
	a.FailedLoginAttempts = 0
	a.LockedUntil = sql.NullTime{}
	a.LastLoginAt = sql.NullTime{Time: time.Now(), Valid: true}
	return nil
}
func (f *fakeAdminRepo) ListUsers(ctx context.Context, filter UserListFilter) ([]*user.User, int, error) {
	return nil, 0, nil
}
func (f *fakeAdminRepo) GetStats(ctx context.Context) (*Stats, error) {
	return &Stats{}, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return nil
}
func (f *fakeUserRepo) SetBanned(ctx context.Context, id uuid.UUID, banned bool) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsBanned = banned
	return nil
}
func (f *fakeUserRepo) TouchLastActive(ctx context.Context, id uuid.UUID) error { return nil }

const testPassword = "correct-horse-battery"

func seedAdmin(t *testing.T, repo *fakeAdminRepo) *AdminUser {
	t.Helper()
	hash, err := password.Hash(testPassword)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	a := &AdminUser{
		ID:           uuid.New(),
		Email:        "mod@campus.example",
		PasswordHash: hash,
		Role:         RoleModerator,
		Name:         "Moderator",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	repo.admins[a.ID] = a
	return a
}

func newTestService(repo *fakeAdminRepo) *Service {
	users := &fakeUserRepo{users: map[uuid.UUID]*user.User{}}
	return NewService(repo, users, 3, 15*time.Minute)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeAdminRepo()
	seeded := seedAdmin(t, repo)
	seeded.FailedLoginAttempts = 2
	svc := newTestService(repo)

	got, err := svc.Login(context.Background(), seeded.Email, testPassword)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("got admin %s, want %s", got.ID, seeded.ID)
	}
	if seeded.FailedLoginAttempts != 0 {
		t.Errorf("attempts = %d, want 0 after successful login", seeded.FailedLoginAttempts)
	}
	if !seeded.LastLoginAt.Valid {
		t.Error("successful login must record last login time")
	}
}

func TestLoginWrongPasswordCountsAttempts(t *testing.T) {
	repo := newFakeAdminRepo()
	seeded := seedAdmin(t, repo)
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), seeded.Email, "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if seeded.FailedLoginAttempts != 1 {
		t.Errorf("attempts = %d, want 1", seeded.FailedLoginAttempts)
	}
	if seeded.LockedUntil.Valid {
		t.Error("single failure must not lock the account")
	}
}

func TestLoginLocksAfterMaxFailures(t *testing.T) {
	repo := newFakeAdminRepo()
	seeded := seedAdmin(t, repo)
	svc := newTestService(repo)

	for i := 0; i < 3; i++ {
		if _, err := svc.Login(context.Background(), seeded.Email, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: err = %v, want ErrInvalidCredentials", i, err)
		}
	}

	if !seeded.LockedUntil.Valid {
		t.Fatal("account must be locked after max failures")
	}
	if until := time.Until(seeded.LockedUntil.Time); until < 14*time.Minute || until > 16*time.Minute {
		t.Errorf("lock window = %v, want about 15m", until)
	}

	// Even the correct password is rejected while locked.
	if _, err := svc.Login(context.Background(), seeded.Email, testPassword); !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("err = %v, want ErrAccountLocked", err)
	}
}

func TestLoginCounterRestartsAfterLockExpires(t *testing.T) {
	repo := newFakeAdminRepo()
	seeded := seedAdmin(t, repo)
	seeded.FailedLoginAttempts = 3
	seeded.LockedUntil = sql.NullTime{Time: time.Now().Add(-time.Minute), Valid: true}
	svc := newTestService(repo)

	if _, err := svc.Login(context.Background(), seeded.Email, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if seeded.FailedLoginAttempts != 1 {
		t.Errorf("attempts = %d, want counter restarted at 1", seeded.FailedLoginAttempts)
	}
	if seeded.LockedUntil.Valid {
		t.Error("expired lock must not be renewed by a single failure")
	}

	// Correct password now succeeds.
	if _, err := svc.Login(context.Background(), seeded.Email, testPassword); err != nil {
		t.Fatalf("login after lock expiry failed: %v", err)
	}
}

func TestLoginInactiveAdmin(t *testing.T) {
	repo := newFakeAdminRepo()
	seeded := seedAdmin(t, repo)
	seeded.IsActive = false
	svc := newTestService(repo)

	if _, err := svc.Login(context.Background(), seeded.Email, testPassword); !errors.Is(err, ErrAdminInactive) {
		t.Fatalf("err = %v, want ErrAdminInactive", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeAdminRepo())

	if _, err := svc.Login(context.Background(), "nobody@campus.example", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAdminRepo()
	seeded := seedAdmin(t, repo)
	svc := newTestService(repo)

	_, err := svc.CreateAdmin(context.Background(), &CreateAdminRequest{
		Email:    seeded.Email,
		Password: "another-password",
		Role:     string(RoleAdmin),
		Name:     "Second",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestBanAndUnbanUser(t *testing.T) {
	repo := newFakeAdminRepo()
	users := &fakeUserRepo{users: map[uuid.UUID]*user.User{}}
	svc := NewService(repo, users, 3, 15*time.Minute)

	u := &user.User{ID: uuid.New(), Email: "student@campus.example", DisplayName: "Student"}
	users.users[u.ID] = u
	adminID := uuid.New()

	if err := svc.BanUser(context.Background(), adminID, u.ID, "spamming"); err != nil {
		t.Fatalf("ban failed: %v", err)
	}
	if !u.IsBanned {
		t.Fatal("user must be banned")
	}

	if err := svc.UnbanUser(context.Background(), adminID, u.ID); err != nil {
		t.Fatalf("unban failed: %v", err)
	}
	if u.IsBanned {
		t.Fatal("user must be unbanned")
	}

	if err := svc.BanUser(context.Background(), adminID, uuid.New(), ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
