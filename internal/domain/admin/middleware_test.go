package admin

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	a := &AdminUser{ID: uuid.New(), Email: "mod@campus.example", Role: RoleModerator}

	tok, err := svc.GenerateToken(a)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.AdminID != a.ID {
		t.Fatalf("admin id = %s, want %s", claims.AdminID, a.ID)
	}
	if claims.Role != RoleModerator {
		t.Fatalf("role = %s, want %s", claims.Role, RoleModerator)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewJWTService("secret-a", time.Hour).GenerateToken(&AdminUser{
		ID:    uuid.New(),
		Email: "mod@campus.example",
		Role:  RoleAdmin,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := NewJWTService("secret-b", time.Hour).ValidateToken(tok); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsUnsignedToken(t *testing.T) {
	// A token with alg=none must never pass, whatever its claims say.
	claims := AdminClaims{
		AdminID: uuid.New(),
		Email:   "mod@campus.example",
		Role:    RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "campusmind-admin",
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := NewJWTService("test-secret", time.Hour).ValidateToken(tok); err == nil {
		t.Fatal("expected validation to reject an unsigned token")
	}
}
