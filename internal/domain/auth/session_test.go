package auth

import (
	"errors"
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super-secret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if err := CheckPassword(hash, "super-secret"); err != nil {
		t.Fatalf("expected password to match, got %v", err)
	}

	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-secret", "admin", time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ParseToken("other-secret", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token for wrong secret, got %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("test-secret", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("test-secret", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token rejected, got %v", err)
	}
}

func TestAuthenticatorVerify(t *testing.T) {
	a, err := NewAuthenticator("admin", "", "ChangeMe123!")
	if err != nil {
		t.Fatalf("authenticator: %v", err)
	}
	if err := a.Verify("admin", "ChangeMe123!"); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}
	if err := a.Verify("admin", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid password, got %v", err)
	}
	if err := a.Verify("root", "ChangeMe123!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid username, got %v", err)
	}

	if _, err := NewAuthenticator("admin", "", ""); err == nil {
		t.Fatal("expected error without any password")
	}
}
