package auth

import (
	"testing"
	"time"
)

var testSecret = []byte("unit-test-secret")

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-1", "test@apilabs.com", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user id user-1, got %q", claims.UserID)
	}
	if claims.Email != "test@apilabs.com" {
		t.Fatalf("expected seeded email, got %q", claims.Email)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-1", "test@apilabs.com", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := VerifyToken([]byte("another-secret"), token); err == nil {
		t.Fatal("expected verification to fail with the wrong secret")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, "user-1", "test@apilabs.com", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := VerifyToken(testSecret, token); err == nil {
		t.Fatal("expected verification to fail for an expired token")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !CheckPasswordHash("password123", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Fatal("expected mismatched password to fail")
	}
}
