package auth

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "acme", "7c9a1f2e-0000-0000-0000-000000000001", 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "acme" {
		t.Errorf("subject = %q, want %q", claims.Subject, "acme")
	}
	if claims.CompanyID != "7c9a1f2e-0000-0000-0000-000000000001" {
		t.Errorf("company_id = %q", claims.CompanyID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("another-secret-that-is-32-chars-xx", "acme", "cid", 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(testSecret, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, "acme", "cid", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// expired and forged tokens must fail identically
	if _, err := ParseToken(testSecret, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
