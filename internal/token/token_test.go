package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", "budokan", time.Hour)

	signed, err := manager.Issue("u1", "kenji", "teacher")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := manager.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "u1" {
		t.Fatalf("expected subject u1, got %q", claims.Subject)
	}
	if claims.Username != "kenji" {
		t.Fatalf("expected username kenji, got %q", claims.Username)
	}
	if claims.UserType != "teacher" {
		t.Fatalf("expected userType teacher, got %q", claims.UserType)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", "budokan", time.Hour).Issue("u1", "kenji", "student")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = NewManager("secret-b", "budokan", time.Hour).Verify(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	manager := NewManager("test-secret", "budokan", time.Minute)
	manager.now = func() time.Time {
		return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	}

	signed, err := manager.Issue("u1", "kenji", "student")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	manager.now = func() time.Time {
		return time.Date(2026, 1, 1, 13, 0, 0, 0, time.UTC)
	}
	if _, err := manager.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
