package auth

import (
	"testing"
	"time"

	"github.com/vetcare/clinic-service/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, expiresAt, err := tm.GenerateToken(42, domain.RoleCliente)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	remaining := time.Until(expiresAt)
	if remaining < TokenTTL-time.Minute || remaining > TokenTTL {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Rol != domain.RoleCliente {
		t.Fatalf("expected role cliente, got %s", claims.Rol)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a").GenerateToken(1, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := NewTokenManager("secret-b").ParseToken(token); err == nil {
		t.Fatalf("expected error for token signed with a different secret")
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret")

	for _, input := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := tm.ParseToken(input); err == nil {
			t.Fatalf("expected error for input %q", input)
		}
	}
}
