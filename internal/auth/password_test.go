package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("supersegura", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "supersegura" {
		t.Fatalf("password stored in plain text")
	}

	if err := ComparePassword(hash, "supersegura"); err != nil {
		t.Fatalf("ComparePassword rejected the right password: %v", err)
	}
	if err := ComparePassword(hash, "incorrecta"); err == nil {
		t.Fatalf("ComparePassword accepted a wrong password")
	}
}

func TestPassword_OutOfRangeCostFallsBack(t *testing.T) {
	for _, cost := range []int{0, -1, bcrypt.MaxCost + 1} {
		hash, err := HashPassword("supersegura", cost)
		if err != nil {
			t.Fatalf("cost %d: HashPassword returned error: %v", cost, err)
		}

		got, err := bcrypt.Cost([]byte(hash))
		if err != nil {
			t.Fatalf("cost %d: reading hash cost: %v", cost, err)
		}
		if got != bcrypt.DefaultCost {
			t.Fatalf("cost %d: expected fallback to %d, got %d", cost, bcrypt.DefaultCost, got)
		}
	}
}
