package ids

import (
	"strings"
	"testing"
)

func TestNewFormat(t *testing.T) {
	id := New(OrderPrefix)
	if !strings.HasPrefix(id, "ORD") {
		t.Fatalf("expected ORD prefix, got %q", id)
	}
	if len(id) != len(OrderPrefix)+8 {
		t.Fatalf("expected 8-digit suffix, got %q", id)
	}
	for _, r := range id[len(OrderPrefix):] {
		if r < '0' || r > '9' {
			t.Fatalf("expected numeric suffix, got %q", id)
		}
	}
}

func TestNewUniqueWithinBurst(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		id := New(DepositPrefix)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewReferralCode(t *testing.T) {
	code := NewReferralCode()
	if !strings.HasPrefix(code, "REF") {
		t.Fatalf("expected REF prefix, got %q", code)
	}
	if len(code) != 9 {
		t.Fatalf("expected 6-char suffix, got %q", code)
	}
	if code == NewReferralCode() && code == NewReferralCode() {
		t.Fatal("expected codes to vary")
	}
}
