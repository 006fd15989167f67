package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/test"
)

func TestUserResolveExisting(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	repo.ByID[7] = &model.User{TelegramID: 7, Username: "old", ReferralCode: "REFAAA111"}
	uc := NewUserUseCase(repo)

	user, err := uc.Resolve(context.Background(), 7, "new", "New", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "old" {
		t.Fatalf("expected existing account, got %+v", user)
	}
}

func TestUserResolveRegisters(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)

	user, err := uc.Resolve(context.Background(), 7, "user", "User", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.TelegramID != 7 {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !strings.HasPrefix(user.ReferralCode, "REF") || len(user.ReferralCode) != 9 {
		t.Fatalf("unexpected referral code %q", user.ReferralCode)
	}
}

func TestUserResolveBindsReferrer(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	repo.ByID[42] = &model.User{TelegramID: 42, ReferralCode: "REFZZZ999"}
	uc := NewUserUseCase(repo)

	user, err := uc.Resolve(context.Background(), 7, "user", "User", "REFZZZ999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ReferredBy == nil || *user.ReferredBy != 42 {
		t.Fatalf("expected referrer binding, got %+v", user.ReferredBy)
	}
}

func TestUserResolveRepositoryError(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	repo.Err = errors.New("db down")
	uc := NewUserUseCase(repo)

	if _, err := uc.Resolve(context.Background(), 7, "user", "User", ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestUserGet(t *testing.T) {
	repo := test.NewUserRepositoryStub()
	uc := NewUserUseCase(repo)

	if _, err := uc.Get(context.Background(), 7); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	repo.ByID[7] = &model.User{TelegramID: 7}
	if _, err := uc.Get(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
