package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/test"
)

func TestReferralSummary(t *testing.T) {
	repo := &test.ReferralRepositoryStub{
		SummaryFn: func(_ context.Context, telegramID int64) (*model.ReferralSummary, error) {
			return &model.ReferralSummary{Code: "REFAAA111", Total: 3, Successful: 1}, nil
		},
	}
	uc := NewReferralUseCase(repo)

	summary, err := uc.Summary(context.Background(), 7)
	if err != nil || summary.Total != 3 {
		t.Fatalf("unexpected result: %+v err=%v", summary, err)
	}
}

func TestReferralTransfer(t *testing.T) {
	var transferred decimal.Decimal
	repo := &test.ReferralRepositoryStub{
		TransferFn: func(_ context.Context, _ int64, amount decimal.Decimal) error {
			transferred = amount
			return nil
		},
	}
	uc := NewReferralUseCase(repo)

	if err := uc.Transfer(context.Background(), 7, decimal.RequireFromString("2.50")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !transferred.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("unexpected amount: %v", transferred)
	}

	if err := uc.Transfer(context.Background(), 7, decimal.Zero); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if err := uc.Transfer(context.Background(), 7, decimal.RequireFromString("-1")); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestReferralTransferRepositoryError(t *testing.T) {
	repo := &test.ReferralRepositoryStub{
		TransferFn: func(context.Context, int64, decimal.Decimal) error {
			return domainErrors.ErrInsufficientBalance
		},
	}
	uc := NewReferralUseCase(repo)

	if err := uc.Transfer(context.Background(), 7, decimal.RequireFromString("5")); !errors.Is(err, domainErrors.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
}
