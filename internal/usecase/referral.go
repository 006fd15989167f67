package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
)

// ReferralUseCase manages the referral program.
type ReferralUseCase struct {
	referrals repository.ReferralRepository
}

// NewReferralUseCase constructs ReferralUseCase.
func NewReferralUseCase(referrals repository.ReferralRepository) *ReferralUseCase {
	return &ReferralUseCase{referrals: referrals}
}

// Summary returns the user's referral code, earnings and invite counters.
func (u *ReferralUseCase) Summary(ctx context.Context, telegramID int64) (*model.ReferralSummary, error) {
	return u.referrals.Summary(ctx, telegramID)
}

// Transfer moves earnings from the referral balance to the main balance.
func (u *ReferralUseCase) Transfer(ctx context.Context, telegramID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainErrors.ErrInvalidAmount
	}
	return u.referrals.Transfer(ctx, telegramID, amount)
}
