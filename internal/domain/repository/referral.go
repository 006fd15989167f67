package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/starbuy/shop/internal/domain/model"
)

// ReferralRepository provides access to referral links and the transfer of
// earned rewards into the spendable balance.
type ReferralRepository interface {
	Summary(ctx context.Context, telegramID int64) (*model.ReferralSummary, error)
	Transfer(ctx context.Context, telegramID int64, amount decimal.Decimal) error
}
