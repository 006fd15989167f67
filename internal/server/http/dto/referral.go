package dto

import "github.com/shopspring/decimal"

// ReferralResponse summarizes the referral program state for a user.
type ReferralResponse struct {
	Code       string          `json:"code"`
	Balance    decimal.Decimal `json:"balance"`
	Total      int64           `json:"totalReferrals"`
	Successful int64           `json:"successfulReferrals"`
}

// TransferReferralRequest moves referral earnings to the main balance.
type TransferReferralRequest struct {
	TelegramID int64  `json:"telegramId" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}
