package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserResponse represents a wallet account as served to the mini-app.
type UserResponse struct {
	TelegramID          int64           `json:"telegramId"`
	Username            string          `json:"username"`
	FirstName           string          `json:"firstName"`
	MainBalance         decimal.Decimal `json:"mainBalance"`
	HoldBalance         decimal.Decimal `json:"holdBalance"`
	ReferralBalance     decimal.Decimal `json:"referralBalance"`
	StarsBalance        int64           `json:"starsBalance"`
	IsPremium           bool            `json:"isPremium"`
	ReferralCode        string          `json:"referralCode"`
	FirstOrderCompleted bool            `json:"firstOrderCompleted"`
	JoinedAt            time.Time       `json:"joinedAt"`
}
