package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a shop customer identified by their Telegram account.
// Currency balances are fixed-point with two fraction digits; the stars
// balance is an integer point balance native to Telegram.
type User struct {
	TelegramID          int64
	Username            string
	FirstName           string
	MainBalance         decimal.Decimal
	HoldBalance         decimal.Decimal
	ReferralBalance     decimal.Decimal
	StarsBalance        int64
	IsPremium           bool
	ReferralCode        string
	ReferredBy          *int64
	FirstOrderCompleted bool
	JoinedAt            time.Time
}
