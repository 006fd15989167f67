package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Referral links a referrer to a referred user. It is created at signup
// and rewarded at most once, when the referred user's first order succeeds.
type Referral struct {
	ID           int64
	ReferrerID   int64
	ReferredID   int64
	RewardAmount decimal.Decimal
	Rewarded     bool
	CreatedAt    time.Time
}

// ReferralSummary aggregates a user's referral program standing.
type ReferralSummary struct {
	Code       string
	Balance    decimal.Decimal
	Total      int64
	Successful int64
}
