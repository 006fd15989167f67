package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus describes the deposit lifecycle.
type DepositStatus string

const (
	DepositStatusProcessing DepositStatus = "Processing"
	DepositStatusApproved   DepositStatus = "Approved"
	DepositStatusRejected   DepositStatus = "Rejected"
)

// Terminal reports whether no further transitions are permitted.
func (s DepositStatus) Terminal() bool {
	return s == DepositStatusApproved || s == DepositStatusRejected
}

// DepositAction is an operator-initiated transition request.
type DepositAction string

const (
	DepositActionApprove DepositAction = "approve"
	DepositActionReject  DepositAction = "reject"
)

// ParseDepositAction maps a callback token to a transition action.
func ParseDepositAction(s string) (DepositAction, bool) {
	switch DepositAction(s) {
	case DepositActionApprove, DepositActionReject:
		return DepositAction(s), true
	}
	return "", false
}

// Next resolves the transition table for deposits.
func (s DepositStatus) Next(action DepositAction) (DepositStatus, bool) {
	if s.Terminal() {
		return s, false
	}
	switch action {
	case DepositActionApprove:
		return DepositStatusApproved, true
	case DepositActionReject:
		return DepositStatusRejected, true
	}
	return s, false
}

// DepositMethod is the funding channel of a deposit.
type DepositMethod string

const (
	DepositMethodBinancePay DepositMethod = "Binance Pay"
	DepositMethodUSDT       DepositMethod = "USDT"
	DepositMethodBNB        DepositMethod = "BNB"
)

// ParseDepositMethod maps a request tag to a deposit method.
func ParseDepositMethod(s string) (DepositMethod, bool) {
	switch DepositMethod(s) {
	case DepositMethodBinancePay, DepositMethodUSDT, DepositMethodBNB:
		return DepositMethod(s), true
	}
	return "", false
}

// MinAmount returns the method-specific minimum deposit amount.
func (m DepositMethod) MinAmount() decimal.Decimal {
	switch m {
	case DepositMethodUSDT:
		return decimal.NewFromInt(10)
	case DepositMethodBNB:
		return decimal.NewFromInt(1)
	default:
		return decimal.NewFromInt(2)
	}
}

// ReferenceNumeric reports whether the external reference must be all
// digits (order-id style methods) rather than a transaction hash.
func (m DepositMethod) ReferenceNumeric() bool {
	return m == DepositMethodBinancePay
}

// Deposit describes a manually attested top-up. Funds are credited to the
// user's main balance only when an operator approves it.
type Deposit struct {
	ID             int64
	DepositID      string
	UserID         int64
	Amount         decimal.Decimal
	Method         DepositMethod
	Reference      string
	ScreenshotPath string
	Status         DepositStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
