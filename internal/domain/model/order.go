package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusSuccess    OrderStatus = "SUCCESS"
	OrderStatusCancel     OrderStatus = "CANCEL"
)

// Terminal reports whether no further transitions are permitted.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusSuccess || s == OrderStatusCancel
}

// OrderAction is an operator-initiated transition request.
type OrderAction string

const (
	OrderActionProcessing OrderAction = "processing"
	OrderActionSuccess    OrderAction = "success"
	OrderActionCancel     OrderAction = "cancel"
)

// ParseOrderAction maps a callback token to a transition action.
func ParseOrderAction(s string) (OrderAction, bool) {
	switch OrderAction(s) {
	case OrderActionProcessing, OrderActionSuccess, OrderActionCancel:
		return OrderAction(s), true
	}
	return "", false
}

// Next resolves the transition table: it returns the status that applying
// the action to the current status yields, or false when the transition is
// not permitted. Terminal statuses admit no transition.
func (s OrderStatus) Next(action OrderAction) (OrderStatus, bool) {
	if s.Terminal() {
		return s, false
	}
	switch action {
	case OrderActionProcessing:
		return OrderStatusProcessing, true
	case OrderActionSuccess:
		return OrderStatusSuccess, true
	case OrderActionCancel:
		return OrderStatusCancel, true
	}
	return s, false
}

// PaymentMethod is the funding source of an order.
type PaymentMethod string

const (
	PaymentMethodBalance PaymentMethod = "balance"
	PaymentMethodStars   PaymentMethod = "stars"
	PaymentMethodPremium PaymentMethod = "premium"
)

// ParsePaymentMethod maps a request tag to a payment method.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentMethodBalance, PaymentMethodStars, PaymentMethodPremium:
		return PaymentMethod(s), true
	}
	return "", false
}

// Order describes a catalog purchase. Package name and price are
// denormalized so history display survives catalog edits. Amount and
// StarsAmount are mutually exclusive depending on the payment method.
type Order struct {
	ID             int64
	OrderID        string
	UserID         int64
	PackageID      int64
	PackageName    string
	Amount         decimal.Decimal
	StarsAmount    int64
	Method         PaymentMethod
	UserInput      string
	ScreenshotPath string
	Status         OrderStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
