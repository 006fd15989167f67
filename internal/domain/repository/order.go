package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/starbuy/shop/internal/domain/model"
)

// PlaceOrderParams carries a validated purchase request. Amount is set for
// balance and premium methods, StarsAmount for stars purchases.
type PlaceOrderParams struct {
	OrderID        string
	UserID         int64
	PackageID      int64
	PackageName    string
	Amount         decimal.Decimal
	StarsAmount    int64
	Method         model.PaymentMethod
	UserInput      string
	ScreenshotPath string
}

// OrderRepository describes persistence operations with orders. Place and
// Transition execute the associated balance movements atomically with the
// record write; Transition reports applied=false when the order was already
// in a terminal status.
type OrderRepository interface {
	Place(ctx context.Context, params PlaceOrderParams) (*model.Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.Order, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
	Transition(ctx context.Context, orderID string, action model.OrderAction, referralReward decimal.Decimal) (order *model.Order, applied bool, err error)
}
