package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/starbuy/shop/internal/domain/model"
)

// SubmitDepositParams carries a validated deposit request.
type SubmitDepositParams struct {
	DepositID      string
	UserID         int64
	Amount         decimal.Decimal
	Method         model.DepositMethod
	Reference      string
	ScreenshotPath string
}

// DepositRepository describes persistence operations with deposits.
// Transition credits the main balance on approval atomically with the
// status write and reports applied=false for already-terminal deposits.
type DepositRepository interface {
	Submit(ctx context.Context, params SubmitDepositParams) (*model.Deposit, error)
	GetByDepositID(ctx context.Context, depositID string) (*model.Deposit, error)
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.Deposit, error)
	ListRecent(ctx context.Context, limit int) ([]model.Deposit, error)
	Transition(ctx context.Context, depositID string, action model.DepositAction) (deposit *model.Deposit, applied bool, err error)
}
