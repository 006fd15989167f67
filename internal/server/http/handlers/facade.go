package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/usecase"
)

// UserFacade resolves wallet accounts.
type UserFacade interface {
	ResolveUser(ctx context.Context, telegramID int64, username, firstName, referralCode string) (*model.User, error)
}

// CatalogFacade serves the storefront listing and public settings.
type CatalogFacade interface {
	Packages(ctx context.Context) ([]model.Package, error)
	StoreSettings(ctx context.Context) (model.Settings, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, req usecase.PlaceRequest) (*model.Order, error)
	Orders(ctx context.Context, telegramID int64, limit int) ([]model.Order, error)
}

// DepositFacade encapsulates deposit operations exposed via HTTP.
type DepositFacade interface {
	SubmitDeposit(ctx context.Context, req usecase.SubmitRequest) (*model.Deposit, error)
	Deposits(ctx context.Context, telegramID int64, limit int) ([]model.Deposit, error)
}

// ReferralFacade encapsulates referral operations exposed via HTTP.
type ReferralFacade interface {
	ReferralSummary(ctx context.Context, telegramID int64) (*model.ReferralSummary, error)
	TransferReferral(ctx context.Context, telegramID int64, amount decimal.Decimal) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	UserFacade
	CatalogFacade
	OrderFacade
	DepositFacade
	ReferralFacade
}
