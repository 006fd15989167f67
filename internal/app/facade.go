package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/usecase"
)

// ShopFacade is the single entry point the HTTP API and the bot talk to.
type ShopFacade struct {
	users     *usecase.UserUseCase
	catalog   *usecase.CatalogUseCase
	orders    *usecase.OrderUseCase
	deposits  *usecase.DepositUseCase
	referrals *usecase.ReferralUseCase
	admin     *usecase.AdminUseCase
}

func NewShopFacade(
	users *usecase.UserUseCase,
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	deposits *usecase.DepositUseCase,
	referrals *usecase.ReferralUseCase,
	admin *usecase.AdminUseCase,
) *ShopFacade {
	return &ShopFacade{
		users:     users,
		catalog:   catalog,
		orders:    orders,
		deposits:  deposits,
		referrals: referrals,
		admin:     admin,
	}
}

func (f *ShopFacade) ResolveUser(ctx context.Context, telegramID int64, username, firstName, referralCode string) (*model.User, error) {
	return f.users.Resolve(ctx, telegramID, username, firstName, referralCode)
}

func (f *ShopFacade) User(ctx context.Context, telegramID int64) (*model.User, error) {
	return f.users.Get(ctx, telegramID)
}

func (f *ShopFacade) Packages(ctx context.Context) ([]model.Package, error) {
	return f.catalog.List(ctx)
}

func (f *ShopFacade) StoreSettings(ctx context.Context) (model.Settings, error) {
	return f.admin.Settings(ctx)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, req usecase.PlaceRequest) (*model.Order, error) {
	return f.orders.Place(ctx, req)
}

func (f *ShopFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *ShopFacade) Orders(ctx context.Context, telegramID int64, limit int) ([]model.Order, error) {
	return f.orders.History(ctx, telegramID, limit)
}

func (f *ShopFacade) ResolveOrder(ctx context.Context, actorID int64, orderID string, action model.OrderAction) (*model.Order, error) {
	return f.orders.Resolve(ctx, actorID, orderID, action)
}

func (f *ShopFacade) SubmitDeposit(ctx context.Context, req usecase.SubmitRequest) (*model.Deposit, error) {
	return f.deposits.Submit(ctx, req)
}

func (f *ShopFacade) Deposit(ctx context.Context, depositID string) (*model.Deposit, error) {
	return f.deposits.Get(ctx, depositID)
}

func (f *ShopFacade) Deposits(ctx context.Context, telegramID int64, limit int) ([]model.Deposit, error) {
	return f.deposits.History(ctx, telegramID, limit)
}

func (f *ShopFacade) ResolveDeposit(ctx context.Context, actorID int64, depositID string, action model.DepositAction) (*model.Deposit, error) {
	return f.deposits.Resolve(ctx, actorID, depositID, action)
}

func (f *ShopFacade) ReferralSummary(ctx context.Context, telegramID int64) (*model.ReferralSummary, error) {
	return f.referrals.Summary(ctx, telegramID)
}

func (f *ShopFacade) TransferReferral(ctx context.Context, telegramID int64, amount decimal.Decimal) error {
	return f.referrals.Transfer(ctx, telegramID, amount)
}

func (f *ShopFacade) AdminDashboard(ctx context.Context, actorID int64) (*model.AdminStats, error) {
	return f.admin.Dashboard(ctx, actorID)
}

func (f *ShopFacade) AdminRecentOrders(ctx context.Context, actorID int64, limit int) ([]model.Order, error) {
	return f.admin.RecentOrders(ctx, actorID, limit)
}

func (f *ShopFacade) AdminRecentDeposits(ctx context.Context, actorID int64, limit int) ([]model.Deposit, error) {
	return f.admin.RecentDeposits(ctx, actorID, limit)
}

func (f *ShopFacade) AdminUserOverview(ctx context.Context, actorID, telegramID int64) (*model.User, error) {
	return f.admin.UserOverview(ctx, actorID, telegramID)
}
