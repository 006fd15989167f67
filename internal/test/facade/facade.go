package facade

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/usecase"
)

// ShopFacadeStub provides controllable behaviour for transport-level tests.
type ShopFacadeStub struct {
	ResolveUserFn      func(context.Context, int64, string, string, string) (*model.User, error)
	PackagesFn         func(context.Context) ([]model.Package, error)
	StoreSettingsFn    func(context.Context) (model.Settings, error)
	PlaceOrderFn       func(context.Context, usecase.PlaceRequest) (*model.Order, error)
	OrdersFn           func(context.Context, int64, int) ([]model.Order, error)
	ResolveOrderFn     func(context.Context, int64, string, model.OrderAction) (*model.Order, error)
	SubmitDepositFn    func(context.Context, usecase.SubmitRequest) (*model.Deposit, error)
	DepositsFn         func(context.Context, int64, int) ([]model.Deposit, error)
	ResolveDepositFn   func(context.Context, int64, string, model.DepositAction) (*model.Deposit, error)
	ReferralSummaryFn  func(context.Context, int64) (*model.ReferralSummary, error)
	TransferReferralFn func(context.Context, int64, decimal.Decimal) error
	DashboardFn        func(context.Context, int64) (*model.AdminStats, error)
	RecentOrdersFn     func(context.Context, int64, int) ([]model.Order, error)
	RecentDepositsFn   func(context.Context, int64, int) ([]model.Deposit, error)
	UserOverviewFn     func(context.Context, int64, int64) (*model.User, error)
	OrderFn            func(context.Context, string) (*model.Order, error)
	DepositFn          func(context.Context, string) (*model.Deposit, error)
	UserFn             func(context.Context, int64) (*model.User, error)
}

func (s *ShopFacadeStub) ResolveUser(ctx context.Context, telegramID int64, username, firstName, referralCode string) (*model.User, error) {
	if s.ResolveUserFn != nil {
		return s.ResolveUserFn(ctx, telegramID, username, firstName, referralCode)
	}
	return &model.User{TelegramID: telegramID, Username: username, FirstName: firstName}, nil
}

func (s *ShopFacadeStub) User(ctx context.Context, telegramID int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, telegramID)
	}
	return &model.User{TelegramID: telegramID}, nil
}

func (s *ShopFacadeStub) Packages(ctx context.Context) ([]model.Package, error) {
	if s.PackagesFn != nil {
		return s.PackagesFn(ctx)
	}
	return nil, nil
}

func (s *ShopFacadeStub) StoreSettings(ctx context.Context) (model.Settings, error) {
	if s.StoreSettingsFn != nil {
		return s.StoreSettingsFn(ctx)
	}
	return model.Settings{}, nil
}

func (s *ShopFacadeStub) PlaceOrder(ctx context.Context, req usecase.PlaceRequest) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, req)
	}
	return &model.Order{OrderID: "ORD00000001", UserID: req.TelegramID, Status: model.OrderStatusPending}, nil
}

func (s *ShopFacadeStub) Order(ctx context.Context, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ShopFacadeStub) Orders(ctx context.Context, telegramID int64, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, telegramID, limit)
	}
	return nil, nil
}

func (s *ShopFacadeStub) ResolveOrder(ctx context.Context, actorID int64, orderID string, action model.OrderAction) (*model.Order, error) {
	if s.ResolveOrderFn != nil {
		return s.ResolveOrderFn(ctx, actorID, orderID, action)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ShopFacadeStub) SubmitDeposit(ctx context.Context, req usecase.SubmitRequest) (*model.Deposit, error) {
	if s.SubmitDepositFn != nil {
		return s.SubmitDepositFn(ctx, req)
	}
	return &model.Deposit{DepositID: "DEP00000001", UserID: req.TelegramID, Status: model.DepositStatusProcessing}, nil
}

func (s *ShopFacadeStub) Deposit(ctx context.Context, depositID string) (*model.Deposit, error) {
	if s.DepositFn != nil {
		return s.DepositFn(ctx, depositID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ShopFacadeStub) Deposits(ctx context.Context, telegramID int64, limit int) ([]model.Deposit, error) {
	if s.DepositsFn != nil {
		return s.DepositsFn(ctx, telegramID, limit)
	}
	return nil, nil
}

func (s *ShopFacadeStub) ResolveDeposit(ctx context.Context, actorID int64, depositID string, action model.DepositAction) (*model.Deposit, error) {
	if s.ResolveDepositFn != nil {
		return s.ResolveDepositFn(ctx, actorID, depositID, action)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ShopFacadeStub) ReferralSummary(ctx context.Context, telegramID int64) (*model.ReferralSummary, error) {
	if s.ReferralSummaryFn != nil {
		return s.ReferralSummaryFn(ctx, telegramID)
	}
	return &model.ReferralSummary{}, nil
}

func (s *ShopFacadeStub) TransferReferral(ctx context.Context, telegramID int64, amount decimal.Decimal) error {
	if s.TransferReferralFn != nil {
		return s.TransferReferralFn(ctx, telegramID, amount)
	}
	return nil
}

func (s *ShopFacadeStub) AdminDashboard(ctx context.Context, actorID int64) (*model.AdminStats, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, actorID)
	}
	return &model.AdminStats{}, nil
}

func (s *ShopFacadeStub) AdminRecentOrders(ctx context.Context, actorID int64, limit int) ([]model.Order, error) {
	if s.RecentOrdersFn != nil {
		return s.RecentOrdersFn(ctx, actorID, limit)
	}
	return nil, nil
}

func (s *ShopFacadeStub) AdminRecentDeposits(ctx context.Context, actorID int64, limit int) ([]model.Deposit, error) {
	if s.RecentDepositsFn != nil {
		return s.RecentDepositsFn(ctx, actorID, limit)
	}
	return nil, nil
}

func (s *ShopFacadeStub) AdminUserOverview(ctx context.Context, actorID, telegramID int64) (*model.User, error) {
	if s.UserOverviewFn != nil {
		return s.UserOverviewFn(ctx, actorID, telegramID)
	}
	return nil, domainErrors.ErrNotFound
}
