package test

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	ByID map[int64]*model.User
	Err  error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{ByID: make(map[int64]*model.User)}
}

// GetByTelegramID fetches the account or returns not found.
func (s *UserRepositoryStub) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[telegramID]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Create registers the account unless it already exists.
func (s *UserRepositoryStub) Create(ctx context.Context, params repository.CreateUserParams) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.ByID[params.TelegramID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{
		TelegramID:   params.TelegramID,
		Username:     params.Username,
		FirstName:    params.FirstName,
		ReferralCode: params.ReferralCode,
	}
	if params.ReferredByCode != "" {
		for id, existing := range s.ByID {
			if existing.ReferralCode == params.ReferredByCode && id != params.TelegramID {
				referrer := id
				user.ReferredBy = &referrer
			}
		}
	}
	s.ByID[params.TelegramID] = user
	return user, nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	PlaceFn        func(context.Context, repository.PlaceOrderParams) (*model.Order, error)
	GetByOrderIDFn func(context.Context, string) (*model.Order, error)
	ListByUserFn   func(context.Context, int64, int) ([]model.Order, error)
	ListRecentFn   func(context.Context, int) ([]model.Order, error)
	TransitionFn   func(context.Context, string, model.OrderAction, decimal.Decimal) (*model.Order, bool, error)
}

func (s *OrderRepositoryStub) Place(ctx context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, params)
	}
	return &model.Order{
		OrderID:     params.OrderID,
		UserID:      params.UserID,
		PackageID:   params.PackageID,
		PackageName: params.PackageName,
		Amount:      params.Amount,
		StarsAmount: params.StarsAmount,
		Method:      params.Method,
		UserInput:   params.UserInput,
		Status:      model.OrderStatusPending,
	}, nil
}

func (s *OrderRepositoryStub) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.GetByOrderIDFn != nil {
		return s.GetByOrderIDFn(ctx, orderID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64, limit int) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	if s.ListRecentFn != nil {
		return s.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) Transition(ctx context.Context, orderID string, action model.OrderAction, reward decimal.Decimal) (*model.Order, bool, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, orderID, action, reward)
	}
	return nil, false, domainErrors.ErrNotFound
}

// DepositRepositoryStub allows tests to customize behaviour.
type DepositRepositoryStub struct {
	SubmitFn         func(context.Context, repository.SubmitDepositParams) (*model.Deposit, error)
	GetByDepositIDFn func(context.Context, string) (*model.Deposit, error)
	ListByUserFn     func(context.Context, int64, int) ([]model.Deposit, error)
	ListRecentFn     func(context.Context, int) ([]model.Deposit, error)
	TransitionFn     func(context.Context, string, model.DepositAction) (*model.Deposit, bool, error)
}

func (s *DepositRepositoryStub) Submit(ctx context.Context, params repository.SubmitDepositParams) (*model.Deposit, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, params)
	}
	return &model.Deposit{
		DepositID: params.DepositID,
		UserID:    params.UserID,
		Amount:    params.Amount,
		Method:    params.Method,
		Reference: params.Reference,
		Status:    model.DepositStatusProcessing,
	}, nil
}

func (s *DepositRepositoryStub) GetByDepositID(ctx context.Context, depositID string) (*model.Deposit, error) {
	if s.GetByDepositIDFn != nil {
		return s.GetByDepositIDFn(ctx, depositID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *DepositRepositoryStub) ListByUser(ctx context.Context, userID int64, limit int) ([]model.Deposit, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, limit)
	}
	return nil, nil
}

func (s *DepositRepositoryStub) ListRecent(ctx context.Context, limit int) ([]model.Deposit, error) {
	if s.ListRecentFn != nil {
		return s.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

func (s *DepositRepositoryStub) Transition(ctx context.Context, depositID string, action model.DepositAction) (*model.Deposit, bool, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, depositID, action)
	}
	return nil, false, domainErrors.ErrNotFound
}

// ReferralRepositoryStub allows tests to customize behaviour.
type ReferralRepositoryStub struct {
	SummaryFn  func(context.Context, int64) (*model.ReferralSummary, error)
	TransferFn func(context.Context, int64, decimal.Decimal) error
}

func (s *ReferralRepositoryStub) Summary(ctx context.Context, telegramID int64) (*model.ReferralSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, telegramID)
	}
	return &model.ReferralSummary{}, nil
}

func (s *ReferralRepositoryStub) Transfer(ctx context.Context, telegramID int64, amount decimal.Decimal) error {
	if s.TransferFn != nil {
		return s.TransferFn(ctx, telegramID, amount)
	}
	return nil
}

// CatalogRepositoryStub serves a fixed package list.
type CatalogRepositoryStub struct {
	Packages []model.Package
	Err      error
}

func (s *CatalogRepositoryStub) ListActive(ctx context.Context) ([]model.Package, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Packages, nil
}

func (s *CatalogRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Package, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Packages {
		if s.Packages[i].ID == id {
			return &s.Packages[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SettingsRepositoryStub serves a fixed settings snapshot.
type SettingsRepositoryStub struct {
	Values model.Settings
	Err    error
}

func (s *SettingsRepositoryStub) Get(ctx context.Context, key string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if value, ok := s.Values[key]; ok {
		return value, nil
	}
	return "", domainErrors.ErrNotFound
}

func (s *SettingsRepositoryStub) Snapshot(ctx context.Context) (model.Settings, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Values == nil {
		return model.Settings{}, nil
	}
	return s.Values, nil
}

// StatsRepositoryStub serves fixed counters.
type StatsRepositoryStub struct {
	Stats model.AdminStats
	Err   error
}

func (s *StatsRepositoryStub) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stats := s.Stats
	return &stats, nil
}

// NotifierStub records delivered notifications.
type NotifierStub struct {
	PlacedOrders      []string
	ResolvedOrders    []string
	SubmittedDeposits []string
	ResolvedDeposits  []string
}

func (s *NotifierStub) OrderPlaced(order *model.Order, _ *model.User) {
	s.PlacedOrders = append(s.PlacedOrders, order.OrderID)
}

func (s *NotifierStub) OrderResolved(order *model.Order) {
	s.ResolvedOrders = append(s.ResolvedOrders, order.OrderID)
}

func (s *NotifierStub) DepositSubmitted(deposit *model.Deposit, _ *model.User) {
	s.SubmittedDeposits = append(s.SubmittedDeposits, deposit.DepositID)
}

func (s *NotifierStub) DepositResolved(deposit *model.Deposit) {
	s.ResolvedDeposits = append(s.ResolvedDeposits, deposit.DepositID)
}
