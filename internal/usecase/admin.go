package usecase

import (
	"context"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
)

// AdminUseCase serves the control surface used by the bot's admin commands.
type AdminUseCase struct {
	orders   repository.OrderRepository
	deposits repository.DepositRepository
	users    repository.UserRepository
	stats    repository.StatsRepository
	settings repository.SettingsRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(
	orders repository.OrderRepository,
	deposits repository.DepositRepository,
	users repository.UserRepository,
	stats repository.StatsRepository,
	settings repository.SettingsRepository,
) *AdminUseCase {
	return &AdminUseCase{orders: orders, deposits: deposits, users: users, stats: stats, settings: settings}
}

func (u *AdminUseCase) authorize(ctx context.Context, actorID int64) (model.Settings, error) {
	settings, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.CanManageOrders(actorID) {
		return nil, domainErrors.ErrUnauthorized
	}
	return settings, nil
}

// Dashboard returns store-wide counters for the admin panel.
func (u *AdminUseCase) Dashboard(ctx context.Context, actorID int64) (*model.AdminStats, error) {
	if _, err := u.authorize(ctx, actorID); err != nil {
		return nil, err
	}
	return u.stats.AdminStats(ctx)
}

// RecentOrders returns the latest orders across all users.
func (u *AdminUseCase) RecentOrders(ctx context.Context, actorID int64, limit int) ([]model.Order, error) {
	if _, err := u.authorize(ctx, actorID); err != nil {
		return nil, err
	}
	return u.orders.ListRecent(ctx, limit)
}

// RecentDeposits returns the latest deposits across all users.
func (u *AdminUseCase) RecentDeposits(ctx context.Context, actorID int64, limit int) ([]model.Deposit, error) {
	if _, err := u.authorize(ctx, actorID); err != nil {
		return nil, err
	}
	return u.deposits.ListRecent(ctx, limit)
}

// UserOverview returns another user's account for support lookups.
func (u *AdminUseCase) UserOverview(ctx context.Context, actorID, telegramID int64) (*model.User, error) {
	settings, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.CanViewSupport(actorID) {
		return nil, domainErrors.ErrUnauthorized
	}
	return u.users.GetByTelegramID(ctx, telegramID)
}

// Settings returns the public store settings snapshot.
func (u *AdminUseCase) Settings(ctx context.Context) (model.Settings, error) {
	return u.settings.Snapshot(ctx)
}
