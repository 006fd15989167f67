package usecase

import (
	"context"
	"log/slog"
	"strings"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
	"github.com/starbuy/shop/internal/pkg/ids"
)

// OrderUseCase encapsulates the purchase lifecycle.
type OrderUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	catalog  repository.CatalogRepository
	settings repository.SettingsRepository
	notifier OrderNotifier
	logger   *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	users repository.UserRepository,
	catalog repository.CatalogRepository,
	settings repository.SettingsRepository,
	notifier OrderNotifier,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, catalog: catalog, settings: settings, notifier: notifier, logger: logger}
}

// PlaceRequest describes a purchase submitted from the mini-app.
type PlaceRequest struct {
	TelegramID     int64
	PackageID      int64
	Method         string
	UserInput      string
	ScreenshotPath string
}

// Place validates the request against the catalog and store settings, charges
// the wallet and records the order in PENDING state.
func (u *OrderUseCase) Place(ctx context.Context, req PlaceRequest) (*model.Order, error) {
	method, ok := model.ParsePaymentMethod(req.Method)
	if !ok {
		return nil, domainErrors.ErrInvalidInput
	}
	if strings.TrimSpace(req.UserInput) == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if strings.TrimSpace(req.ScreenshotPath) == "" {
		return nil, domainErrors.ErrInvalidInput
	}

	pkg, err := u.catalog.GetByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, domainErrors.ErrPackageUnavailable
	}

	settings, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	switch method {
	case model.PaymentMethodStars:
		if !pkg.AllowStars || !settings.AllowStarsPayment() {
			return nil, domainErrors.ErrPackageUnavailable
		}
	case model.PaymentMethodPremium:
		if !settings.AllowPremiumPurchase() {
			return nil, domainErrors.ErrPackageUnavailable
		}
	}

	order, err := u.orders.Place(ctx, repository.PlaceOrderParams{
		OrderID:        ids.New(ids.OrderPrefix),
		UserID:         req.TelegramID,
		PackageID:      pkg.ID,
		PackageName:    pkg.Name,
		Amount:         pkg.Price,
		StarsAmount:    pkg.StarsPrice,
		Method:         method,
		UserInput:      req.UserInput,
		ScreenshotPath: req.ScreenshotPath,
	})
	if err != nil {
		return nil, err
	}

	if user, err := u.users.GetByTelegramID(ctx, req.TelegramID); err == nil {
		u.notifier.OrderPlaced(order, user)
	} else {
		u.logger.Error("order placed but buyer lookup failed, skipping admin notification",
			slog.String("order_id", order.OrderID),
			slog.Int64("telegram_id", req.TelegramID),
			slog.Any("error", err),
		)
	}
	return order, nil
}

// Resolve applies an admin action to the order. Actions on terminal orders
// report ErrAlreadyProcessed and leave balances untouched.
func (u *OrderUseCase) Resolve(ctx context.Context, actorID int64, orderID string, action model.OrderAction) (*model.Order, error) {
	settings, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.CanManageOrders(actorID) {
		return nil, domainErrors.ErrUnauthorized
	}

	order, applied, err := u.orders.Transition(ctx, orderID, action, settings.ReferralReward())
	if err != nil {
		return nil, err
	}
	if !applied {
		return order, domainErrors.ErrAlreadyProcessed
	}

	u.notifier.OrderResolved(order)
	return order, nil
}

// Get returns a single order by its public id.
func (u *OrderUseCase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.GetByOrderID(ctx, orderID)
}

// History returns the user's most recent orders.
func (u *OrderUseCase) History(ctx context.Context, telegramID int64, limit int) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, telegramID, limit)
}
