package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
	"github.com/starbuy/shop/internal/test"
)

func catalogFixture() *test.CatalogRepositoryStub {
	return &test.CatalogRepositoryStub{Packages: []model.Package{
		{ID: 1, Name: "Starter", Price: decimal.RequireFromString("5.00"), StarsPrice: 250, AllowStars: true, Active: true},
		{ID: 2, Name: "Pro", Price: decimal.RequireFromString("25.00"), Active: true},
		{ID: 3, Name: "Retired", Price: decimal.RequireFromString("9.00"), Active: false},
	}}
}

func settingsFixture() *test.SettingsRepositoryStub {
	return &test.SettingsRepositoryStub{Values: model.Settings{
		model.SettingOwnerID:        "1",
		model.SettingOrderAdminID:   "2",
		model.SettingReferralReward: "0.5",
		model.SettingAllowStars:     "true",
		model.SettingAllowPremium:   "true",
	}}
}

func newOrderUseCase(orders *test.OrderRepositoryStub, settings *test.SettingsRepositoryStub) (*OrderUseCase, *test.UserRepositoryStub, *test.NotifierStub) {
	users := test.NewUserRepositoryStub()
	users.ByID[7] = &model.User{TelegramID: 7, Username: "buyer"}
	notifier := &test.NotifierStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewOrderUseCase(orders, users, catalogFixture(), settings, notifier, logger), users, notifier
}

func TestOrderPlace(t *testing.T) {
	var placed repository.PlaceOrderParams
	orders := &test.OrderRepositoryStub{
		PlaceFn: func(_ context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
			placed = params
			return &model.Order{OrderID: params.OrderID, UserID: params.UserID, Status: model.OrderStatusPending}, nil
		},
	}
	uc, _, notifier := newOrderUseCase(orders, settingsFixture())

	order, err := uc.Place(context.Background(), PlaceRequest{
		TelegramID:     7,
		PackageID:      2,
		Method:         "balance",
		UserInput:      "@target",
		ScreenshotPath: "/uploads/proof.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(order.OrderID, "ORD") {
		t.Fatalf("unexpected order id %q", order.OrderID)
	}
	if placed.PackageName != "Pro" || !placed.Amount.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("unexpected place params: %+v", placed)
	}
	if len(notifier.PlacedOrders) != 1 {
		t.Fatalf("expected admin notification, got %v", notifier.PlacedOrders)
	}
}

func TestOrderPlaceBuyerLookupFailureLogged(t *testing.T) {
	orders := &test.OrderRepositoryStub{
		PlaceFn: func(_ context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
			return &model.Order{OrderID: params.OrderID, UserID: params.UserID, Status: model.OrderStatusPending}, nil
		},
	}
	users := test.NewUserRepositoryStub()
	notifier := &test.NotifierStub{}
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	uc := NewOrderUseCase(orders, users, catalogFixture(), settingsFixture(), notifier, logger)

	order, err := uc.Place(context.Background(), PlaceRequest{
		TelegramID:     8,
		PackageID:      2,
		Method:         "balance",
		UserInput:      "@target",
		ScreenshotPath: "/uploads/proof.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order == nil {
		t.Fatal("expected the order to be created")
	}
	if len(notifier.PlacedOrders) != 0 {
		t.Fatalf("expected no notification, got %v", notifier.PlacedOrders)
	}
	if !strings.Contains(logs.String(), "buyer lookup failed") {
		t.Fatalf("expected lookup failure to be logged, got %s", logs.String())
	}
}

func TestOrderPlaceValidation(t *testing.T) {
	uc, _, _ := newOrderUseCase(&test.OrderRepositoryStub{}, settingsFixture())

	tests := []struct {
		name string
		req  PlaceRequest
		want error
	}{
		{"unknown method", PlaceRequest{TelegramID: 7, PackageID: 2, Method: "paypal", UserInput: "x", ScreenshotPath: "/uploads/p.png"}, domainErrors.ErrInvalidInput},
		{"empty input", PlaceRequest{TelegramID: 7, PackageID: 2, Method: "balance", UserInput: "  ", ScreenshotPath: "/uploads/p.png"}, domainErrors.ErrInvalidInput},
		{"missing screenshot", PlaceRequest{TelegramID: 7, PackageID: 2, Method: "balance", UserInput: "x"}, domainErrors.ErrInvalidInput},
		{"missing package", PlaceRequest{TelegramID: 7, PackageID: 99, Method: "balance", UserInput: "x", ScreenshotPath: "/uploads/p.png"}, domainErrors.ErrNotFound},
		{"inactive package", PlaceRequest{TelegramID: 7, PackageID: 3, Method: "balance", UserInput: "x", ScreenshotPath: "/uploads/p.png"}, domainErrors.ErrPackageUnavailable},
		{"stars not allowed for package", PlaceRequest{TelegramID: 7, PackageID: 2, Method: "stars", UserInput: "x", ScreenshotPath: "/uploads/p.png"}, domainErrors.ErrPackageUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Place(context.Background(), tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestOrderPlaceGlobalToggles(t *testing.T) {
	settings := settingsFixture()
	settings.Values[model.SettingAllowStars] = "false"
	settings.Values[model.SettingAllowPremium] = "false"
	uc, _, _ := newOrderUseCase(&test.OrderRepositoryStub{}, settings)

	if _, err := uc.Place(context.Background(), PlaceRequest{TelegramID: 7, PackageID: 1, Method: "stars", UserInput: "x", ScreenshotPath: "/uploads/p.png"}); !errors.Is(err, domainErrors.ErrPackageUnavailable) {
		t.Fatalf("expected stars disabled, got %v", err)
	}
	if _, err := uc.Place(context.Background(), PlaceRequest{TelegramID: 7, PackageID: 2, Method: "premium", UserInput: "x", ScreenshotPath: "/uploads/p.png"}); !errors.Is(err, domainErrors.ErrPackageUnavailable) {
		t.Fatalf("expected premium disabled, got %v", err)
	}
}

func TestOrderResolve(t *testing.T) {
	reward := decimal.Decimal{}
	orders := &test.OrderRepositoryStub{
		TransitionFn: func(_ context.Context, orderID string, action model.OrderAction, r decimal.Decimal) (*model.Order, bool, error) {
			reward = r
			next, _ := model.OrderStatusPending.Next(action)
			return &model.Order{OrderID: orderID, UserID: 7, Status: next}, true, nil
		},
	}
	uc, _, notifier := newOrderUseCase(orders, settingsFixture())

	order, err := uc.Resolve(context.Background(), 1, "ORD00000001", model.OrderActionSuccess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusSuccess {
		t.Fatalf("unexpected order: %+v", order)
	}
	if !reward.Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("unexpected reward: %v", reward)
	}
	if len(notifier.ResolvedOrders) != 1 {
		t.Fatalf("expected buyer notification, got %v", notifier.ResolvedOrders)
	}
}

func TestOrderResolveUnauthorized(t *testing.T) {
	uc, _, notifier := newOrderUseCase(&test.OrderRepositoryStub{}, settingsFixture())

	if _, err := uc.Resolve(context.Background(), 99, "ORD00000001", model.OrderActionCancel); !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if len(notifier.ResolvedOrders) != 0 {
		t.Fatal("unexpected notification")
	}
}

func TestOrderResolveAlreadyProcessed(t *testing.T) {
	orders := &test.OrderRepositoryStub{
		TransitionFn: func(_ context.Context, orderID string, _ model.OrderAction, _ decimal.Decimal) (*model.Order, bool, error) {
			return &model.Order{OrderID: orderID, Status: model.OrderStatusSuccess}, false, nil
		},
	}
	uc, _, notifier := newOrderUseCase(orders, settingsFixture())

	order, err := uc.Resolve(context.Background(), 2, "ORD00000001", model.OrderActionCancel)
	if !errors.Is(err, domainErrors.ErrAlreadyProcessed) {
		t.Fatalf("expected already processed, got %v", err)
	}
	if order == nil || order.Status != model.OrderStatusSuccess {
		t.Fatalf("expected current order state, got %+v", order)
	}
	if len(notifier.ResolvedOrders) != 0 {
		t.Fatal("unexpected notification")
	}
}

func TestOrderHistory(t *testing.T) {
	orders := &test.OrderRepositoryStub{
		ListByUserFn: func(_ context.Context, userID int64, limit int) ([]model.Order, error) {
			if userID != 7 || limit != 10 {
				t.Fatalf("unexpected args: user=%d limit=%d", userID, limit)
			}
			return []model.Order{{OrderID: "ORD00000001"}}, nil
		},
	}
	uc, _, _ := newOrderUseCase(orders, settingsFixture())

	history, err := uc.History(context.Background(), 7, 10)
	if err != nil || len(history) != 1 {
		t.Fatalf("unexpected result: %v err=%v", history, err)
	}
}
