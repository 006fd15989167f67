package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
	"github.com/starbuy/shop/internal/pkg/upload"
)

// telegramAPI is the slice of telego.Bot the shop talks to. Narrowed for
// stubbing in tests.
type telegramAPI interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	SendPhoto(ctx context.Context, params *telego.SendPhotoParams) (*telego.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *telego.AnswerCallbackQueryParams) error
}

// Sender pushes order and deposit notifications to the operator chat.
type Sender struct {
	api      telegramAPI
	settings repository.SettingsRepository
	uploads  *upload.Store
	logger   *slog.Logger
}

// NewSender constructs the operator notification sender.
func NewSender(api telegramAPI, settings repository.SettingsRepository, uploads *upload.Store, logger *slog.Logger) *Sender {
	return &Sender{api: api, settings: settings, uploads: uploads, logger: logger}
}

func (s *Sender) adminChat(ctx context.Context) (int64, bool, error) {
	settings, err := s.settings.Snapshot(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("load settings: %w", err)
	}
	chatID, ok := settings.AdminChatID()
	return chatID, ok, nil
}

// SendOrderPlaced notifies the operator chat about a fresh order,
// attaching the proof screenshot when one was uploaded.
func (s *Sender) SendOrderPlaced(ctx context.Context, order *model.Order, user *model.User) error {
	chatID, ok, err := s.adminChat(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("no admin chat configured, dropping order notification", slog.String("order_id", order.OrderID))
		return nil
	}

	msg := tu.Message(tu.ID(chatID), formatOrderPlaced(order, user)).
		WithParseMode(telego.ModeMarkdown).
		WithReplyMarkup(orderKeyboard(order))
	if _, err := s.api.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send order notification: %w", err)
	}

	s.sendScreenshot(ctx, chatID, order.ScreenshotPath, "Screenshot for Order #"+order.OrderID)
	return nil
}

// SendOrderResolved reports a finished transition back to the operator chat.
func (s *Sender) SendOrderResolved(ctx context.Context, order *model.Order) error {
	chatID, ok, err := s.adminChat(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if _, err := s.api.SendMessage(ctx, tu.Message(tu.ID(chatID), formatOrderResolved(order))); err != nil {
		return fmt.Errorf("send order resolution: %w", err)
	}
	return nil
}

// SendDepositSubmitted notifies the operator chat about a pending top-up.
func (s *Sender) SendDepositSubmitted(ctx context.Context, deposit *model.Deposit, user *model.User) error {
	chatID, ok, err := s.adminChat(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("no admin chat configured, dropping deposit notification", slog.String("deposit_id", deposit.DepositID))
		return nil
	}

	msg := tu.Message(tu.ID(chatID), formatDepositSubmitted(deposit, user)).
		WithParseMode(telego.ModeMarkdown).
		WithReplyMarkup(depositKeyboard(deposit))
	if _, err := s.api.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send deposit notification: %w", err)
	}

	s.sendScreenshot(ctx, chatID, deposit.ScreenshotPath, "Screenshot for Deposit #"+deposit.DepositID)
	return nil
}

// SendDepositResolved reports a deposit verdict back to the operator chat.
func (s *Sender) SendDepositResolved(ctx context.Context, deposit *model.Deposit) error {
	chatID, ok, err := s.adminChat(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if _, err := s.api.SendMessage(ctx, tu.Message(tu.ID(chatID), formatDepositResolved(deposit))); err != nil {
		return fmt.Errorf("send deposit resolution: %w", err)
	}
	return nil
}

// noopSender stands in for the Telegram sender when no bot token is
// configured. Notifications are logged and discarded.
type noopSender struct {
	logger *slog.Logger
}

func (s noopSender) SendOrderPlaced(_ context.Context, order *model.Order, _ *model.User) error {
	s.logger.Debug("telegram disabled, dropping order notification", slog.String("order_id", order.OrderID))
	return nil
}

func (s noopSender) SendOrderResolved(_ context.Context, order *model.Order) error {
	s.logger.Debug("telegram disabled, dropping order resolution", slog.String("order_id", order.OrderID))
	return nil
}

func (s noopSender) SendDepositSubmitted(_ context.Context, deposit *model.Deposit, _ *model.User) error {
	s.logger.Debug("telegram disabled, dropping deposit notification", slog.String("deposit_id", deposit.DepositID))
	return nil
}

func (s noopSender) SendDepositResolved(_ context.Context, deposit *model.Deposit) error {
	s.logger.Debug("telegram disabled, dropping deposit resolution", slog.String("deposit_id", deposit.DepositID))
	return nil
}

// sendScreenshot is best effort: the text notification already went out.
func (s *Sender) sendScreenshot(ctx context.Context, chatID int64, ref, caption string) {
	if ref == "" {
		return
	}
	f, err := s.uploads.Open(ref)
	if err != nil {
		s.logger.Warn("screenshot unavailable", slog.String("ref", ref), slog.Any("error", err))
		return
	}
	defer f.Close()

	photo := tu.Photo(tu.ID(chatID), tu.File(f)).WithCaption(caption)
	if _, err := s.api.SendPhoto(ctx, photo); err != nil {
		s.logger.Warn("send screenshot failed", slog.String("ref", ref), slog.Any("error", err))
	}
}
