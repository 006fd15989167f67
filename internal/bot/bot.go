package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/pkg/upload"
)

// Facade is the application surface the operator bot drives.
type Facade interface {
	ResolveUser(ctx context.Context, telegramID int64, username, firstName, referralCode string) (*model.User, error)
	StoreSettings(ctx context.Context) (model.Settings, error)
	Order(ctx context.Context, orderID string) (*model.Order, error)
	Orders(ctx context.Context, telegramID int64, limit int) ([]model.Order, error)
	ResolveOrder(ctx context.Context, actorID int64, orderID string, action model.OrderAction) (*model.Order, error)
	Deposit(ctx context.Context, depositID string) (*model.Deposit, error)
	Deposits(ctx context.Context, telegramID int64, limit int) ([]model.Deposit, error)
	ResolveDeposit(ctx context.Context, actorID int64, depositID string, action model.DepositAction) (*model.Deposit, error)
	AdminDashboard(ctx context.Context, actorID int64) (*model.AdminStats, error)
	AdminRecentOrders(ctx context.Context, actorID int64, limit int) ([]model.Order, error)
	AdminRecentDeposits(ctx context.Context, actorID int64, limit int) ([]model.Deposit, error)
	AdminUserOverview(ctx context.Context, actorID, telegramID int64) (*model.User, error)
}

// Options tunes presentation details of the bot.
type Options struct {
	WebAppURL string
	PageSize  int
}

// Bot serves the customer entry point and the operator control chat over
// Telegram long polling.
type Bot struct {
	bot       *telego.Bot
	api       telegramAPI
	facade    Facade
	uploads   *upload.Store
	webAppURL string
	pageSize  int
	logger    *slog.Logger

	handler *th.BotHandler
	cancel  context.CancelFunc
}

// New constructs the bot from a Telegram token. The application facade is
// attached separately with Bind before Start.
func New(token string, uploads *upload.Store, opts Options, logger *slog.Logger) (*Bot, error) {
	tgBot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	return &Bot{
		bot:       tgBot,
		api:       tgBot,
		uploads:   uploads,
		webAppURL: opts.WebAppURL,
		pageSize:  opts.PageSize,
		logger:    logger,
	}, nil
}

// Bind attaches the application surface the handlers call into.
func (b *Bot) Bind(facade Facade) {
	b.facade = facade
}

// Start begins long polling. It returns once polling is established; the
// update loop runs until Stop.
func (b *Bot) Start(ctx context.Context) error {
	pollCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b.cancel = cancel

	updates, err := b.bot.UpdatesViaLongPolling(pollCtx, nil)
	if err != nil {
		cancel()
		return fmt.Errorf("start long polling: %w", err)
	}

	handler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		cancel()
		return fmt.Errorf("create bot handler: %w", err)
	}
	b.handler = handler
	b.register(handler)

	go func() {
		if err := handler.Start(); err != nil {
			b.logger.Error("bot handler stopped", slog.Any("error", err))
		}
	}()

	b.logger.Info("telegram bot started")
	return nil
}

// Stop terminates polling and the handler loop.
func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	if b.handler != nil {
		if err := b.handler.Stop(); err != nil {
			b.logger.Error("bot handler shutdown", slog.Any("error", err))
		}
	}
}

func (b *Bot) register(handler *th.BotHandler) {
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		b.handleStart(ctx.Context(), update.Message)
		return nil
	}, th.CommandEqual("start"))

	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		b.handleAdmin(ctx.Context(), update.Message)
		return nil
	}, th.CommandEqual("admin"))

	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		if update.Message != nil && update.Message.From != nil {
			b.sendOrderList(ctx.Context(), update.Message.Chat.ID, update.Message.From.ID)
		}
		return nil
	}, th.CommandEqual("orders"))

	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		if update.Message != nil && update.Message.From != nil {
			b.sendDepositList(ctx.Context(), update.Message.Chat.ID, update.Message.From.ID)
		}
		return nil
	}, th.CommandEqual("deposits"))

	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		b.handleSupport(ctx.Context(), update.Message)
		return nil
	}, th.CommandEqual("support"))

	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		b.handleCallback(ctx.Context(), update.CallbackQuery)
		return nil
	}, th.AnyCallbackQuery())
}

// commandArgs returns the first argument after the command itself.
func commandArgs(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if _, err := b.api.SendMessage(ctx, tu.Message(tu.ID(chatID), text)); err != nil {
		b.logger.Error("send message", slog.Int64("chat_id", chatID), slog.Any("error", err))
	}
}

func (b *Bot) handleStart(ctx context.Context, message *telego.Message) {
	if message == nil || message.From == nil {
		return
	}

	referralCode := commandArgs(message.Text)
	if _, err := b.facade.ResolveUser(ctx, message.From.ID, message.From.Username, message.From.FirstName, referralCode); err != nil {
		b.logger.Error("resolve user", slog.Int64("telegram_id", message.From.ID), slog.Any("error", err))
		b.reply(ctx, message.Chat.ID, "An error occurred. Please try again.")
		return
	}

	officialChannel := ""
	if settings, err := b.facade.StoreSettings(ctx); err == nil {
		officialChannel = settings[model.SettingOfficialChannel]
	}

	msg := tu.Message(tu.ID(message.Chat.ID), welcomeText)
	if keyboard := welcomeKeyboard(b.webAppURL, officialChannel); keyboard != nil {
		msg = msg.WithReplyMarkup(keyboard)
	}
	if _, err := b.api.SendMessage(ctx, msg); err != nil {
		b.logger.Error("send welcome", slog.Any("error", err))
	}
}

func (b *Bot) handleAdmin(ctx context.Context, message *telego.Message) {
	if message == nil || message.From == nil {
		return
	}

	stats, err := b.facade.AdminDashboard(ctx, message.From.ID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrUnauthorized) {
			b.logger.Error("admin dashboard", slog.Any("error", err))
		}
		return
	}

	msg := tu.Message(tu.ID(message.Chat.ID), formatDashboard(stats)).WithReplyMarkup(dashboardKeyboard())
	if _, err := b.api.SendMessage(ctx, msg); err != nil {
		b.logger.Error("send dashboard", slog.Any("error", err))
	}
}

func (b *Bot) handleSupport(ctx context.Context, message *telego.Message) {
	if message == nil || message.From == nil {
		return
	}

	arg := commandArgs(message.Text)
	if arg == "" {
		return
	}
	targetID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		b.reply(ctx, message.Chat.ID, "User not found.")
		return
	}

	user, err := b.facade.AdminUserOverview(ctx, message.From.ID, targetID)
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized):
		return
	case errors.Is(err, domainErrors.ErrNotFound):
		b.reply(ctx, message.Chat.ID, "User not found.")
		return
	case err != nil:
		b.logger.Error("user overview", slog.Any("error", err))
		return
	}

	orders, err := b.facade.Orders(ctx, targetID, b.pageSize)
	if err != nil {
		b.logger.Error("list user orders", slog.Any("error", err))
	}
	deposits, err := b.facade.Deposits(ctx, targetID, b.pageSize)
	if err != nil {
		b.logger.Error("list user deposits", slog.Any("error", err))
	}

	b.reply(ctx, message.Chat.ID, formatUserOverview(user, len(orders), len(deposits)))
}

func (b *Bot) sendOrderList(ctx context.Context, chatID, actorID int64) {
	orders, err := b.facade.AdminRecentOrders(ctx, actorID, b.pageSize)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrUnauthorized) {
			b.logger.Error("list orders", slog.Any("error", err))
		}
		return
	}
	if len(orders) == 0 {
		b.reply(ctx, chatID, "No orders found.")
		return
	}

	for i := range orders {
		order := &orders[i]
		msg := tu.Message(tu.ID(chatID), formatOrder(order)).
			WithParseMode(telego.ModeMarkdown).
			WithReplyMarkup(orderKeyboard(order))
		if _, err := b.api.SendMessage(ctx, msg); err != nil {
			b.logger.Error("send order", slog.String("order_id", order.OrderID), slog.Any("error", err))
		}
	}
}

func (b *Bot) sendDepositList(ctx context.Context, chatID, actorID int64) {
	deposits, err := b.facade.AdminRecentDeposits(ctx, actorID, b.pageSize)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrUnauthorized) {
			b.logger.Error("list deposits", slog.Any("error", err))
		}
		return
	}
	if len(deposits) == 0 {
		b.reply(ctx, chatID, "No deposits found.")
		return
	}

	for i := range deposits {
		deposit := &deposits[i]
		msg := tu.Message(tu.ID(chatID), formatDeposit(deposit)).
			WithParseMode(telego.ModeMarkdown).
			WithReplyMarkup(depositKeyboard(deposit))
		if _, err := b.api.SendMessage(ctx, msg); err != nil {
			b.logger.Error("send deposit", slog.String("deposit_id", deposit.DepositID), slog.Any("error", err))
		}
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *telego.CallbackQuery) {
	if query == nil {
		return
	}
	if err := b.api.AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID)); err != nil {
		b.logger.Error("answer callback", slog.Any("error", err))
	}

	// Operator buttons live in the operator's own chat.
	chatID := query.From.ID
	data := query.Data

	switch data {
	case callbackAdminOrders:
		b.sendOrderList(ctx, chatID, query.From.ID)
		return
	case callbackAdminDeposits:
		b.sendDepositList(ctx, chatID, query.From.ID)
		return
	}

	if orderID, ok := parseOrderScreenshotCallback(data); ok {
		b.sendOrderScreenshot(ctx, chatID, orderID)
		return
	}
	if depositID, ok := parseDepositScreenshotCallback(data); ok {
		b.sendDepositScreenshot(ctx, chatID, depositID)
		return
	}
	if action, orderID, ok := parseOrderCallback(data); ok {
		b.resolveOrder(ctx, chatID, query.From.ID, orderID, action)
		return
	}
	if action, depositID, ok := parseDepositCallback(data); ok {
		b.resolveDeposit(ctx, chatID, query.From.ID, depositID, action)
		return
	}
}

func (b *Bot) resolveOrder(ctx context.Context, chatID, actorID int64, orderID string, action model.OrderAction) {
	order, err := b.facade.ResolveOrder(ctx, actorID, orderID, action)
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized):
		return
	case errors.Is(err, domainErrors.ErrNotFound):
		b.reply(ctx, chatID, "Order not found.")
	case errors.Is(err, domainErrors.ErrAlreadyProcessed):
		b.reply(ctx, chatID, "This order has already been processed.")
	case err != nil:
		b.logger.Error("resolve order", slog.String("order_id", orderID), slog.Any("error", err))
		b.reply(ctx, chatID, "An error occurred. Please try again.")
	default:
		b.reply(ctx, chatID, formatOrderResolved(order))
	}
}

func (b *Bot) resolveDeposit(ctx context.Context, chatID, actorID int64, depositID string, action model.DepositAction) {
	deposit, err := b.facade.ResolveDeposit(ctx, actorID, depositID, action)
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized):
		return
	case errors.Is(err, domainErrors.ErrNotFound):
		b.reply(ctx, chatID, "Deposit not found.")
	case errors.Is(err, domainErrors.ErrAlreadyProcessed):
		b.reply(ctx, chatID, "This deposit has already been processed.")
	case err != nil:
		b.logger.Error("resolve deposit", slog.String("deposit_id", depositID), slog.Any("error", err))
		b.reply(ctx, chatID, "An error occurred. Please try again.")
	default:
		b.reply(ctx, chatID, formatDepositResolved(deposit))
	}
}

func (b *Bot) sendOrderScreenshot(ctx context.Context, chatID int64, orderID string) {
	order, err := b.facade.Order(ctx, orderID)
	if err != nil || order.ScreenshotPath == "" {
		b.reply(ctx, chatID, "Screenshot not found.")
		return
	}
	b.sendPhoto(ctx, chatID, order.ScreenshotPath, "Screenshot for Order #"+order.OrderID)
}

func (b *Bot) sendDepositScreenshot(ctx context.Context, chatID int64, depositID string) {
	deposit, err := b.facade.Deposit(ctx, depositID)
	if err != nil || deposit.ScreenshotPath == "" {
		b.reply(ctx, chatID, "Screenshot not found.")
		return
	}
	b.sendPhoto(ctx, chatID, deposit.ScreenshotPath, "Screenshot for Deposit #"+deposit.DepositID)
}

func (b *Bot) sendPhoto(ctx context.Context, chatID int64, ref, caption string) {
	f, err := b.uploads.Open(ref)
	if err != nil {
		b.reply(ctx, chatID, "Screenshot not found.")
		return
	}
	defer f.Close()

	if _, err := b.api.SendPhoto(ctx, tu.Photo(tu.ID(chatID), tu.File(f)).WithCaption(caption)); err != nil {
		b.logger.Error("send photo", slog.String("ref", ref), slog.Any("error", err))
	}
}
