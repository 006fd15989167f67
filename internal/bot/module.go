package bot

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/starbuy/shop/internal/app"
	"github.com/starbuy/shop/internal/config"
	"github.com/starbuy/shop/internal/domain/repository"
	"github.com/starbuy/shop/internal/pkg/upload"
	"github.com/starbuy/shop/internal/worker"
)

// Module wires the Telegram bot and the notification sender. Without a
// bot token the shop runs HTTP-only and notifications are discarded.
var Module = fx.Options(
	fx.Provide(func(f *app.ShopFacade) Facade { return f }),
	fx.Provide(newBot),
	fx.Invoke(registerLifecycle),
)

// botParams deliberately excludes the facade: the sender feeds the
// notification dispatcher, which the use cases behind the facade depend
// on, so constructing the bot from the facade would close a provider
// cycle. The facade is bound in registerLifecycle instead.
type botParams struct {
	fx.In

	Config   *config.Config
	Settings repository.SettingsRepository
	Uploads  *upload.Store
	Logger   *slog.Logger
}

type botResult struct {
	fx.Out

	Bot    *Bot
	Sender worker.Sender
}

func newBot(p botParams) (botResult, error) {
	if p.Config.BotToken == "" {
		p.Logger.Info("bot token not configured, telegram integration disabled")
		return botResult{Bot: nil, Sender: noopSender{logger: p.Logger}}, nil
	}

	opts := Options{WebAppURL: p.Config.WebAppURL, PageSize: p.Config.AdminPageSize}
	b, err := New(p.Config.BotToken, p.Uploads, opts, p.Logger)
	if err != nil {
		return botResult{}, err
	}
	return botResult{
		Bot:    b,
		Sender: NewSender(b.api, p.Settings, p.Uploads, p.Logger),
	}, nil
}

func registerLifecycle(lc fx.Lifecycle, b *Bot, facade Facade) {
	if b == nil {
		return
	}
	b.Bind(facade)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return b.Start(ctx)
		},
		OnStop: func(context.Context) error {
			b.Stop()
			return nil
		},
	})
}
