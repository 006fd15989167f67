package settingscache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/starbuy/shop/internal/config"
	"github.com/starbuy/shop/internal/domain/repository"
	"github.com/starbuy/shop/internal/storage/postgres"
)

// Module provides the settings repository, cached in redis when a redis
// address is configured.
var Module = fx.Options(
	fx.Provide(newSettingsRepository),
)

type cacheParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Storage *postgres.Storage
	Logger  *slog.Logger
}

func newSettingsRepository(p cacheParams) repository.SettingsRepository {
	inner := p.Storage.Settings()
	if p.Config.RedisAddress == "" {
		return inner
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	p.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return New(inner, client, p.Config.SettingsCacheTTL, p.Logger)
}
