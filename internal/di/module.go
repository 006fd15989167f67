package di

import (
	"go.uber.org/fx"

	"github.com/starbuy/shop/internal/app"
	"github.com/starbuy/shop/internal/bot"
	"github.com/starbuy/shop/internal/config"
	"github.com/starbuy/shop/internal/logger"
	"github.com/starbuy/shop/internal/server/http/router"
	"github.com/starbuy/shop/internal/storage/postgres"
	"github.com/starbuy/shop/internal/storage/settingscache"
	"github.com/starbuy/shop/internal/usecase"
	"github.com/starbuy/shop/internal/worker"
)

// Module assembles the full application graph. Extra options are appended
// so tests can replace infrastructure pieces.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		settingscache.Module,
		usecase.Module,
		worker.Module,
		router.Module,
		bot.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
