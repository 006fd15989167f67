package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/starbuy/shop/internal/app"
	"github.com/starbuy/shop/internal/config"
	"github.com/starbuy/shop/internal/pkg/auth"
	"github.com/starbuy/shop/internal/pkg/upload"
	"github.com/starbuy/shop/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
	fx.Provide(newUploadStore),
	fx.Provide(newRouter),
)

func newUploadStore(cfg *config.Config) (*upload.Store, error) {
	return upload.NewStore(cfg.UploadDir)
}

type routerParams struct {
	fx.In

	Facade handlers.ShopFacade
	Store  *upload.Store
	Config *config.Config
	Logger *slog.Logger
}

func newRouter(p routerParams) *gin.Engine {
	opts := Options{
		UploadDir:       p.Config.UploadDir,
		RequireInitData: p.Config.RequireInitData,
	}
	if p.Config.BotToken != "" {
		opts.InitData = auth.NewValidator(p.Config.BotToken, auth.Options{})
	}
	return Setup(p.Facade, p.Store, p.Logger, opts)
}
