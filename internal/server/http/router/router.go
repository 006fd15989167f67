package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/starbuy/shop/internal/pkg/upload"
	"github.com/starbuy/shop/internal/server/http/handlers"
	"github.com/starbuy/shop/internal/server/http/middleware"
)

// Options controls optional router behaviour.
type Options struct {
	UploadDir       string
	InitData        middleware.InitDataValidator
	RequireInitData bool
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, store *upload.Store, logger *slog.Logger, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/uploads"})))

	userHandler := handlers.NewUserHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, store)
	depositHandler := handlers.NewDepositHandler(facade, store)
	referralHandler := handlers.NewReferralHandler(facade)

	api := engine.Group("/api")
	if opts.InitData != nil {
		api.Use(middleware.InitDataAuth(opts.InitData, opts.RequireInitData))
	}

	api.GET("/user/:telegramID", userHandler.Get)
	api.GET("/packages", catalogHandler.Packages)
	api.GET("/settings", catalogHandler.Settings)
	api.POST("/order", orderHandler.Place)
	api.POST("/order-stars", orderHandler.PlaceStars)
	api.GET("/orders/:telegramID", orderHandler.List)
	api.POST("/deposit", depositHandler.Submit)
	api.GET("/deposits/:telegramID", depositHandler.List)
	api.GET("/referrals/:telegramID", referralHandler.Summary)
	api.POST("/transfer-referral", referralHandler.Transfer)

	if opts.UploadDir != "" {
		engine.Static("/uploads", opts.UploadDir)
	}

	return engine
}
