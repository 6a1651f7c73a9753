package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/clothingstore/storefront-gateway/internal/api"
	"github.com/clothingstore/storefront-gateway/internal/core/service"
	"github.com/clothingstore/storefront-gateway/internal/infrastructure/backend"
	"github.com/clothingstore/storefront-gateway/internal/infrastructure/config"
	redisdb "github.com/clothingstore/storefront-gateway/internal/infrastructure/db/redis"
	"github.com/clothingstore/storefront-gateway/internal/infrastructure/static"
	"github.com/clothingstore/storefront-gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Storefront Gateway API
// @version      1.0
// @description  BFF for the clothing storefront: catalog with sample-data fallback, session carts, and authenticated proxies to the commerce backend.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "storefront-gateway",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
	}
	defer rdb.Close()

	backendClient := backend.NewClient(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
	}, log)

	catalogService := service.NewCatalogService(backendClient, static.NewSource(), log)
	cartService := service.NewCartService(redisdb.NewCartStore(rdb, cfg.Cart.TTL), log)
	accountService := service.NewAccountService(backendClient, cartService, log)

	e := api.NewRouter(api.Dependencies{
		Catalog:  catalogService,
		Carts:    cartService,
		Accounts: accountService,
		Gateway:  backendClient,
		Resolver: service.NewAuthzService(),
		Redis:    rdb,
		Backend:  backendClient,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("starting storefront gateway")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
