package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	server "tripdesk/internal/adapters/http_server"
	"tripdesk/internal/adapters/observability"
	"tripdesk/internal/adapters/redisstore"
	"tripdesk/internal/adapters/stripepay"
	"tripdesk/internal/adapters/supplier"
	"tripdesk/internal/app"
	"tripdesk/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	rdb := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	cache := redisstore.NewCache(rdb)
	sessions := redisstore.NewSessionStore(rdb, cfg.SessionTTL)

	sup, err := supplier.New(cfg.SupplierBase, cfg.SupplierKey, cfg.SupplierRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize supplier client")
	}

	gateway, err := stripepay.New(cfg.StripeKey, cfg.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize payment gateway")
	}

	registry := app.NewRegistry(sup, cache, cfg.CacheTTL)
	checkout := app.NewCheckoutService(gateway, sessions)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Reg: registry, Checkout: checkout})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
