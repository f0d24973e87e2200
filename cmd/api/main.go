package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jerseyfront/jerseyfront/api/routes"
	"github.com/jerseyfront/jerseyfront/internal/admin"
	"github.com/jerseyfront/jerseyfront/internal/cart"
	"github.com/jerseyfront/jerseyfront/internal/catalog"
	"github.com/jerseyfront/jerseyfront/pkg/config"
	"github.com/jerseyfront/jerseyfront/pkg/logger"
	"github.com/jerseyfront/jerseyfront/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	upstream, err := catalog.NewClient(cfg.Upstream, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to build upstream client", err)
		os.Exit(1)
	}

	snapshot, err := catalog.NewSnapshot(upstream, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog snapshot", err)
		os.Exit(1)
	}

	// The catalog is loaded once up front. A failed load is not fatal:
	// readers surface the error and the next admin mutation or restart
	// retries, matching the storefront's reload-to-retry behavior.
	if err := snapshot.Refresh(context.Background()); err != nil {
		logg.Error(context.Background(), "initial catalog load failed", err)
	}

	cartService, err := cart.NewService(cart.NewStore(), snapshot, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	adminService, err := admin.NewService(upstream, snapshot, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"upstream": cfg.Upstream.BaseURL,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, snapshot, cartService, adminService, httpMetrics, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
