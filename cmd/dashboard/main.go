package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/climate-mood/internal/adapter/gistemp"
	httpadapter "github.com/couchcryptid/climate-mood/internal/adapter/http"
	"github.com/couchcryptid/climate-mood/internal/config"
	"github.com/couchcryptid/climate-mood/internal/dashboard"
	"github.com/couchcryptid/climate-mood/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := gistemp.NewClient(cfg.GistempURL, cfg.FetchTimeout, metrics, logger)
	loader := gistemp.NewCachedLoader(client, cfg.CacheTTL, nil, metrics)

	svc := dashboard.New(loader, dashboard.Params{
		RollingWindow:     cfg.RollingWindow,
		RollingMinPeriods: cfg.RollingMinPeriods,
		TrendYears:        cfg.TrendYears,
		PredictionYears:   cfg.PredictionYears,
	}, metrics, logger)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("climate mood dashboard started",
		"addr", cfg.HTTPAddr,
		"gistemp_url", cfg.GistempURL,
		"cache_ttl", cfg.CacheTTL,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
