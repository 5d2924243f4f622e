package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"adforge/internal/adapter/repo"
	"adforge/internal/adimage"
	"adforge/internal/gateway"
	"adforge/internal/headlines"
	"adforge/internal/http/handlers"
	"adforge/internal/http/httpapi"
	"adforge/internal/infra"
	"adforge/internal/infra/geoip"
	"adforge/internal/middleware"
	"adforge/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &handlers.App{Config: cfg, Logger: logger}

	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		app.Campaigns = repo.NewCampaignRepo(pool)
		logger.Info().Msg("campaign history enabled")
	} else {
		logger.Info().Msg("DATABASE_URL not set, campaign history disabled")
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if resolver != nil {
		lookup = resolver.CountryCode
		logger.Info().Str("path", cfg.GeoIPDBPath).Msg("geoip database loaded")
	}

	gw := gateway.NewClient(gateway.Options{
		APIKey:  cfg.GatewayAPIKey,
		BaseURL: cfg.GatewayBaseURL,
		Logger:  logger,
	})
	if cfg.GatewayAPIKey == "" {
		logger.Warn().Msg("GATEWAY_API_KEY not set, generation endpoints will fail")
	}

	app.Pipeline = pipeline.New(pipeline.Options{
		Gateway:         gw,
		TextModel:       cfg.TextModel,
		ImageModel:      cfg.ImageModel,
		TemplateVersion: cfg.TemplateVersion,
		Logger:          logger,
	})
	app.Headlines = headlines.NewGenerator(gw, cfg.TextModel, logger)
	app.AdImages = adimage.NewGenerator(gw, cfg.ImageModel, logger)

	srv := infra.NewHTTPServer(cfg, httpapi.NewRouter(app, lookup))

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("server starting")
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	logger.Info().Msg("server stopped")
}
