package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/01moynul/poi-geojson/internal/config"
	"github.com/01moynul/poi-geojson/internal/handlers"
	"github.com/01moynul/poi-geojson/internal/logging"
	"github.com/01moynul/poi-geojson/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	envErr := godotenv.Load()

	// 1. --- Process Settings ---
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logging.Warn().Msg("no .env file loaded, relying on system environment variables")
	}
	if cfg.Env == config.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. --- Handlers ---
	// The MySQL option file is read per request, so a missing file is only
	// reported here and then again as a 500 on every request.
	if _, err := os.Stat(cfg.ClientConfigPath); err != nil {
		logging.Warn().Err(err).Str("path", cfg.ClientConfigPath).Msg("MySQL client config not readable yet")
	}
	app := handlers.New(cfg.ClientConfigPath, cfg.HideDBErrors)

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// --- Start Server ---
	srvErrCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", cfg.HTTPAddr).
			Str("env", cfg.Env).
			Str("db_config", cfg.ClientConfigPath).
			Msg("starting POI GeoJSON API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErrCh <- err
		}
		close(srvErrCh)
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("shutting down gracefully...")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("error during shutdown")
		}
	case err, ok := <-srvErrCh:
		if ok && err != nil {
			logging.Fatal().Err(err).Msg("failed to start server")
		}
	}
}
