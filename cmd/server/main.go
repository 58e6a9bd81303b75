// Command server is the process entry point for the price-tracking backend.
// It loads configuration, opens the SQLite-backed store, seeds the location
// catalog, wires the HTTP router, and runs until interrupted, draining the
// connection pool on the way out.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/skuwatch/go-price-backend/docs" // swagger spec registration
	"github.com/skuwatch/go-price-backend/internal/config"
	httpapi "github.com/skuwatch/go-price-backend/internal/http"
	"github.com/skuwatch/go-price-backend/internal/observability"
	"github.com/skuwatch/go-price-backend/internal/repo"
	"github.com/skuwatch/go-price-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// @title        go-price-backend API
// @version      1.0
// @description  Price-tracking backend: records observed retail prices per product and store location, gated by issued API keys.
// @BasePath     /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name X-API-Key
func main() {
	_ = godotenv.Load() // load .env if present; not fatal if missing

	cfg := config.MustLoad()

	sysutil.SetupLogging(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing (no-op unless OTEL_ENABLED)
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		if err := shutdownOTel(context.Background()); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Storage
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			log.Warn().Err(err).Msg("db tracing not enabled")
		}
	}

	// The location catalog is managed operationally, not by callers; ensure
	// the configured stores exist before serving.
	for _, name := range cfg.SeedLocations {
		if _, err := repo.CreateLocation(ctx, db, name); err != nil {
			log.Fatal().Err(err).Str("location", name).Msg("seed location failed")
		}
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("version", version).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server listen failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server shutdown")
	}

	if err := repo.Close(db); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
	log.Info().Msg("graceful shutdown complete")
}
