// Arcana backend: AI-generated horoscopes, tarot readings, birth charts, a
// small e-commerce shop, and an AI-drafted blog behind one HTTP API.
//
// Run it with `go run .`; configuration comes from the environment (a local
// .env file is honored in development).
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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kehanet/go-arcana-backend/internal/ai"
	"github.com/kehanet/go-arcana-backend/internal/config"
	httpapi "github.com/kehanet/go-arcana-backend/internal/http"
	"github.com/kehanet/go-arcana-backend/internal/observability"
	"github.com/kehanet/go-arcana-backend/internal/repo"
	"github.com/kehanet/go-arcana-backend/internal/services"
	"github.com/kehanet/go-arcana-backend/internal/suppliers"
	"github.com/kehanet/go-arcana-backend/internal/sysutil"

	_ "github.com/kehanet/go-arcana-backend/docs"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

// @title          Arcana API
// @version        1.0
// @description    Horoscopes, tarot readings, compatibility, birth charts, shop, and blog.
// @BasePath       /api/v1
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	// Logging
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Str("version", version).Str("port", cfg.Port).Msg("starting arcana backend")

	// Tracing
	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	// Database
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	// Provider chain: primary → secondary, memoized in Redis when configured.
	var chainProviders []ai.Provider
	if p := ai.NewClient("primary", cfg.AI.Primary); p != nil {
		chainProviders = append(chainProviders, p)
	}
	if p := ai.NewClient("secondary", cfg.AI.Secondary); p != nil {
		chainProviders = append(chainProviders, p)
	}
	var provider ai.Provider = ai.NewChain(chainProviders...)

	var rdb *redis.Client
	if cfg.AI.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.AI.RedisAddr,
			Password: cfg.AI.RedisPassword,
			DB:       cfg.AI.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.AI.RedisAddr).Msg("redis unreachable, caching disabled")
			rdb = nil
		}
	}
	provider = ai.NewCached(provider, rdb, cfg.AI.CacheTTL)

	// Supplier catalog (nil disables the sync endpoint's work).
	var catalog services.Catalog
	if c := suppliers.NewClient(cfg.Supplier); c != nil {
		catalog = c
		log.Info().Str("supplier", c.Name()).Msg("catalog sync enabled")
	}

	// HTTP
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, provider, catalog, cfg)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("bye")
}
