package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adforge/internal/adapter/credentials"
	httpadapter "adforge/internal/adapter/http"
	"adforge/internal/adapter/platform"
	"adforge/internal/adapter/postgres"
	"adforge/internal/adapter/rediscache"
	"adforge/internal/adapter/usecase"
	"adforge/internal/config"
	"adforge/internal/core/domain"
	"adforge/internal/db"
)

// main is the entry point of the adforge service. It loads configuration,
// optionally runs database migrations, initializes the database pool, the
// media handle cache and the platform adapters, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	seed := flag.Bool("seed", false, "insert demo data and exit")
	flag.Parse()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	cipher, err := credentials.NewCipher(cfg.Creds.Key)
	if err != nil {
		logger.Error("credential cipher error", slog.Any("error", err))
		os.Exit(1)
	}
	resolver := credentials.NewResolver(pool, cipher)

	if *seed {
		if err = db.Seed(ctx, pool, resolver); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("seed data inserted")
		exitCode = 0
		return
	}

	redisClient, err := rediscache.Connect(cfg.Redis.Addr)
	if err != nil {
		logger.Error("redis connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()
	mediaCache := rediscache.NewMediaHandleCache(redisClient, cfg.Redis.HandleTTL)

	registry := platform.NewRegistry()
	registry.Register(domain.PlatformMeta, platform.NewMeta(cfg.Platforms.MetaBaseURL, cfg.Publish.AdapterTimeout))
	registry.Register(domain.PlatformTikTok, platform.NewTikTok(cfg.Platforms.TikTokBaseURL, cfg.Publish.AdapterTimeout))
	registry.Register(domain.PlatformLinkedIn, platform.NewLinkedIn(cfg.Platforms.LinkedInBaseURL, cfg.Publish.AdapterTimeout))

	repo := postgres.NewDraftRepository(pool)
	svc := usecase.NewCampaignPublisher(repo, resolver, registry, mediaCache, logger, cfg.Publish.Concurrency)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
