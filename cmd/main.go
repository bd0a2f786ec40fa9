package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "adboard/internal/adapter/http"
	"adboard/internal/adapter/identity"
	minioadapter "adboard/internal/adapter/minio"
	"adboard/internal/adapter/moderation"
	"adboard/internal/adapter/postgres"
	"adboard/internal/adapter/usecase"
	"adboard/internal/config"
	"adboard/internal/db"
)

// main is the entry point of the adboard booking engine. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, object store and repositories, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

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

	tz, err := cfg.App.Location()
	if err != nil {
		logger.Error("invalid timezone", slog.String("timezone", cfg.App.Timezone), slog.Any("error", err))
		os.Exit(1)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
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

	if cfg.Psql.SeedDemo {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	assets, err := minioadapter.New(ctx, cfg.S3)
	if err != nil {
		logger.Error("object store error", slog.Any("error", err))
		os.Exit(1)
	}

	calendar := postgres.NewCalendarRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	ledger := postgres.NewLedgerRepository(pool)

	booking := usecase.NewBookingOrchestrator(calendar, campaigns, ledger, assets, cfg.App.Namespace, logger)
	visibility := usecase.NewVisibilityProjector(calendar, campaigns, assets,
		cfg.S3.ProdNamespace, cfg.S3.DevNamespace, tz, logger)

	hook := moderation.NewWebhook(logger)
	applier := usecase.NewModerationApplier(campaigns, logger)
	go applier.Run(ctx, hook)

	handler := httpadapter.NewHandler(booking, visibility, identity.NewHeader(), hook, logger)
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

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
