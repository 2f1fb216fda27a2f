package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/graphicoglobal/atelier/pkg/app"
	"github.com/graphicoglobal/atelier/pkg/config"
	"github.com/graphicoglobal/atelier/pkg/database"
	"github.com/graphicoglobal/atelier/pkg/events"
	"github.com/graphicoglobal/atelier/pkg/logger"
	"github.com/graphicoglobal/atelier/pkg/telemetry"
	catalogApi "github.com/graphicoglobal/atelier/services/catalog/application/api"
)

// The worker consumes catalog events from the SQL transport outside the API
// process. It joins the same consumer group as the API, so each event is
// audited once across all running instances.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	if cfg.EventsBackend != config.EventsPostgres {
		log.Error("worker requires EVENTS_BACKEND=postgres; the memory transport is in-process only",
			"events_backend", cfg.EventsBackend)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	catalogMetrics, err := telemetry.NewCatalogMetrics()
	if err != nil {
		log.Error("failed to register catalog metrics", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, pool.DB(), log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Metrics:  catalogMetrics,
	}

	if err := catalogApi.CatalogSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("worker started", "consumer_group", cfg.ServiceName+"-consumer")

	<-ctx.Done()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("shutting down worker...")
}
