package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/sessions"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/graphicoglobal/atelier/docs/swagger"
	"github.com/graphicoglobal/atelier/migrations/catalog"
	"github.com/graphicoglobal/atelier/pkg/app"
	"github.com/graphicoglobal/atelier/pkg/auth"
	"github.com/graphicoglobal/atelier/pkg/cache"
	"github.com/graphicoglobal/atelier/pkg/clock"
	"github.com/graphicoglobal/atelier/pkg/config"
	"github.com/graphicoglobal/atelier/pkg/database"
	"github.com/graphicoglobal/atelier/pkg/events"
	"github.com/graphicoglobal/atelier/pkg/httpx"
	"github.com/graphicoglobal/atelier/pkg/logger"
	"github.com/graphicoglobal/atelier/pkg/migrator"
	"github.com/graphicoglobal/atelier/pkg/telemetry"
	catalogApi "github.com/graphicoglobal/atelier/services/catalog/application/api"
	catalogSvcs "github.com/graphicoglobal/atelier/services/catalog/application/services"
)

// @title					Atelier Catalog API
// @version				1.0
// @description			Wallpaper catalog: public gallery, limited-time offers, checkout handoff and shared-secret administration.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/
// @schemes				http https
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry: OTel tracing + metrics
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry is optional; log and continue on failure
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	catalogMetrics, err := telemetry.NewCatalogMetrics()
	if err != nil {
		log.Error("failed to register catalog metrics", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	db, err := openDatabase(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	if db != nil {
		defer db.Close() //nolint:errcheck
		if err := migrator.RunMigrations(ctx, db, catalog.FS(db.Dialect())); err != nil {
			log.Error("failed to run migrations", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("migrations applied", "dialect", db.Dialect())
	}

	var redisClient *cache.RedisClient
	if cfg.StorageBackend == config.StorageRedis || cfg.SessionBackend == config.SessionRedis {
		redisClient, err = cache.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	}

	var sqlDB *sql.DB
	if db != nil {
		sqlDB = db.DB()
	}
	eventBus, err := events.NewEventBus(cfg, sqlDB, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck
	log.Info("event bus ready", "backend", cfg.EventsBackend)

	var sessionStore sessions.Store
	if cfg.SessionBackend == config.SessionRedis {
		sessionStore = auth.NewSessionStore(
			redisClient.Client(),
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
			cfg.IsProduction(),
		)
	} else {
		sessionStore = auth.NewCookieStore(
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
			cfg.IsProduction(),
		)
	}
	log.Info("session store initialized", "backend", cfg.SessionBackend)

	appConfig := &app.Application{
		Config:       cfg,
		Db:           db,
		Logger:       log,
		EventBus:     eventBus,
		Redis:        redisClient,
		SessionStore: sessionStore,
		Clock:        clock.NewRealClock(),
		Metrics:      catalogMetrics,
	}

	svcs, err := catalogSvcs.New(ctx, appConfig)
	if err != nil {
		log.Error("failed to build catalog services", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if err := catalogApi.CatalogSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	checks := httpx.HealthChecks{
		"catalog_store": svcs.Blobs,
		"events":        eventBus,
	}
	if db != nil {
		checks["database"] = db
	}
	if redisClient != nil {
		checks["redis"] = redisClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	catalogApi.CatalogRoutes(r, appConfig, svcs)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("server stopped")
}

// openDatabase connects to the SQL database when the storage or events backend
// needs one. It returns nil when neither does.
func openDatabase(ctx context.Context, cfg *config.Config, log logger.Logger) (*database.Database, error) {
	switch {
	case cfg.StorageBackend == config.StorageSQLite:
		if cfg.EventsBackend == config.EventsPostgres {
			return nil, fmt.Errorf("events backend %q requires storage backend %q", cfg.EventsBackend, config.StoragePostgres)
		}
		return database.NewSQLite(ctx, cfg.SQLitePath, log)
	case cfg.StorageBackend == config.StoragePostgres, cfg.EventsBackend == config.EventsPostgres:
		return database.NewPool(ctx, cfg.DatabaseURL, log)
	default:
		return nil, nil
	}
}
