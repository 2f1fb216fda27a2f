package app

import (
	"github.com/gorilla/sessions"

	"github.com/graphicoglobal/atelier/pkg/cache"
	"github.com/graphicoglobal/atelier/pkg/clock"
	"github.com/graphicoglobal/atelier/pkg/config"
	"github.com/graphicoglobal/atelier/pkg/database"
	"github.com/graphicoglobal/atelier/pkg/events"
	"github.com/graphicoglobal/atelier/pkg/logger"
	"github.com/graphicoglobal/atelier/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each bounded context's service container and route registration.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item published", "item_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config       *config.Config
	Db           *database.Database // nil unless the storage or events backend is SQL
	Logger       logger.Logger
	EventBus     *events.EventBus
	Redis        *cache.RedisClient // nil unless a Redis backend is selected
	SessionStore sessions.Store
	Clock        clock.Clock
	Metrics      *telemetry.CatalogMetrics
}
