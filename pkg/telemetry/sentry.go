package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/graphicoglobal/atelier/pkg/config"
)

// SetupSentry initializes the Sentry SDK. No-ops if DSN is empty.
// The admin secret and session cookie are never sent: request bodies and
// cookies are stripped before an event leaves the process.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: 0.2,
		SendDefaultPII:   false,
		BeforeSend:       scrubRequest,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

func scrubRequest(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event.Request != nil {
		event.Request.Data = ""
		event.Request.Cookies = ""
		delete(event.Request.Headers, "Cookie")
		delete(event.Request.Headers, "Authorization")
	}
	return event
}

// CaptureError reports err to Sentry under op. It uses the request hub in
// ctx when present and is a no-op when Sentry is not configured.
func CaptureError(ctx context.Context, op string, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("catalog.op", op)
		hub.CaptureException(err)
	})
}

// SentryFlush flushes buffered events before process exit.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware returns a net/http middleware that captures panics and errors.
// Repanic: true so the outer Recovery middleware still handles the 500 response.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
