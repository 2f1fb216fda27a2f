package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/graphicoglobal/atelier/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "atelier-test",
		ServiceVersion: "test",
		Environment:    config.EnvTesting,
		StorageBackend: config.StorageMemory,
		EventsBackend:  config.EventsMemory,
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NotNil(t, handler)

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_MetricsHandlerServesCatalogInstruments(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	m, err := NewCatalogMetrics()
	require.NoError(t, err)
	m.Mutation(context.Background(), "publish")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rr.Body.String(), "catalog_mutations")
}

func TestSetupSentry_NoDSN(t *testing.T) {
	assert.NoError(t, SetupSentry(baseConfig()))
}

func TestScrubRequest(t *testing.T) {
	ev := &sentry.Event{Request: &sentry.Request{
		Data:    `{"secret":"@3136#"}`,
		Cookies: "atelier_admin=abc",
		Headers: map[string]string{"Cookie": "atelier_admin=abc", "User-Agent": "curl"},
	}}
	out := scrubRequest(ev, nil)
	assert.Empty(t, out.Request.Data)
	assert.Empty(t, out.Request.Cookies)
	assert.NotContains(t, out.Request.Headers, "Cookie")
	assert.Equal(t, "curl", out.Request.Headers["User-Agent"])
}

func TestCaptureError_NoClient(t *testing.T) {
	assert.NotPanics(t, func() {
		CaptureError(context.Background(), "publish", errors.New("disk full"))
	})
}
