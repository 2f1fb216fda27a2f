package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const catalogMeterName = "github.com/graphicoglobal/atelier/catalog"

// CatalogMetrics holds the catalog's OTel instruments. A nil *CatalogMetrics
// is valid and records nothing.
type CatalogMetrics struct {
	mutations       metric.Int64Counter
	persistFailures metric.Int64Counter
	events          metric.Int64Counter
	enrichments     metric.Int64Counter
}

// NewCatalogMetrics registers the catalog instruments on the global meter provider.
// Call after Setup so the Prometheus reader picks them up.
func NewCatalogMetrics() (*CatalogMetrics, error) {
	return NewCatalogMetricsWithMeter(otel.Meter(catalogMeterName))
}

// NewCatalogMetricsWithMeter registers the catalog instruments on meter.
func NewCatalogMetricsWithMeter(meter metric.Meter) (*CatalogMetrics, error) {
	mutations, err := meter.Int64Counter("catalog_mutations_total",
		metric.WithDescription("Catalog commands applied, by operation"))
	if err != nil {
		return nil, fmt.Errorf("catalog_mutations_total: %w", err)
	}
	persistFailures, err := meter.Int64Counter("catalog_persist_failures_total",
		metric.WithDescription("Catalog saves that failed after the in-memory change was applied"))
	if err != nil {
		return nil, fmt.Errorf("catalog_persist_failures_total: %w", err)
	}
	events, err := meter.Int64Counter("catalog_events_total",
		metric.WithDescription("Catalog domain events consumed, by topic"))
	if err != nil {
		return nil, fmt.Errorf("catalog_events_total: %w", err)
	}
	enrichments, err := meter.Int64Counter("catalog_enrichments_total",
		metric.WithDescription("Description generation requests, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("catalog_enrichments_total: %w", err)
	}
	return &CatalogMetrics{
		mutations:       mutations,
		persistFailures: persistFailures,
		events:          events,
		enrichments:     enrichments,
	}, nil
}

// Mutation counts one applied catalog command.
func (m *CatalogMetrics) Mutation(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.mutations.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// PersistFailure counts one failed full-collection save.
func (m *CatalogMetrics) PersistFailure(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.persistFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// Event counts one consumed domain event.
func (m *CatalogMetrics) Event(ctx context.Context, topic string) {
	if m == nil {
		return
	}
	m.events.Add(ctx, 1, metric.WithAttributes(attribute.String("topic", topic)))
}

// Enrichment counts one description request; outcome is "generated",
// "empty" or "failed".
func (m *CatalogMetrics) Enrichment(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.enrichments.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
