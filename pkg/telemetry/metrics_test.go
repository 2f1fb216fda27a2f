package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestCatalogMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background()) //nolint:errcheck

	m, err := NewCatalogMetricsWithMeter(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.Mutation(ctx, "publish")
	m.Mutation(ctx, "publish")
	m.PersistFailure(ctx, "remove")
	m.Event(ctx, "catalog.item.published")
	m.Enrichment(ctx, "failed")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, mt := range sm.Metrics {
			sum, ok := mt.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", mt.Name)
			for _, dp := range sum.DataPoints {
				totals[mt.Name] += dp.Value
			}
		}
	}

	assert.Equal(t, int64(2), totals["catalog_mutations_total"])
	assert.Equal(t, int64(1), totals["catalog_persist_failures_total"])
	assert.Equal(t, int64(1), totals["catalog_events_total"])
	assert.Equal(t, int64(1), totals["catalog_enrichments_total"])
}

func TestCatalogMetrics_NilIsNoop(t *testing.T) {
	var m *CatalogMetrics
	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.Mutation(ctx, "publish")
		m.PersistFailure(ctx, "publish")
		m.Event(ctx, "topic")
		m.Enrichment(ctx, "generated")
	})
}
