package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNew_RecordsOnReader(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := New(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.PlansGeneratedTotal.Add(ctx, 2)
	m.StopsScheduledTotal.Add(ctx, 5)
	m.PlanBuildDurationSeconds.Record(ctx, 0.25)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics[0].Metrics {
		names[sm.Name] = true
	}
	assert.True(t, names["plans_generated_total"])
	assert.True(t, names["stops_scheduled_total"])
	assert.True(t, names["plan_build_duration_seconds"])
}

func TestNoop(t *testing.T) {
	m := Noop()
	assert.NotPanics(t, func() {
		m.ExtractionFallbacksTotal.Add(context.Background(), 1)
		m.DbQueryDurationSeconds.Record(context.Background(), 0.01)
	})
}
