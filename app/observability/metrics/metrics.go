package metrics

import (
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "LocalList"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	PlansGeneratedTotal      metric.Int64Counter
	PlanFailuresTotal        metric.Int64Counter
	ExtractionFallbacksTotal metric.Int64Counter
	StopsScheduledTotal      metric.Int64Counter
	PlanBuildDurationSeconds metric.Float64Histogram
	CatalogCacheHitsTotal    metric.Int64Counter
	DbQueryDurationSeconds   metric.Float64Histogram
	DbQueryErrorsTotal       metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// New creates every instrument on the given meter.
func New(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	if m.PlansGeneratedTotal, err = meter.Int64Counter(
		"plans_generated_total",
		metric.WithDescription("Total number of plans produced by the builder"),
		metric.WithUnit("{plan}"),
	); err != nil {
		return nil, fmt.Errorf("plans_generated_total: %w", err)
	}

	if m.PlanFailuresTotal, err = meter.Int64Counter(
		"plan_failures_total",
		metric.WithDescription("Total number of builder requests that failed"),
		metric.WithUnit("{plan}"),
	); err != nil {
		return nil, fmt.Errorf("plan_failures_total: %w", err)
	}

	if m.ExtractionFallbacksTotal, err = meter.Int64Counter(
		"extraction_fallbacks_total",
		metric.WithDescription("Preference extractions served by the keyword fallback"),
		metric.WithUnit("{extraction}"),
	); err != nil {
		return nil, fmt.Errorf("extraction_fallbacks_total: %w", err)
	}

	if m.StopsScheduledTotal, err = meter.Int64Counter(
		"stops_scheduled_total",
		metric.WithDescription("Total number of stops placed into plans"),
		metric.WithUnit("{stop}"),
	); err != nil {
		return nil, fmt.Errorf("stops_scheduled_total: %w", err)
	}

	if m.PlanBuildDurationSeconds, err = meter.Float64Histogram(
		"plan_build_duration_seconds",
		metric.WithDescription("Duration of builder requests in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("plan_build_duration_seconds: %w", err)
	}

	if m.CatalogCacheHitsTotal, err = meter.Int64Counter(
		"catalog_cache_hits_total",
		metric.WithDescription("Builder catalog lookups answered from cache"),
		metric.WithUnit("{lookup}"),
	); err != nil {
		return nil, fmt.Errorf("catalog_cache_hits_total: %w", err)
	}

	if m.DbQueryDurationSeconds, err = meter.Float64Histogram(
		"db_query_duration_seconds",
		metric.WithDescription("Duration of database queries in seconds"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("db_query_duration_seconds: %w", err)
	}

	if m.DbQueryErrorsTotal, err = meter.Int64Counter(
		"db_query_errors_total",
		metric.WithDescription("Total number of database query errors"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, fmt.Errorf("db_query_errors_total: %w", err)
	}
	return m, nil
}

// InitAppMetrics initializes the global instruments once, from the global MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		m, err := New(otel.GetMeterProvider().Meter(meterName))
		if err != nil {
			log.Fatalf("Metrics: %v", err)
		}
		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the global instruments. Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}

// Noop returns instruments that record nothing, for tests and tools.
func Noop() *AppMetrics {
	m, err := New(noop.NewMeterProvider().Meter(meterName))
	if err != nil {
		panic(err)
	}
	return m
}
