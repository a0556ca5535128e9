package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/locallist-builder/app/observability/metrics"
)

// InstrumentedDB records query latency and failures for pool-level calls.
// Statements run inside a transaction are not observed.
type InstrumentedDB struct {
	DBTX
	m *metrics.AppMetrics
}

func Instrument(db DBTX, m *metrics.AppMetrics) *InstrumentedDB {
	return &InstrumentedDB{DBTX: db, m: m}
}

func (d *InstrumentedDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := d.DBTX.Exec(ctx, sql, args...)
	d.observe(ctx, "exec", start, err)
	return tag, err
}

func (d *InstrumentedDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := d.DBTX.Query(ctx, sql, args...)
	d.observe(ctx, "query", start, err)
	return rows, err
}

// QueryRow errors only surface at Scan, so only latency is recorded.
func (d *InstrumentedDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	start := time.Now()
	row := d.DBTX.QueryRow(ctx, sql, args...)
	d.observe(ctx, "query_row", start, nil)
	return row
}

func (d *InstrumentedDB) observe(ctx context.Context, op string, start time.Time, err error) {
	attrs := metric.WithAttributes(attribute.String("db.operation", op))
	d.m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		d.m.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}
