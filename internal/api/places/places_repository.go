package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/FACorreiaa/locallist-builder/app/db"
	"github.com/FACorreiaa/locallist-builder/internal/types"
)

var _ Repository = (*PostgresPlacesRepo)(nil)

type Repository interface {
	// List returns places matching the filter ordered by name. A zero Limit means no limit.
	List(ctx context.Context, filter types.PlaceFilter) ([]types.Place, error)
	// GetByID returns types.ErrNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*types.Place, error)
}

// SelectColumns is the canonical place projection, shared with the plan stop join.
const SelectColumns = `
	p.id, p.name, p.category, COALESCE(p.subcategory, ''), COALESCE(p.neighborhood, ''), p.city,
	p.latitude, p.longitude, p.why_this_place, p.best_for, p.suitable_for,
	COALESCE(p.best_time, ''), COALESCE(p.price_range, ''), p.photos,
	COALESCE(p.google_place_id, ''), p.google_rating, p.google_review_count,
	p.source, p.status, p.created_at, p.updated_at`

// ScanDest returns the scan targets matching SelectColumns.
func ScanDest(p *types.Place) []any {
	return []any{
		&p.ID, &p.Name, &p.Category, &p.Subcategory, &p.Neighborhood, &p.City,
		&p.Latitude, &p.Longitude, &p.WhyThisPlace, &p.BestFor, &p.SuitableFor,
		&p.BestTime, &p.PriceRange, &p.Photos,
		&p.GooglePlaceID, &p.GoogleRating, &p.GoogleReviewCount,
		&p.Source, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	}
}

type PostgresPlacesRepo struct {
	logger *slog.Logger
	db     database.DBTX
}

func NewPostgresPlacesRepo(db database.DBTX, logger *slog.Logger) *PostgresPlacesRepo {
	return &PostgresPlacesRepo{
		logger: logger,
		db:     db,
	}
}

func buildListQuery(filter types.PlaceFilter) (string, []any) {
	status := filter.Status
	if status == "" {
		status = types.PlaceStatusPublished
	}
	conditions := []string{"p.status = $1"}
	args := []any{status}

	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("p.city", filter.City)
	add("p.category", filter.Category)
	add("p.neighborhood", filter.Neighborhood)

	var sb strings.Builder
	sb.WriteString("SELECT")
	sb.WriteString(SelectColumns)
	sb.WriteString("\n\tFROM places p\n\tWHERE ")
	sb.WriteString(strings.Join(conditions, " AND "))
	sb.WriteString("\n\tORDER BY p.name")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return sb.String(), args
}

func (r *PostgresPlacesRepo) List(ctx context.Context, filter types.PlaceFilter) ([]types.Place, error) {
	ctx, span := otel.Tracer("PlacesRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "places"),
		attribute.String("filter.city", filter.City),
		attribute.String("filter.category", filter.Category),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	query, args := buildListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query places", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	places := make([]types.Place, 0)
	for rows.Next() {
		var p types.Place
		if err := rows.Scan(ScanDest(&p)...); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Row scan failed")
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Rows iteration failed")
		return nil, fmt.Errorf("error iterating place rows: %w", err)
	}

	l.DebugContext(ctx, "Places fetched", slog.Int("count", len(places)))
	span.SetStatus(codes.Ok, "Places fetched")
	return places, nil
}

func (r *PostgresPlacesRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Place, error) {
	ctx, span := otel.Tracer("PlacesRepo").Start(ctx, "GetByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "places"),
		attribute.String("place.id", id.String()),
	))
	defer span.End()

	query := "SELECT" + SelectColumns + "\n\tFROM places p\n\tWHERE p.id = $1"

	var p types.Place
	if err := r.db.QueryRow(ctx, query, id).Scan(ScanDest(&p)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Place not found")
			return nil, fmt.Errorf("place %s: %w", id, types.ErrNotFound)
		}
		r.logger.ErrorContext(ctx, "Failed to fetch place", slog.String("placeID", id.String()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to fetch place: %w", err)
	}

	span.SetStatus(codes.Ok, "Place fetched")
	return &p, nil
}
