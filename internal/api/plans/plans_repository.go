package plans

import (
	"context"
	"encoding/json"
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
	"github.com/FACorreiaa/locallist-builder/internal/api/places"
	"github.com/FACorreiaa/locallist-builder/internal/types"
)

var _ Repository = (*PostgresPlansRepo)(nil)

type Repository interface {
	// List returns public plans ordered by creation time.
	List(ctx context.Context, filter types.PlanFilter) ([]types.Plan, error)
	// GetByID returns types.ErrNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*types.Plan, error)
	// ListStops returns the stops of a plan joined to their places, ordered by day then order index.
	ListStops(ctx context.Context, planID uuid.UUID) ([]types.PlanStop, error)
	// CreatePlanWithStops stores the plan and its stops in one transaction and
	// returns the plan with its generated id and timestamps.
	CreatePlanWithStops(ctx context.Context, plan types.Plan, stops []types.ScheduledStop) (*types.Plan, error)
}

const planColumns = `
	id, name, city, type, COALESCE(description, ''), COALESCE(image_url, ''), duration_days,
	trip_context, is_public, is_showcase, created_by, created_at, updated_at`

type PostgresPlansRepo struct {
	logger *slog.Logger
	db     database.DBTX
}

func NewPostgresPlansRepo(db database.DBTX, logger *slog.Logger) *PostgresPlansRepo {
	return &PostgresPlansRepo{
		logger: logger,
		db:     db,
	}
}

func scanPlan(row pgx.Row) (types.Plan, error) {
	var p types.Plan
	var tripContext []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.City, &p.Type, &p.Description, &p.ImageURL, &p.DurationDays,
		&tripContext, &p.IsPublic, &p.IsShowcase, &p.CreatedByID, &p.CreatedAt, &p.UpdatedAt,
	)
	if len(tripContext) > 0 {
		p.TripContext = json.RawMessage(tripContext)
	}
	return p, err
}

func buildListQuery(filter types.PlanFilter) (string, []any) {
	conditions := []string{"is_public = TRUE"}
	var args []any

	if filter.City != "" {
		args = append(args, filter.City)
		conditions = append(conditions, fmt.Sprintf("city = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.ShowcaseOnly {
		conditions = append(conditions, "is_showcase = TRUE")
	}

	var sb strings.Builder
	sb.WriteString("SELECT")
	sb.WriteString(planColumns)
	sb.WriteString("\n\tFROM plans\n\tWHERE ")
	sb.WriteString(strings.Join(conditions, " AND "))
	sb.WriteString("\n\tORDER BY created_at")
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

func (r *PostgresPlansRepo) List(ctx context.Context, filter types.PlanFilter) ([]types.Plan, error) {
	ctx, span := otel.Tracer("PlansRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "plans"),
		attribute.Bool("filter.showcase_only", filter.ShowcaseOnly),
	))
	defer span.End()

	query, args := buildListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query plans", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := make([]types.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating plan rows: %w", err)
	}

	span.SetStatus(codes.Ok, "Plans fetched")
	return plans, nil
}

func (r *PostgresPlansRepo) GetByID(ctx context.Context, id uuid.UUID) (*types.Plan, error) {
	ctx, span := otel.Tracer("PlansRepo").Start(ctx, "GetByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "plans"),
		attribute.String("plan.id", id.String()),
	))
	defer span.End()

	query := "SELECT" + planColumns + "\n\tFROM plans\n\tWHERE id = $1"
	p, err := scanPlan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "Plan not found")
			return nil, fmt.Errorf("plan %s: %w", id, types.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	span.SetStatus(codes.Ok, "Plan fetched")
	return &p, nil
}

func (r *PostgresPlansRepo) ListStops(ctx context.Context, planID uuid.UUID) ([]types.PlanStop, error) {
	ctx, span := otel.Tracer("PlansRepo").Start(ctx, "ListStops", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "plan_stops"),
		attribute.String("plan.id", planID.String()),
	))
	defer span.End()

	query := `
		SELECT ps.id, ps.day_number, ps.order_index, COALESCE(ps.time_block, ''),
		       COALESCE(ps.suggested_arrival, ''), ps.suggested_duration_min, ps.travel_from_previous,` +
		places.SelectColumns + `
		FROM plan_stops ps
		JOIN places p ON p.id = ps.place_id
		WHERE ps.plan_id = $1
		ORDER BY ps.day_number, ps.order_index`

	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("failed to query plan stops: %w", err)
	}
	defer rows.Close()

	stops := make([]types.PlanStop, 0)
	for rows.Next() {
		var s types.PlanStop
		var travel []byte
		place := &types.Place{}
		dest := append([]any{
			&s.ID, &s.DayNumber, &s.OrderIndex, &s.TimeBlock,
			&s.SuggestedArrival, &s.SuggestedDurationMin, &travel,
		}, places.ScanDest(place)...)
		if err := rows.Scan(dest...); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan plan stop row: %w", err)
		}
		if len(travel) > 0 {
			var seg types.TravelSegment
			if err := json.Unmarshal(travel, &seg); err != nil {
				return nil, fmt.Errorf("failed to decode travel segment of stop %s: %w", s.ID, err)
			}
			s.TravelFromPrevious = &seg
		}
		s.Place = place
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating plan stop rows: %w", err)
	}

	span.SetStatus(codes.Ok, "Plan stops fetched")
	return stops, nil
}

func (r *PostgresPlansRepo) CreatePlanWithStops(ctx context.Context, plan types.Plan, stops []types.ScheduledStop) (*types.Plan, error) {
	ctx, span := otel.Tracer("PlansRepo").Start(ctx, "CreatePlanWithStops", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "plans"),
		attribute.Int("plan.stops", len(stops)),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "CreatePlanWithStops"))

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Begin failed")
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var tripContext []byte
	if len(plan.TripContext) > 0 {
		tripContext = plan.TripContext
	}

	insertPlan := `
		INSERT INTO plans (name, city, type, description, duration_days, trip_context, is_public, is_showcase, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	if err = tx.QueryRow(ctx, insertPlan,
		plan.Name, plan.City, plan.Type, plan.Description, plan.DurationDays,
		tripContext, plan.IsPublic, plan.IsShowcase, plan.CreatedByID,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		l.ErrorContext(ctx, "Failed to insert plan", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Insert plan failed")
		return nil, fmt.Errorf("failed to insert plan: %w", err)
	}

	insertStop := `
		INSERT INTO plan_stops (plan_id, place_id, day_number, order_index, time_block,
		                        suggested_arrival, suggested_duration_min, travel_from_previous)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, s := range stops {
		var travel []byte
		if s.TravelFromPrevious != nil {
			if travel, err = json.Marshal(s.TravelFromPrevious); err != nil {
				return nil, fmt.Errorf("failed to encode travel segment: %w", err)
			}
		}
		if _, err = tx.Exec(ctx, insertStop,
			plan.ID, s.PlaceID, s.DayNumber, s.OrderIndex, s.TimeBlock,
			s.SuggestedArrival, s.SuggestedDurationMin, travel,
		); err != nil {
			l.ErrorContext(ctx, "Failed to insert plan stop", slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "Insert stop failed")
			return nil, fmt.Errorf("failed to insert plan stop: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Commit failed")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	l.InfoContext(ctx, "Plan stored", slog.String("planID", plan.ID.String()), slog.Int("stops", len(stops)))
	span.SetStatus(codes.Ok, "Plan stored")
	return &plan, nil
}
