package plans

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// ListPlans returns public plans. Anonymous callers only ever see showcase plans.
	ListPlans(ctx context.Context, filter types.PlanFilter, userID *uuid.UUID) (*types.PlansResponse, error)
	// GetPlan returns a plan with its stops grouped by day. Private plans are only
	// visible to their creator; anyone else gets types.ErrNotFound.
	GetPlan(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*types.PlanDetail, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewPlansService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) ListPlans(ctx context.Context, filter types.PlanFilter, userID *uuid.UUID) (*types.PlansResponse, error) {
	ctx, span := otel.Tracer("PlansService").Start(ctx, "ListPlans", trace.WithAttributes(
		attribute.Bool("caller.anonymous", userID == nil),
	))
	defer span.End()

	if userID == nil {
		filter.ShowcaseOnly = true
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	plans, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list plans")
		return nil, fmt.Errorf("error listing plans: %w", err)
	}
	span.SetStatus(codes.Ok, "Plans listed")
	return &types.PlansResponse{Plans: plans, Total: len(plans)}, nil
}

func (s *ServiceImpl) GetPlan(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*types.PlanDetail, error) {
	ctx, span := otel.Tracer("PlansService").Start(ctx, "GetPlan", trace.WithAttributes(
		attribute.String("plan.id", id.String()),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GetPlan"), slog.String("planID", id.String()))

	plan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch plan")
		return nil, fmt.Errorf("error fetching plan: %w", err)
	}
	if !canView(plan, userID) {
		l.DebugContext(ctx, "Hiding private plan from non-owner")
		span.SetStatus(codes.Error, "Plan not visible")
		return nil, fmt.Errorf("plan %s: %w", id, types.ErrNotFound)
	}

	stops, err := s.repo.ListStops(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch plan stops")
		return nil, fmt.Errorf("error fetching plan stops: %w", err)
	}

	span.SetStatus(codes.Ok, "Plan fetched")
	return &types.PlanDetail{Plan: *plan, Days: GroupStopsByDay(stops)}, nil
}

func canView(plan *types.Plan, userID *uuid.UUID) bool {
	if plan.IsPublic {
		return true
	}
	return userID != nil && plan.CreatedByID != nil && *plan.CreatedByID == *userID
}

// GroupStopsByDay orders stops by day then order index and groups them per day.
func GroupStopsByDay(stops []types.PlanStop) []types.PlanDay {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b types.PlanStop) int {
		if a.DayNumber != b.DayNumber {
			return a.DayNumber - b.DayNumber
		}
		return a.OrderIndex - b.OrderIndex
	})

	byDay := lo.GroupBy(sorted, func(s types.PlanStop) int { return s.DayNumber })
	dayNumbers := lo.Keys(byDay)
	slices.Sort(dayNumbers)

	return lo.Map(dayNumbers, func(day int, _ int) types.PlanDay {
		return types.PlanDay{DayNumber: day, Stops: byDay[day]}
	})
}
