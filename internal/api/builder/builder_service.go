package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/locallist-builder/app/observability/metrics"
	"github.com/FACorreiaa/locallist-builder/internal/api/itinerary"
	"github.com/FACorreiaa/locallist-builder/internal/types"
)

const planNamePrefixLen = 60

var ErrEmptyMessage = errors.New("message is required")

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// GeneratePlan turns a message into a scheduled plan. Anonymous callers (nil userID)
	// get an ephemeral plan; identified callers get the plan stored under their id.
	GeneratePlan(ctx context.Context, req types.BuilderChatRequest, userID *uuid.UUID) (*types.BuilderChatResponse, error)
}

// Catalog lists places. Satisfied by places.Repository.
type Catalog interface {
	List(ctx context.Context, filter types.PlaceFilter) ([]types.Place, error)
}

// PlanStore persists generated plans. Satisfied by plans.Repository.
type PlanStore interface {
	CreatePlanWithStops(ctx context.Context, plan types.Plan, stops []types.ScheduledStop) (*types.Plan, error)
}

type ServiceImpl struct {
	logger    *slog.Logger
	extractor itinerary.Extractor
	catalog   Catalog
	store     PlanStore
	scheduler *itinerary.Scheduler
	cache     *cache.Cache
	metrics   *metrics.AppMetrics
	newID     func() uuid.UUID
}

// NewBuilderService wires the builder. A nil catalogCache disables catalog caching.
func NewBuilderService(
	extractor itinerary.Extractor,
	catalog Catalog,
	store PlanStore,
	scheduler *itinerary.Scheduler,
	catalogCache *cache.Cache,
	m *metrics.AppMetrics,
	logger *slog.Logger,
) *ServiceImpl {
	if scheduler == nil {
		scheduler = itinerary.NewScheduler(nil)
	}
	if m == nil {
		m = metrics.Noop()
	}
	return &ServiceImpl{
		logger:    logger,
		extractor: extractor,
		catalog:   catalog,
		store:     store,
		scheduler: scheduler,
		cache:     catalogCache,
		metrics:   m,
		newID:     uuid.New,
	}
}

func (s *ServiceImpl) GeneratePlan(ctx context.Context, req types.BuilderChatRequest, userID *uuid.UUID) (*types.BuilderChatResponse, error) {
	ctx, span := otel.Tracer("BuilderService").Start(ctx, "GeneratePlan", trace.WithAttributes(
		attribute.Bool("caller.anonymous", userID == nil),
		attribute.String("plan.city", req.TripContext.CityOrDefault()),
	))
	defer span.End()

	start := time.Now()
	l := s.logger.With(slog.String("method", "GeneratePlan"))

	resp, err := s.generate(ctx, req, userID)
	persisted := attribute.Bool("persisted", userID != nil)
	s.metrics.PlanBuildDurationSeconds.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(persisted))
	if err != nil {
		l.ErrorContext(ctx, "Plan generation failed", slog.Any("error", err))
		s.metrics.PlanFailuresTotal.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Plan generation failed")
		return nil, err
	}

	s.metrics.PlansGeneratedTotal.Add(ctx, 1, metric.WithAttributes(persisted))
	s.metrics.StopsScheduledTotal.Add(ctx, int64(len(resp.Stops)))
	l.InfoContext(ctx, "Plan generated",
		slog.String("planID", resp.Plan.ID.String()),
		slog.Int("days", resp.Plan.DurationDays),
		slog.Int("stops", len(resp.Stops)),
		slog.Bool("ephemeral", resp.Plan.IsEphemeral),
	)
	span.SetAttributes(attribute.Int("plan.stops", len(resp.Stops)))
	span.SetStatus(codes.Ok, "Plan generated")
	return resp, nil
}

func (s *ServiceImpl) generate(ctx context.Context, req types.BuilderChatRequest, userID *uuid.UUID) (*types.BuilderChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}
	city := req.TripContext.CityOrDefault()

	var (
		prefs   types.Preferences
		catalog []types.Place
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		prefs = s.extractor.Extract(gctx, req.Message, req.TripContext)
		return nil
	})
	g.Go(func() error {
		var err error
		catalog, err = s.publishedPlaces(gctx, city)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := itinerary.FilterCandidates(catalog, prefs)
	scheduled := s.scheduler.Build(candidates, prefs)
	stops := itinerary.ResolveStops(scheduled, candidates, s.newID)

	summary := types.PlanSummary{
		Name:         planName(prefs, req.Message),
		City:         city,
		Type:         types.PlanTypeAI,
		Description:  "AI-generated plan: " + req.Message,
		DurationDays: prefs.Days,
		TripContext:  req.TripContext,
		IsPublic:     false,
	}

	if userID == nil {
		summary.ID = s.newID()
		summary.IsEphemeral = true
	} else {
		stored, err := s.persist(ctx, summary, scheduled, *userID)
		if err != nil {
			return nil, err
		}
		summary.ID = stored.ID
		summary.CreatedByID = stored.CreatedByID
		summary.CreatedAt = &stored.CreatedAt
	}

	return &types.BuilderChatResponse{
		Plan:    summary,
		Stops:   stops,
		Message: fmt.Sprintf("Created a %d-day plan with %d stops!", prefs.Days, len(scheduled)),
	}, nil
}

// publishedPlaces returns the published catalog of a city, cached per city.
func (s *ServiceImpl) publishedPlaces(ctx context.Context, city string) ([]types.Place, error) {
	key := "catalog:" + strings.ToLower(city)
	if s.cache != nil {
		if cached, found := s.cache.Get(key); found {
			if places, ok := cached.([]types.Place); ok {
				s.metrics.CatalogCacheHitsTotal.Add(ctx, 1)
				return places, nil
			}
		}
	}

	places, err := s.catalog.List(ctx, types.PlaceFilter{City: city, Status: types.PlaceStatusPublished})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog for %s: %w", city, err)
	}
	if s.cache != nil {
		s.cache.Set(key, places, cache.DefaultExpiration)
	}
	return places, nil
}

func (s *ServiceImpl) persist(ctx context.Context, summary types.PlanSummary, stops []types.ScheduledStop, userID uuid.UUID) (*types.Plan, error) {
	tripContext := json.RawMessage(`{}`)
	if summary.TripContext != nil {
		raw, err := json.Marshal(summary.TripContext)
		if err != nil {
			return nil, fmt.Errorf("failed to encode trip context: %w", err)
		}
		tripContext = raw
	}

	stored, err := s.store.CreatePlanWithStops(ctx, types.Plan{
		Name:         summary.Name,
		City:         summary.City,
		Type:         summary.Type,
		Description:  summary.Description,
		DurationDays: summary.DurationDays,
		TripContext:  tripContext,
		IsPublic:     summary.IsPublic,
		CreatedByID:  &userID,
	}, stops)
	if err != nil {
		return nil, fmt.Errorf("failed to store plan: %w", err)
	}
	return stored, nil
}

func planName(prefs types.Preferences, message string) string {
	if prefs.PlanName != "" {
		return prefs.PlanName
	}
	runes := []rune(message)
	if len(runes) > planNamePrefixLen {
		runes = runes[:planNamePrefixLen]
	}
	return string(runes) + " Plan"
}
