package places

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	ListPlaces(ctx context.Context, filter types.PlaceFilter) (*types.PlacesResponse, error)
	GetPlace(ctx context.Context, id uuid.UUID) (*types.Place, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewPlacesService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// ListPlaces applies the listing defaults: published places, 50 per page.
// Total is the size of the returned page.
func (s *ServiceImpl) ListPlaces(ctx context.Context, filter types.PlaceFilter) (*types.PlacesResponse, error) {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "ListPlaces")
	defer span.End()

	if filter.Status == "" {
		filter.Status = types.PlaceStatusPublished
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

	places, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list places")
		return nil, fmt.Errorf("error listing places: %w", err)
	}

	span.SetStatus(codes.Ok, "Places listed")
	return &types.PlacesResponse{Places: places, Total: len(places)}, nil
}

func (s *ServiceImpl) GetPlace(ctx context.Context, id uuid.UUID) (*types.Place, error) {
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "GetPlace")
	defer span.End()

	place, err := s.repo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch place")
		return nil, fmt.Errorf("error fetching place: %w", err)
	}
	span.SetStatus(codes.Ok, "Place fetched")
	return place, nil
}
