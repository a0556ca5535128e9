package places

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/locallist-builder/internal/api"
	"github.com/FACorreiaa/locallist-builder/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewPlacesHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// ListPlaces godoc
// @Summary      List catalog places
// @Tags         places
// @Produce      json
// @Param        city          query  string  false  "City"
// @Param        category      query  string  false  "Category"
// @Param        neighborhood  query  string  false  "Neighborhood"
// @Param        status        query  string  false  "Status"  default(published)
// @Param        limit         query  int     false  "Page size"  default(50)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  types.PlacesResponse
// @Router       /places [get]
func (h *Handler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlacesHandler").Start(r.Context(), "ListPlaces")
	defer span.End()

	l := h.logger.With(slog.String("method", "ListPlaces"))

	q := r.URL.Query()
	filter := types.PlaceFilter{
		City:         q.Get("city"),
		Category:     q.Get("category"),
		Neighborhood: q.Get("neighborhood"),
		Status:       q.Get("status"),
		Limit:        api.QueryInt(r, "limit", DefaultLimit),
		Offset:       api.QueryInt(r, "offset", 0),
	}

	resp, err := h.service.ListPlaces(ctx, filter)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list places", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve places")
		return
	}

	span.SetStatus(codes.Ok, "Places returned")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// GetPlace godoc
// @Summary      Get one place
// @Tags         places
// @Produce      json
// @Param        id   path      string  true  "Place ID"
// @Success      200  {object}  types.Place
// @Failure      404  {object}  map[string]string
// @Router       /places/{id} [get]
func (h *Handler) GetPlace(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlacesHandler").Start(r.Context(), "GetPlace")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// Unparseable ids cannot exist.
		api.ErrorResponse(w, r, http.StatusNotFound, "Place not found")
		return
	}

	place, err := h.service.GetPlace(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			span.SetStatus(codes.Error, "Place not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "Place not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to fetch place", slog.String("placeID", id.String()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve place")
		return
	}

	span.SetStatus(codes.Ok, "Place returned")
	api.WriteJSONResponse(w, r, http.StatusOK, place)
}
