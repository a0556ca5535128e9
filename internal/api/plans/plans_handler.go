package plans

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/locallist-builder/internal/api"
	"github.com/FACorreiaa/locallist-builder/internal/api/auth"
	"github.com/FACorreiaa/locallist-builder/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewPlansHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// ListPlans godoc
// @Summary      List public plans
// @Description  Anonymous callers and showcase=true only see showcase plans.
// @Tags         plans
// @Produce      json
// @Param        city      query  string  false  "City"
// @Param        type      query  string  false  "Plan type"
// @Param        showcase  query  bool    false  "Showcase plans only"
// @Param        limit     query  int     false  "Page size"  default(50)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200  {object}  types.PlansResponse
// @Security     BearerAuth
// @Router       /plans [get]
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlansHandler").Start(r.Context(), "ListPlans")
	defer span.End()

	q := r.URL.Query()
	filter := types.PlanFilter{
		City:         q.Get("city"),
		Type:         q.Get("type"),
		ShowcaseOnly: api.QueryBool(r, "showcase"),
		Limit:        api.QueryInt(r, "limit", DefaultLimit),
		Offset:       api.QueryInt(r, "offset", 0),
	}

	resp, err := h.service.ListPlans(ctx, filter, auth.UserIDFromContext(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list plans", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}

	span.SetStatus(codes.Ok, "Plans returned")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// GetPlan godoc
// @Summary      Get a plan with its stops grouped by day
// @Tags         plans
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  types.PlanDetail
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /plans/{id} [get]
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlansHandler").Start(r.Context(), "GetPlan")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "Plan not found")
		return
	}

	detail, err := h.service.GetPlan(ctx, id, auth.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			span.SetStatus(codes.Error, "Plan not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "Plan not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to fetch plan", slog.String("planID", id.String()), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve plan")
		return
	}

	span.SetStatus(codes.Ok, "Plan returned")
	api.WriteJSONResponse(w, r, http.StatusOK, detail)
}
