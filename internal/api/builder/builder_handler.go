package builder

import (
	"log/slog"
	"net/http"
	"strings"

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

func NewBuilderHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Chat godoc
// @Summary      Build a plan from a free-text message
// @Description  Anonymous callers receive an ephemeral plan. Callers with a valid bearer token get the plan stored.
// @Tags         builder
// @Accept       json
// @Produce      json
// @Param        request  body      types.BuilderChatRequest  true  "Message and optional trip context"
// @Success      200      {object}  types.BuilderChatResponse
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Security     BearerAuth
// @Router       /builder/chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BuilderHandler").Start(r.Context(), "Chat")
	defer span.End()

	l := h.logger.With(slog.String("method", "Chat"))

	var req types.BuilderChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid builder request", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		span.SetStatus(codes.Error, "Empty message")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message is required")
		return
	}

	resp, err := h.service.GeneratePlan(ctx, req, auth.UserIDFromContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponseWithDetails(w, r, http.StatusInternalServerError, "Failed to generate plan", err.Error())
		return
	}

	span.SetStatus(codes.Ok, "Plan returned")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
