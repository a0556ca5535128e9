package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/FACorreiaa/locallist-builder/config"
	"github.com/FACorreiaa/locallist-builder/internal/api"
	"github.com/FACorreiaa/locallist-builder/internal/api/auth"
	"github.com/FACorreiaa/locallist-builder/internal/api/builder"
	"github.com/FACorreiaa/locallist-builder/internal/api/places"
	"github.com/FACorreiaa/locallist-builder/internal/api/plans"
)

const (
	defaultRateLimit        = 100
	defaultBuilderRateLimit = 10
)

// Config contains dependencies needed for the router setup
type Config struct {
	BuilderHandler *builder.Handler
	PlacesHandler  *places.Handler
	PlansHandler   *plans.Handler

	JWT                config.JWTConfig
	AllowedOrigins     []string
	RateLimitPerMinute int
	BuilderRateLimit   int
	Version            string
	Logger             *slog.Logger
}

type healthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (request id, logger, recoverer) is applied in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	limit := cfg.RateLimitPerMinute
	if limit <= 0 {
		limit = defaultRateLimit
	}
	r.Use(httprate.LimitByIP(limit, time.Minute))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSONResponse(w, r, http.StatusOK, healthResponse{
			Status:    "ok",
			Version:   cfg.Version,
			Timestamp: time.Now().UTC(),
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	optionalAuth := auth.OptionalAuthenticate(cfg.Logger, cfg.JWT)

	builderLimit := cfg.BuilderRateLimit
	if builderLimit <= 0 {
		builderLimit = defaultBuilderRateLimit
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/builder", func(r chi.Router) {
			r.Use(httprate.LimitByIP(builderLimit, time.Minute))
			r.Use(optionalAuth)
			r.Post("/chat", cfg.BuilderHandler.Chat)
		})

		r.Route("/places", func(r chi.Router) {
			r.Get("/", cfg.PlacesHandler.ListPlaces)
			r.Get("/{id}", cfg.PlacesHandler.GetPlace)
		})

		r.Route("/plans", func(r chi.Router) {
			r.Use(optionalAuth)
			r.Get("/", cfg.PlansHandler.ListPlans)
			r.Get("/{id}", cfg.PlansHandler.GetPlan)
		})
	})

	return r
}
