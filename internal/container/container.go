package container

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"

	database "github.com/FACorreiaa/locallist-builder/app/db"
	"github.com/FACorreiaa/locallist-builder/app/observability/metrics"
	"github.com/FACorreiaa/locallist-builder/config"
	"github.com/FACorreiaa/locallist-builder/internal/api/builder"
	generativeAI "github.com/FACorreiaa/locallist-builder/internal/api/generative_ai"
	"github.com/FACorreiaa/locallist-builder/internal/api/itinerary"
	"github.com/FACorreiaa/locallist-builder/internal/api/places"
	"github.com/FACorreiaa/locallist-builder/internal/api/plans"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *slog.Logger
	Pool           *pgxpool.Pool
	BuilderHandler *builder.Handler
	PlacesHandler  *places.Handler
	PlansHandler   *plans.Handler
}

// NewContainer initializes and returns a new dependency container.
// A missing Gemini key is not fatal: every extraction then takes the keyword path.
func NewContainer(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Container, error) {
	m := metrics.Get()
	db := database.Instrument(pool, m)

	placesRepo := places.NewPostgresPlacesRepo(db, logger)
	placesService := places.NewPlacesService(placesRepo, logger)
	placesHandler := places.NewPlacesHandler(placesService, logger)

	plansRepo := plans.NewPostgresPlansRepo(db, logger)
	plansService := plans.NewPlansService(plansRepo, logger)
	plansHandler := plans.NewPlansHandler(plansService, logger)

	var primary itinerary.PreferenceSource
	if cfg.Gemini.APIKey != "" {
		aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", slog.Any("error", err))
			return nil, err
		}
		primary = itinerary.NewAIExtractor(aiClient, itinerary.AIExtractorConfig{
			Timeout:         cfg.Gemini.Timeout,
			Temperature:     cfg.Gemini.Temperature,
			MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		}, logger)
	} else {
		logger.Warn("Gemini API key not set, preference extraction will use keywords only")
	}
	extractor := itinerary.NewFallbackExtractor(primary, logger, m.ExtractionFallbacksTotal)

	catalogCache := cache.New(cfg.Builder.CatalogCacheTTL, 2*cfg.Builder.CatalogCacheTTL)
	builderService := builder.NewBuilderService(extractor, placesRepo, plansRepo, itinerary.NewScheduler(nil), catalogCache, m, logger)
	builderHandler := builder.NewBuilderHandler(builderService, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		Pool:           pool,
		BuilderHandler: builderHandler,
		PlacesHandler:  placesHandler,
		PlansHandler:   plansHandler,
	}, nil
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}
