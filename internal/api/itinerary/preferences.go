package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/locallist-builder/internal/types"
)

const planNameMaxLen = 60

var ErrNoGenerator = errors.New("ai content generator not configured")

// Extractor turns a free-text request into a normalized preference record.
// Implementations never fail; the returned record is always within bounds.
type Extractor interface {
	Extract(ctx context.Context, message string, tripContext *types.TripContext) types.Preferences
}

// PreferenceSource is a strategy that may fail.
type PreferenceSource interface {
	ExtractPreferences(ctx context.Context, message string, tripContext *types.TripContext) (types.Preferences, error)
}

// ContentGenerator is the text-completion contract of the AI collaborator.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

type AIExtractorConfig struct {
	Timeout         time.Duration
	Temperature     float32
	MaxOutputTokens int32
}

// AIExtractor asks the generative model for the preference record.
type AIExtractor struct {
	generator ContentGenerator
	cfg       AIExtractorConfig
	logger    *slog.Logger
}

func NewAIExtractor(generator ContentGenerator, cfg AIExtractorConfig, logger *slog.Logger) *AIExtractor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.3
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 300
	}
	return &AIExtractor{generator: generator, cfg: cfg, logger: logger}
}

func (e *AIExtractor) ExtractPreferences(ctx context.Context, message string, tripContext *types.TripContext) (types.Preferences, error) {
	if e.generator == nil {
		return types.Preferences{}, ErrNoGenerator
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	prompt := getPreferencesPrompt(message, tripContext)
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](e.cfg.Temperature),
		MaxOutputTokens:  e.cfg.MaxOutputTokens,
		ResponseMIMEType: "application/json",
	}

	txt, err := e.generator.GenerateContent(ctx, prompt, config)
	if err != nil {
		return types.Preferences{}, fmt.Errorf("failed to generate preferences: %w", err)
	}
	if strings.TrimSpace(txt) == "" {
		e.logger.WarnContext(ctx, "AI returned an empty preferences response, using defaults")
		return types.DefaultPreferences().Normalize(), nil
	}
	e.logger.DebugContext(ctx, "AI preferences response received", slog.Int("response.length", len(txt)))

	// A reply that arrived but cannot be read yields the default record, not the keyword path.
	prefs, err := parsePreferences(txt)
	if err != nil {
		e.logger.WarnContext(ctx, "Failed to parse AI preferences, using defaults", slog.Any("error", err))
		return types.DefaultPreferences().Normalize(), nil
	}
	return prefs, nil
}

// aiPreferences mirrors the requested JSON shape. Numbers are decoded as floats so
// "2.0" style answers are accepted.
type aiPreferences struct {
	Days           *float64 `json:"days"`
	Categories     []string `json:"categories"`
	Vibes          []string `json:"vibes"`
	GroupType      *string  `json:"groupType"`
	PlanName       *string  `json:"planName"`
	MaxStopsPerDay *float64 `json:"maxStopsPerDay"`
}

func parsePreferences(raw string) (types.Preferences, error) {
	var parsed aiPreferences
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &parsed); err != nil {
		return types.Preferences{}, fmt.Errorf("failed to parse preferences JSON: %w", err)
	}

	prefs := types.DefaultPreferences()
	if parsed.Days != nil {
		prefs.Days = int(math.Round(*parsed.Days))
	}
	if parsed.MaxStopsPerDay != nil {
		prefs.MaxStopsPerDay = int(math.Round(*parsed.MaxStopsPerDay))
	}
	if parsed.Categories != nil {
		prefs.Categories = parsed.Categories
	}
	if parsed.Vibes != nil {
		prefs.Vibes = parsed.Vibes
	}
	if parsed.GroupType != nil {
		prefs.GroupType = *parsed.GroupType
	}
	if parsed.PlanName != nil {
		prefs.PlanName = *parsed.PlanName
	}
	return prefs.Normalize(), nil
}

// keywordRule maps message substrings to a category.
type keywordRule struct {
	category string
	keywords []string
}

var keywordRules = []keywordRule{
	{category: "food", keywords: []string{"food", "eat", "restaurant"}},
	{category: "nightlife", keywords: []string{"night", "bar", "club"}},
	{category: "coffee", keywords: []string{"coffee", "cafe", "breakfast"}},
}

var defaultFallbackCategories = []string{"food", "outdoors", "culture"}

// KeywordExtractor derives preferences from the message text alone.
type KeywordExtractor struct{}

func (KeywordExtractor) Extract(_ context.Context, message string, tripContext *types.TripContext) types.Preferences {
	return ExtractWithKeywords(message, tripContext)
}

// ExtractWithKeywords is the deterministic fallback used when the AI is unavailable.
func ExtractWithKeywords(message string, tripContext *types.TripContext) types.Preferences {
	lower := strings.ToLower(message)

	var cats []string
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				cats = append(cats, rule.category)
				break
			}
		}
	}
	if len(cats) == 0 {
		cats = append(cats, defaultFallbackCategories...)
	}

	prefs := types.Preferences{
		Days:           1,
		Categories:     cats,
		Vibes:          []string{},
		GroupType:      types.DefaultGroupType,
		PlanName:       truncateRunes(message, planNameMaxLen),
		MaxStopsPerDay: types.DefaultStopsPerDay,
	}
	if strings.Contains(lower, "weekend") {
		prefs.Days = 2
	}

	if tripContext != nil {
		if tripContext.Days != nil {
			prefs.Days = *tripContext.Days
		}
		switch {
		case tripContext.Vibes != nil:
			prefs.Vibes = tripContext.Vibes
		case tripContext.Preferences != nil:
			prefs.Vibes = tripContext.Preferences
		}
		if tripContext.GroupType != nil {
			prefs.GroupType = *tripContext.GroupType
			if *tripContext.GroupType == "family-kids" {
				prefs.MaxStopsPerDay = 3
			}
		}
	}
	return prefs.Normalize()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// FallbackExtractor tries the primary source and falls back to keyword heuristics on
// any failure, including a panic inside the primary.
type FallbackExtractor struct {
	primary   PreferenceSource
	logger    *slog.Logger
	fallbacks metric.Int64Counter
}

func NewFallbackExtractor(primary PreferenceSource, logger *slog.Logger, fallbacks metric.Int64Counter) *FallbackExtractor {
	return &FallbackExtractor{primary: primary, logger: logger, fallbacks: fallbacks}
}

func (f *FallbackExtractor) Extract(ctx context.Context, message string, tripContext *types.TripContext) types.Preferences {
	ctx, span := otel.Tracer("ItineraryExtractor").Start(ctx, "ExtractPreferences", trace.WithAttributes(
		attribute.Int("message.length", len(message)),
	))
	defer span.End()

	prefs, err := f.tryPrimary(ctx, message, tripContext)
	if err == nil {
		span.SetAttributes(attribute.String("extraction.source", "ai"))
		span.SetStatus(codes.Ok, "Preferences extracted")
		return prefs.Normalize()
	}

	f.logger.ErrorContext(ctx, "AI extraction failed, falling back to keywords", slog.Any("error", err))
	span.RecordError(err)
	span.SetAttributes(attribute.String("extraction.source", "keywords"))
	if f.fallbacks != nil {
		f.fallbacks.Add(ctx, 1)
	}
	return ExtractWithKeywords(message, tripContext)
}

func (f *FallbackExtractor) tryPrimary(ctx context.Context, message string, tripContext *types.TripContext) (prefs types.Preferences, err error) {
	if f.primary == nil {
		return types.Preferences{}, ErrNoGenerator
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("preference extraction panicked: %v", r)
		}
	}()
	return f.primary.ExtractPreferences(ctx, message, tripContext)
}
