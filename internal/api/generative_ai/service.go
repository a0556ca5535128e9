package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

var ErrMissingAPIKey = errors.New("gemini api key missing")

type AIClient struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewAIClient creates a Gemini client. An empty model falls back to DefaultModel.
func NewAIClient(ctx context.Context, apiKey, model string, logger *slog.Logger) (*AIClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &AIClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (ai *AIClient) Model() string {
	return ai.model
}

// GenerateContent sends a single prompt and returns the text of the first candidate.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.String("ai.model", ai.model),
		attribute.Int("prompt.length", len(prompt)),
	))
	defer span.End()

	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generate content failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	txt := result.Text()
	span.SetAttributes(attribute.Int("response.length", len(txt)))
	span.SetStatus(codes.Ok, "Content generated")
	ai.logger.DebugContext(ctx, "Gemini content generated", slog.String("model", ai.model), slog.Int("response_length", len(txt)))
	return txt, nil
}
