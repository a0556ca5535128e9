//go:build integration

package generativeAI

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestMain(m *testing.M) {
	if os.Getenv("GOOGLE_GEMINI_API_KEY") == "" {
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func TestNewAIClient(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := NewAIClient(ctx, "", "", slog.Default())
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("default model", func(t *testing.T) {
		client, err := NewAIClient(ctx, os.Getenv("GOOGLE_GEMINI_API_KEY"), "", slog.Default())
		require.NoError(t, err)
		assert.Equal(t, DefaultModel, client.Model())
	})
}

func TestAIClient_GenerateContent_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := NewAIClient(ctx, os.Getenv("GOOGLE_GEMINI_API_KEY"), "", slog.Default())
	require.NoError(t, err)

	t.Run("JSON preference shape", func(t *testing.T) {
		config := &genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](0.1),
			ResponseMIMEType: "application/json",
		}
		response, err := client.GenerateContent(ctx, `Return {"days": 2} as JSON.`, config)
		require.NoError(t, err)
		assert.True(t, strings.Contains(response, "days"))
	})
}
