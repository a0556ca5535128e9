package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Embedded(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.HTTPPort)
	assert.Equal(t, 5*time.Minute, cfg.Builder.CatalogCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int32(300), cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, "locallist-api", cfg.JWT.Issuer)
	assert.Equal(t, "localhost", cfg.Repositories.Postgres.Host)
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:8081")
}

func TestInitConfig_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GOOGLE_GEMINI_API_KEY", "test-key")
	t.Setenv("JWT_SECRET_KEY", "shh")

	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "shh", cfg.JWT.SecretKey)
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)
	assert.Equal(t, "8000", cfg.Server.HTTPPort)
	assert.Equal(t, 100, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, 10, cfg.Builder.RateLimitPerMinute)
}
