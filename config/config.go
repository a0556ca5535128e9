package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type JWTConfig struct {
	SecretKey string `mapstructure:"secretKey"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

type GeminiConfig struct {
	APIKey          string        `mapstructure:"apiKey"`
	Model           string        `mapstructure:"model"`
	Temperature     float32       `mapstructure:"temperature"`
	MaxOutputTokens int32         `mapstructure:"maxOutputTokens"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type BuilderConfig struct {
	CatalogCacheTTL    time.Duration `mapstructure:"catalogCacheTTL"`
	RateLimitPerMinute int           `mapstructure:"rateLimitPerMinute"`
}

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Repositories struct {
		Postgres struct {
			Host              string `mapstructure:"host"`
			Password          string `mapstructure:"password"`
			Port              string `mapstructure:"port"`
			Username          string `mapstructure:"username"`
			DB                string `mapstructure:"db"`
			SSLMODE           string `mapstructure:"SSLMODE"`
			MAXCONWAITINGTIME int    `mapstructure:"MAXCONWAITINGTIME"`
		} `mapstructure:"postgres"`
	} `mapstructure:"repositories"`
	Server struct {
		HTTPPort           string        `mapstructure:"HTTPPort"`
		Timeout            time.Duration `mapstructure:"HTTPTimeout"`
		RateLimitPerMinute int           `mapstructure:"rateLimitPerMinute"`
		AllowedOrigins     []string      `mapstructure:"allowedOrigins"`
	} `mapstructure:"server"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Builder BuilderConfig `mapstructure:"builder"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Environment overrides, e.g. GEMINI_APIKEY or JWT_SECRETKEY.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("gemini.apiKey", "GOOGLE_GEMINI_API_KEY", "GEMINI_APIKEY")
	_ = v.BindEnv("jwt.secretKey", "JWT_SECRET_KEY", "JWT_SECRETKEY")
	_ = v.BindEnv("repositories.postgres.password", "POSTGRES_PASSWORD")

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&config)
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == "" {
		cfg.Server.HTTPPort = "8000"
	}
	if cfg.Server.Timeout <= 0 {
		cfg.Server.Timeout = 60 * time.Second
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		cfg.Server.RateLimitPerMinute = 100
	}
	if cfg.Builder.CatalogCacheTTL <= 0 {
		cfg.Builder.CatalogCacheTTL = 5 * time.Minute
	}
	if cfg.Builder.RateLimitPerMinute <= 0 {
		cfg.Builder.RateLimitPerMinute = 10
	}
	if cfg.Gemini.Timeout <= 0 {
		cfg.Gemini.Timeout = 10 * time.Second
	}
}
