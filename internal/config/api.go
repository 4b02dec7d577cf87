package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/loom/pkg/formatting"
	"github.com/JaimeStill/loom/pkg/middleware"
	"github.com/JaimeStill/loom/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "LOOM_CORS_ENABLED",
	Origins:          "LOOM_CORS_ORIGINS",
	AllowedMethods:   "LOOM_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "LOOM_CORS_ALLOWED_HEADERS",
	AllowCredentials: "LOOM_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "LOOM_CORS_MAX_AGE",
}

var rateLimitEnv = &middleware.RateLimitEnv{
	Enabled: "LOOM_RATE_LIMIT_ENABLED",
	RPS:     "LOOM_RATE_LIMIT_RPS",
	Burst:   "LOOM_RATE_LIMIT_BURST",
}

var historyEnv = &pagination.ConfigEnv{
	DefaultLimit: "LOOM_HISTORY_DEFAULT_LIMIT",
	MaxLimit:     "LOOM_HISTORY_MAX_LIMIT",
}

// APIConfig holds API routing, CORS, rate limiting, and run history settings.
type APIConfig struct {
	BasePath       string                     `toml:"base_path"`
	MaxRequestSize string                     `toml:"max_request_size"`
	CORS           middleware.CORSConfig      `toml:"cors"`
	RateLimit      middleware.RateLimitConfig `toml:"rate_limit"`
	History        pagination.Config          `toml:"history"`
}

func (c *APIConfig) MaxRequestSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestSize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS, rate limit, and history configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.RateLimit.Finalize(rateLimitEnv); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.History.Finalize(historyEnv); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestSize != "" {
		c.MaxRequestSize = overlay.MaxRequestSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.RateLimit.Merge(&overlay.RateLimit)
	c.History.Merge(&overlay.History)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestSize == "" {
		c.MaxRequestSize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("LOOM_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("LOOM_API_MAX_REQUEST_SIZE"); v != "" {
		c.MaxRequestSize = v
	}
}
