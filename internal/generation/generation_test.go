package generation_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/loom/internal/generation"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"auth rejected", generation.ErrAuthRejected, http.StatusUnauthorized},
		{"rate limited", generation.ErrRateLimited, http.StatusTooManyRequests},
		{"content filtered", generation.ErrContentFiltered, http.StatusBadRequest},
		{"empty response", generation.ErrEmptyResponse, http.StatusInternalServerError},
		{"missing config", generation.ErrMissingConfig, http.StatusInternalServerError},
		{"backend failure", generation.ErrBackend, http.StatusInternalServerError},
		{"wrapped auth", fmt.Errorf("step 2: %w", generation.ErrAuthRejected), http.StatusUnauthorized},
		{"wrapped rate limit", fmt.Errorf("step 3: %w", generation.ErrRateLimited), http.StatusTooManyRequests},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generation.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestCompleteMissingConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  gaconfig.AgentConfig
	}{
		{"zero config", gaconfig.AgentConfig{}},
		{"provider without name", gaconfig.AgentConfig{
			Provider: &gaconfig.ProviderConfig{},
			Model:    &gaconfig.ModelConfig{Name: "model"},
		}},
		{"model without name", gaconfig.AgentConfig{
			Provider: &gaconfig.ProviderConfig{Name: "openai"},
			Model:    &gaconfig.ModelConfig{},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := generation.New(tt.cfg, discard())

			_, err := provider.Complete(context.Background(), "hello")
			if !errors.Is(err, generation.ErrMissingConfig) {
				t.Errorf("Complete error = %v, want ErrMissingConfig", err)
			}
		})
	}
}

func TestHealthCheckMissingConfig(t *testing.T) {
	provider := generation.New(gaconfig.AgentConfig{}, discard())

	if provider.HealthCheck(context.Background()) {
		t.Error("HealthCheck should report false without configuration")
	}
}
