package config_test

import (
	"testing"

	"github.com/JaimeStill/loom/internal/config"
)

func TestServerConfigFinalize(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg config.ServerConfig
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize error: %v", err)
		}
		if cfg.Addr() != "0.0.0.0:8080" {
			t.Errorf("addr = %q, want 0.0.0.0:8080", cfg.Addr())
		}
		if cfg.ReadTimeoutDuration() == 0 {
			t.Error("read timeout should have a default")
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv(config.EnvServerHost, "127.0.0.1")
		t.Setenv(config.EnvServerPort, "9090")

		var cfg config.ServerConfig
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize error: %v", err)
		}
		if cfg.Addr() != "127.0.0.1:9090" {
			t.Errorf("addr = %q, want 127.0.0.1:9090", cfg.Addr())
		}
	})

	t.Run("rejects invalid port", func(t *testing.T) {
		cfg := config.ServerConfig{Port: 70000}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize should reject port 70000")
		}
	})

	t.Run("rejects invalid timeout", func(t *testing.T) {
		cfg := config.ServerConfig{ReadTimeout: "soon"}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize should reject unparseable timeout")
		}
	})
}

func TestServerConfigMerge(t *testing.T) {
	cfg := config.ServerConfig{Host: "0.0.0.0", Port: 8080}
	cfg.Merge(&config.ServerConfig{Port: 9000})

	if cfg.Host != "0.0.0.0" {
		t.Errorf("host = %q, want unchanged", cfg.Host)
	}
	if cfg.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Port)
	}
}

func TestAPIConfigFinalize(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg config.APIConfig
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize error: %v", err)
		}
		if cfg.BasePath != "/api" {
			t.Errorf("base_path = %q, want /api", cfg.BasePath)
		}
		if cfg.MaxRequestSizeBytes() != 1024*1024 {
			t.Errorf("max request size = %d, want 1MB", cfg.MaxRequestSizeBytes())
		}
		if cfg.History.DefaultLimit != 5 || cfg.History.MaxLimit != 50 {
			t.Errorf("history = %+v, want {5 50}", cfg.History)
		}
		if cfg.RateLimit.RPS == 0 || cfg.RateLimit.Burst == 0 {
			t.Errorf("rate limit defaults missing: %+v", cfg.RateLimit)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LOOM_API_BASE_PATH", "/v1")
		t.Setenv("LOOM_API_MAX_REQUEST_SIZE", "512KB")
		t.Setenv("LOOM_HISTORY_MAX_LIMIT", "25")

		var cfg config.APIConfig
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize error: %v", err)
		}
		if cfg.BasePath != "/v1" {
			t.Errorf("base_path = %q, want /v1", cfg.BasePath)
		}
		if cfg.MaxRequestSizeBytes() != 512*1024 {
			t.Errorf("max request size = %d, want 512KB", cfg.MaxRequestSizeBytes())
		}
		if cfg.History.MaxLimit != 25 {
			t.Errorf("history max = %d, want 25", cfg.History.MaxLimit)
		}
	})

	t.Run("unparseable size falls back", func(t *testing.T) {
		cfg := config.APIConfig{MaxRequestSize: "huge"}
		if cfg.MaxRequestSizeBytes() != 1024*1024 {
			t.Errorf("fallback = %d, want 1MB", cfg.MaxRequestSizeBytes())
		}
	})
}

func TestConfigMerge(t *testing.T) {
	base := &config.Config{
		ShutdownTimeout: "30s",
		Version:         "0.1.0",
		Server:          config.ServerConfig{Port: 8080},
	}

	base.Merge(&config.Config{
		Version: "0.2.0",
		Server:  config.ServerConfig{Port: 9000},
	})

	if base.ShutdownTimeout != "30s" {
		t.Errorf("shutdown_timeout = %q, want unchanged", base.ShutdownTimeout)
	}
	if base.Version != "0.2.0" {
		t.Errorf("version = %q, want 0.2.0", base.Version)
	}
	if base.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", base.Server.Port)
	}
}
