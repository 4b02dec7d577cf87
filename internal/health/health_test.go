package health_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/loom/internal/health"
)

type mockSystem struct {
	checkFn func(ctx context.Context) health.Status
}

func (m *mockSystem) Handler() *health.Handler {
	return health.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (m *mockSystem) Check(ctx context.Context) health.Status {
	return m.checkFn(ctx)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setupMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	group := sys.Handler().Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestStatusHealthy(t *testing.T) {
	tests := []struct {
		name   string
		status health.Status
		want   bool
	}{
		{"all ok", health.Status{Database: health.StatusOK, Generation: health.StatusOK}, true},
		{"database down", health.Status{Database: health.StatusUnavailable, Generation: health.StatusOK}, false},
		{"generation down", health.Status{Database: health.StatusOK, Generation: health.StatusUnavailable}, false},
		{"both down", health.Status{Database: health.StatusUnavailable, Generation: health.StatusUnavailable}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Healthy(); got != tt.want {
				t.Errorf("Healthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandlerCheck(t *testing.T) {
	t.Run("healthy returns 200", func(t *testing.T) {
		sys := &mockSystem{
			checkFn: func(_ context.Context) health.Status {
				return health.Status{
					Server:     health.StatusOK,
					Database:   health.StatusOK,
					Generation: health.StatusOK,
					Timestamp:  time.Now().UTC(),
				}
			},
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}

		var env envelope
		if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
		if !env.Success {
			t.Error("success = false, want true")
		}
	})

	t.Run("degraded returns 503 with component breakdown", func(t *testing.T) {
		sys := &mockSystem{
			checkFn: func(_ context.Context) health.Status {
				return health.Status{
					Server:     health.StatusOK,
					Database:   health.StatusOK,
					Generation: health.StatusUnavailable,
					Timestamp:  time.Now().UTC(),
				}
			},
		}
		mux := setupMux(sys)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/health", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", rec.Code)
		}

		var env envelope
		if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
		if env.Success {
			t.Error("success = true, want false")
		}

		var status health.Status
		if err := json.Unmarshal(env.Data, &status); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if status.Generation != health.StatusUnavailable {
			t.Errorf("generation = %q, want unavailable", status.Generation)
		}
		if status.Database != health.StatusOK {
			t.Errorf("database = %q, want ok", status.Database)
		}
	})
}

func TestHandlerLive(t *testing.T) {
	sys := &mockSystem{}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health/live", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
