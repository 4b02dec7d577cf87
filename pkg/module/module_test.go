package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/loom/pkg/module"
)

func echoPath() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(r.URL.Path))
	})
	return mux
}

func TestModulePrefixValidation(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		valid  bool
	}{
		{"single level", "/api", true},
		{"empty", "", false},
		{"missing slash", "api", false},
		{"multi level", "/api/v1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover() != nil
				if recovered == tt.valid {
					t.Errorf("New(%q) panic = %v, want %v", tt.prefix, recovered, !tt.valid)
				}
			}()
			module.New(tt.prefix, echoPath())
		})
	}
}

func TestModuleServeStripsPrefix(t *testing.T) {
	m := module.New("/api", echoPath())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/workflows", nil)
	m.Serve(rec, req)

	if rec.Body.String() != "/workflows" {
		t.Errorf("inner path = %q, want /workflows", rec.Body.String())
	}
}

func TestModuleMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	m := module.New("/api", echoPath())
	m.Use(mw("outer"))
	m.Use(mw("inner"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/x", nil)
	m.Serve(rec, req)

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}

func TestRouterDispatch(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPath()))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("native"))
	})

	t.Run("routes to mounted module", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/runs", nil)
		router.ServeHTTP(rec, req)

		if rec.Body.String() != "/runs" {
			t.Errorf("body = %q, want /runs", rec.Body.String())
		}
	})

	t.Run("trailing slash is normalized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/runs/", nil)
		router.ServeHTTP(rec, req)

		if rec.Body.String() != "/runs" {
			t.Errorf("body = %q, want /runs", rec.Body.String())
		}
	})

	t.Run("falls back to native mux", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/healthz", nil)
		router.ServeHTTP(rec, req)

		if rec.Body.String() != "native" {
			t.Errorf("body = %q, want native", rec.Body.String())
		}
	})

	t.Run("unknown path returns 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/nothing", nil)
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
