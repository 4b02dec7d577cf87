package health

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/loom/pkg/handlers"
	"github.com/JaimeStill/loom/pkg/routes"
)

// Handler provides HTTP endpoints for health reporting.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "health"),
	}
}

// Routes returns the route group definition for health endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/health",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Check},
			{Method: "GET", Pattern: "/live", Handler: h.Live},
		},
	}
}

// Check probes the database and generation provider, returning 200 when
// both are reachable and 503 otherwise. The component breakdown is carried
// in the response body either way.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	status := h.sys.Check(r.Context())

	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}

	handlers.RespondJSON(w, code, status)
}

// Live reports process liveness without touching dependencies.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"server": StatusOK})
}
