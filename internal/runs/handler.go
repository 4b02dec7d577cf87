package runs

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/pkg/handlers"
	"github.com/JaimeStill/loom/pkg/pagination"
	"github.com/JaimeStill/loom/pkg/routes"
)

// Handler provides HTTP endpoints for run execution and history.
type Handler struct {
	sys    System
	limits pagination.Config
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system, history limits, and
// logger.
func NewHandler(sys System, limits pagination.Config, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		limits: limits,
		logger: logger.With("handler", "runs"),
	}
}

// Routes returns the route group definition for run endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/runs",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Execute},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// Execute runs a workflow against the submitted input text and returns 201
// with the persisted run record.
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	var cmd ExecuteCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	run, err := h.sys.Execute(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, run)
}

// List returns recent runs, newest first. The limit query parameter is
// clamped to the configured window; input text is truncated to a preview.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := pagination.LimitFromQuery(r.URL.Query(), h.limits)

	history, err := h.sys.List(r.Context(), limit)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, history)
}

// Find returns a single run with its full input text and step ledger.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrNotFound)
		return
	}

	run, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, run)
}
