package runs

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/loom/internal/engine"
	"github.com/JaimeStill/loom/internal/workflows"
	"github.com/JaimeStill/loom/pkg/validation"
)

// Domain errors for run operations.
var (
	ErrNotFound  = errors.New("run not found")
	ErrDuplicate = errors.New("run already exists")
)

// MapHTTPStatus maps run domain errors to HTTP status codes, deferring to
// the engine taxonomy for execution failures.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, workflows.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case validation.Is(err):
		return http.StatusBadRequest
	default:
		return engine.MapHTTPStatus(err)
	}
}
