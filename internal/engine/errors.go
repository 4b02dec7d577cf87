package engine

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/loom/internal/generation"
)

// ErrUnknownStep means a step type is not registered in the catalog. The
// validation layer rejects unknown types before storage, so hitting this
// during execution indicates a stale or hand-edited workflow record.
var ErrUnknownStep = errors.New("unknown step type")

// MapHTTPStatus maps engine errors to HTTP status codes, deferring to the
// generation taxonomy for backend failures.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownStep) {
		return http.StatusBadRequest
	}
	return generation.MapHTTPStatus(err)
}
