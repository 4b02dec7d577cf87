package workflows

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/loom/pkg/validation"
)

// Domain errors for workflow operations.
var (
	ErrNotFound  = errors.New("workflow not found")
	ErrDuplicate = errors.New("workflow already exists")
)

// MapHTTPStatus maps workflow domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case validation.Is(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
