package generation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Classified backend failures. Every error leaving this package wraps exactly
// one of these sentinels.
var (
	// ErrMissingConfig means the provider has no credentials or model
	// configured. Fatal configuration error, not input-dependent.
	ErrMissingConfig = errors.New("generation backend is not configured")

	// ErrAuthRejected means the backend rejected the configured credentials.
	ErrAuthRejected = errors.New("generation backend rejected credentials")

	// ErrRateLimited means the backend reported a rate or quota limit.
	// Retryable by the caller; this package never retries.
	ErrRateLimited = errors.New("generation backend rate limit exceeded")

	// ErrContentFiltered means the backend's safety filters blocked the
	// input. Non-retryable without different input.
	ErrContentFiltered = errors.New("content was blocked by safety filters")

	// ErrEmptyResponse means the backend reported success but produced no
	// text.
	ErrEmptyResponse = errors.New("no response received from generation backend")

	// ErrBackend covers any other backend failure.
	ErrBackend = errors.New("generation backend request failed")
)

// MapHTTPStatus maps classified generation errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthRejected):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrContentFiltered):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// classify maps a raw backend error onto the failure taxonomy by inspecting
// its message. Backend clients do not expose typed errors for these cases, so
// message matching is the only signal available.
func classify(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())

	switch {
	case contains(msg, "api key", "unauthorized", "401", "invalid authentication"):
		return fmt.Errorf("%w: %w", ErrAuthRejected, err)
	case contains(msg, "quota", "rate limit", "rate_limit", "429", "too many requests"):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case contains(msg, "blocked", "safety", "content filter", "content_filter"):
		return fmt.Errorf("%w: %w", ErrContentFiltered, err)
	default:
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}
}

func contains(msg string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}
