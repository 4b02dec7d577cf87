// Package handlers provides JSON response helpers shared by all HTTP handlers.
// Every response is wrapped in the service envelope: {success, data?, error?}.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response body for every API endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondJSON writes data inside a success envelope. Success is derived from
// the status code so that degraded states (e.g. 503 health) carry data with
// success=false.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	write(w, status, Envelope{
		Success: status < http.StatusBadRequest,
		Data:    data,
	})
}

// RespondError logs the error and writes a failure envelope carrying only the
// error message. Internal details stay in the log.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("request failed", "status", status, "error", err)
	write(w, status, Envelope{
		Success: false,
		Error:   err.Error(),
	})
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}
