package runs_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/JaimeStill/loom/internal/engine"
	"github.com/JaimeStill/loom/internal/generation"
	"github.com/JaimeStill/loom/internal/runs"
	"github.com/JaimeStill/loom/internal/workflows"
	"github.com/JaimeStill/loom/pkg/validation"
)

func TestExecuteCommandValidate(t *testing.T) {
	t.Run("valid command trims input", func(t *testing.T) {
		cmd := runs.ExecuteCommand{
			WorkflowID: "550e8400-e29b-41d4-a716-446655440000",
			InputText:  "  some text  ",
		}

		normalized, err := cmd.Validate()
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if normalized.InputText != "some text" {
			t.Errorf("input = %q, want trimmed", normalized.InputText)
		}
	})

	tests := []struct {
		name string
		cmd  runs.ExecuteCommand
		want string
	}{
		{"missing workflow id", runs.ExecuteCommand{InputText: "text"}, "workflow id is required"},
		{"missing input", runs.ExecuteCommand{WorkflowID: "abc"}, "input text cannot be empty"},
		{"whitespace input", runs.ExecuteCommand{WorkflowID: "abc", InputText: "   \n  "}, "input text cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cmd.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			if !validation.Is(err) {
				t.Errorf("error %v is not a validation error", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}

	t.Run("aggregates all violations", func(t *testing.T) {
		_, err := runs.ExecuteCommand{}.Validate()
		if err == nil {
			t.Fatal("Validate should fail")
		}

		var ve *validation.Error
		if !errors.As(err, &ve) {
			t.Fatalf("error %v is not a *validation.Error", err)
		}
		if len(ve.Violations) != 2 {
			t.Errorf("violations = %d, want 2: %v", len(ve.Violations), ve.Violations)
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"run not found", runs.ErrNotFound, http.StatusNotFound},
		{"workflow not found", workflows.ErrNotFound, http.StatusNotFound},
		{"wrapped workflow not found", fmt.Errorf("execute: %w", workflows.ErrNotFound), http.StatusNotFound},
		{"validation", &validation.Error{Violations: []string{"bad"}}, http.StatusBadRequest},
		{"unknown step", fmt.Errorf("step 1 (x): %w", engine.ErrUnknownStep), http.StatusBadRequest},
		{"rate limited", fmt.Errorf("step 2 (summarize): %w", generation.ErrRateLimited), http.StatusTooManyRequests},
		{"auth rejected", generation.ErrAuthRejected, http.StatusUnauthorized},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runs.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
