package workflows_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/JaimeStill/loom/internal/steps"
	"github.com/JaimeStill/loom/internal/workflows"
	"github.com/JaimeStill/loom/pkg/validation"
)

func specs(types ...steps.Type) []steps.Spec {
	out := make([]steps.Spec, 0, len(types))
	for _, t := range types {
		out = append(out, steps.Spec{Type: t})
	}
	return out
}

func TestCreateCommandValidate(t *testing.T) {
	t.Run("valid command normalizes name", func(t *testing.T) {
		cmd := workflows.CreateCommand{
			Name:  "  Article Pipeline  ",
			Steps: specs(steps.TypeClean, steps.TypeSummarize),
		}

		normalized, err := cmd.Validate()
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if normalized.Name != "Article Pipeline" {
			t.Errorf("name = %q, want trimmed", normalized.Name)
		}
		if len(normalized.Steps) != 2 {
			t.Errorf("steps length = %d, want 2", len(normalized.Steps))
		}
	})

	t.Run("four steps is valid", func(t *testing.T) {
		cmd := workflows.CreateCommand{
			Name:  "Full Pipeline",
			Steps: specs(steps.TypeClean, steps.TypeSummarize, steps.TypeSentiment, steps.TypeGenerateTitle),
		}

		if _, err := cmd.Validate(); err != nil {
			t.Errorf("Validate error: %v", err)
		}
	})

	tests := []struct {
		name string
		cmd  workflows.CreateCommand
		want string
	}{
		{
			"missing name",
			workflows.CreateCommand{Steps: specs(steps.TypeClean, steps.TypeSummarize)},
			"workflow name is required",
		},
		{
			"one step is too few",
			workflows.CreateCommand{Name: "x", Steps: specs(steps.TypeClean)},
			"between 2 and 4 steps",
		},
		{
			"five steps is too many",
			workflows.CreateCommand{Name: "x", Steps: specs(
				steps.TypeClean, steps.TypeSummarize, steps.TypeSentiment,
				steps.TypeTagCategory, steps.TypeGenerateTitle,
			)},
			"between 2 and 4 steps",
		},
		{
			"unknown step type",
			workflows.CreateCommand{Name: "x", Steps: specs(steps.TypeClean, "reverse")},
			`step 2: invalid step type "reverse"`,
		},
		{
			"empty step type",
			workflows.CreateCommand{Name: "x", Steps: specs(steps.TypeClean, "")},
			"step 2: type is required",
		},
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
		cmd := workflows.CreateCommand{
			Name:  "  ",
			Steps: specs("reverse"),
		}

		_, err := cmd.Validate()
		if err == nil {
			t.Fatal("Validate should fail")
		}

		var ve *validation.Error
		if !errors.As(err, &ve) {
			t.Fatalf("error %v is not a *validation.Error", err)
		}
		if len(ve.Violations) != 3 {
			t.Errorf("violations = %d, want 3: %v", len(ve.Violations), ve.Violations)
		}
	})

	t.Run("unknown type error lists valid types", func(t *testing.T) {
		cmd := workflows.CreateCommand{
			Name:  "x",
			Steps: specs(steps.TypeClean, "reverse"),
		}

		_, err := cmd.Validate()
		if err == nil {
			t.Fatal("Validate should fail")
		}
		for _, typ := range steps.Types() {
			if !strings.Contains(err.Error(), string(typ)) {
				t.Errorf("error does not list valid type %q", typ)
			}
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", workflows.ErrNotFound, http.StatusNotFound},
		{"duplicate", workflows.ErrDuplicate, http.StatusConflict},
		{"validation", &validation.Error{Violations: []string{"bad"}}, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("find failed: %w", workflows.ErrNotFound), http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workflows.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
