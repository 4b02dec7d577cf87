// Package engine executes workflows: an ordered sequence of catalog steps run
// strictly one after another, each step's output feeding the next step's
// input, with per-step wall-clock timing recorded in the result ledger.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/loom/internal/generation"
	"github.com/JaimeStill/loom/internal/steps"
)

// Result records one executed step: the step type, the text it produced, and
// how long the step itself took. Result order reconstructs the pipeline.
type Result struct {
	Step            steps.Type `json:"step"`
	Output          string     `json:"output"`
	ExecutionTimeMs int64      `json:"execution_time_ms"`
}

// Engine runs an ordered step sequence against an input text.
type Engine struct {
	executor *Executor
	logger   *slog.Logger
}

// New creates an Engine delegating generation steps to the given provider.
func New(provider generation.Provider, logger *slog.Logger) *Engine {
	return &Engine{
		executor: NewExecutor(provider),
		logger:   logger.With("system", "engine"),
	}
}

// Execute runs every step in order, threading each step's output into the
// next step's input. Steps are strictly sequential: step n+1's input is a
// data dependency on step n's output, so nothing runs speculatively. The
// first failing step aborts the run — no later step executes and no partial
// ledger is returned.
func (e *Engine) Execute(ctx context.Context, specs []steps.Spec, input string) ([]Result, error) {
	results := make([]Result, 0, len(specs))
	current := input

	for i, spec := range specs {
		result, err := e.executor.Execute(ctx, spec.Type, current)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, spec.Type, err)
		}

		e.logger.Debug("step complete",
			"step", spec.Type,
			"position", i+1,
			"duration_ms", result.ExecutionTimeMs,
		)

		results = append(results, result)
		current = result.Output
	}

	return results, nil
}

// TotalExecutionTime sums the per-step execution times of a ledger. It is a
// pure reduction, recomputed from step results wherever a total is displayed
// rather than trusting a stored aggregate.
func TotalExecutionTime(results []Result) int64 {
	var total int64
	for _, r := range results {
		total += r.ExecutionTimeMs
	}
	return total
}
