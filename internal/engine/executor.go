package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/loom/internal/generation"
	"github.com/JaimeStill/loom/internal/steps"
)

// Executor runs a single catalog step.
type Executor struct {
	provider generation.Provider
}

// NewExecutor creates an Executor delegating generation steps to provider.
func NewExecutor(provider generation.Provider) *Executor {
	return &Executor{provider: provider}
}

// Execute resolves the step type against the catalog and runs it, timing only
// the step's own work. Unknown types fail before any execution with
// ErrUnknownStep. Provider failures propagate already classified; pure
// transforms cannot fail. No retries happen at this layer.
func (x *Executor) Execute(ctx context.Context, stepType steps.Type, input string) (Result, error) {
	def, ok := steps.Lookup(stepType)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownStep, stepType)
	}

	start := time.Now()

	var output string
	if def.UsesGeneration {
		text, err := x.provider.Complete(ctx, def.Prompt(input))
		if err != nil {
			return Result{}, err
		}
		output = text
	} else {
		output = def.Transform(input)
	}

	return Result{
		Step:            stepType,
		Output:          output,
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}, nil
}
