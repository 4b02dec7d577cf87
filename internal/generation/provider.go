// Package generation abstracts the text-generation backend used by
// generation-backed pipeline steps. Failures are classified once here and
// propagate unchanged to the HTTP boundary.
package generation

import "context"

// systemInstruction is prepended to every prompt sent to the backend.
const systemInstruction = "You are a helpful assistant that processes text according to instructions. Provide clear, concise responses."

// Provider completes prompts against a text-generation backend.
type Provider interface {
	// Complete sends a prompt and returns the generated text, or a
	// classified error (see errors.go). The fixed system instruction is
	// prepended before the step-specific prompt.
	Complete(ctx context.Context, prompt string) (string, error)

	// HealthCheck makes a minimal backend call and reports liveness. It
	// never returns an error, only false.
	HealthCheck(ctx context.Context) bool
}
