package workflows

import (
	"strings"

	"github.com/JaimeStill/loom/internal/steps"
	"github.com/JaimeStill/loom/pkg/validation"
)

// Validate checks the command against the workflow structural invariants,
// collecting every violation rather than stopping at the first. On success it
// returns a normalized copy with the name trimmed.
func (cmd CreateCommand) Validate() (CreateCommand, error) {
	var c validation.Collector

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		c.Add("workflow name is required")
	}

	if len(cmd.Steps) < MinSteps || len(cmd.Steps) > MaxSteps {
		c.Add("workflow must have between %d and %d steps", MinSteps, MaxSteps)
	}

	for i, step := range cmd.Steps {
		if step.Type == "" {
			c.Add("step %d: type is required", i+1)
			continue
		}
		if !steps.Known(step.Type) {
			c.Add("step %d: invalid step type %q (valid types: %s)", i+1, step.Type, validTypes())
		}
	}

	if err := c.Err(); err != nil {
		return CreateCommand{}, err
	}

	return CreateCommand{Name: name, Steps: cmd.Steps}, nil
}

func validTypes() string {
	types := steps.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
