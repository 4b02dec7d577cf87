package runs

import (
	"strings"

	"github.com/JaimeStill/loom/pkg/validation"
)

// Validate checks the command's structural invariants, collecting every
// violation. On success it returns a normalized copy with the input trimmed.
func (cmd ExecuteCommand) Validate() (ExecuteCommand, error) {
	var c validation.Collector

	if strings.TrimSpace(cmd.WorkflowID) == "" {
		c.Add("workflow id is required")
	}

	input := strings.TrimSpace(cmd.InputText)
	if input == "" {
		c.Add("input text cannot be empty")
	}

	if err := c.Err(); err != nil {
		return ExecuteCommand{}, err
	}

	return ExecuteCommand{WorkflowID: cmd.WorkflowID, InputText: input}, nil
}
