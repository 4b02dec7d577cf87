// Package runs implements the run history domain for Loom: executing a
// workflow against an input text through the engine and persisting the
// resulting step ledger as an immutable, replayable record.
package runs

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/engine"
)

// inputPreviewLen is the input text length shown in list views; the full
// text is preserved for single-record retrieval.
const inputPreviewLen = 100

// Run is one immutable execution record of a workflow. WorkflowName is
// captured at run time so the record is self-contained: it reflects the
// workflow as it was when executed. TotalExecutionTimeMs is derived from
// StepOutputs on every read and never stored.
type Run struct {
	ID                   uuid.UUID       `json:"id"`
	WorkflowID           uuid.UUID       `json:"workflow_id"`
	WorkflowName         string          `json:"workflow_name"`
	InputText            string          `json:"input_text"`
	StepOutputs          []engine.Result `json:"step_outputs"`
	TotalExecutionTimeMs int64           `json:"total_execution_time_ms"`
	CreatedAt            time.Time       `json:"created_at"`
}

// ExecuteCommand carries the data needed to execute a workflow.
type ExecuteCommand struct {
	WorkflowID string `json:"workflow_id"`
	InputText  string `json:"input_text"`
}

func truncateInput(s string) string {
	runes := []rune(s)
	if len(runes) <= inputPreviewLen {
		return s
	}
	return string(runes[:inputPreviewLen]) + "..."
}
