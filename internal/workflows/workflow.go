// Package workflows implements the workflow definition domain for Loom:
// types, validation, data access, and HTTP handlers for creating, listing,
// inspecting, and deleting workflow definitions.
package workflows

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/engine"
	"github.com/JaimeStill/loom/internal/steps"
)

// Step count bounds for a workflow definition.
const (
	MinSteps = 2
	MaxSteps = 4
)

// recentRunLimit caps the runs embedded in a workflow detail view.
const recentRunLimit = 5

// Workflow is a named, ordered, length-bounded sequence of pipeline steps.
// Definitions are immutable after creation except for deletion.
type Workflow struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Steps     []steps.Spec `json:"steps"`
	CreatedAt time.Time    `json:"created_at"`
}

// Summary is the list view of a workflow, annotated with its run count.
type Summary struct {
	Workflow
	RunCount int `json:"run_count"`
}

// Detail is the single-workflow view, carrying its most recent runs.
type Detail struct {
	Workflow
	Runs []RunSummary `json:"runs"`
}

// RunSummary is the run shape embedded in a workflow detail. The total is
// derived from the step outputs on every read, never stored.
type RunSummary struct {
	ID                   uuid.UUID       `json:"id"`
	InputText            string          `json:"input_text"`
	StepOutputs          []engine.Result `json:"step_outputs"`
	TotalExecutionTimeMs int64           `json:"total_execution_time_ms"`
	CreatedAt            time.Time       `json:"created_at"`
}

// CreateCommand carries the data needed to create a workflow definition.
type CreateCommand struct {
	Name  string       `json:"name"`
	Steps []steps.Spec `json:"steps"`
}
