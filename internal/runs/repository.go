package runs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/engine"
	"github.com/JaimeStill/loom/internal/workflows"
	"github.com/JaimeStill/loom/pkg/pagination"
	"github.com/JaimeStill/loom/pkg/repository"
)

type repo struct {
	db        *sql.DB
	workflows workflows.System
	engine    *engine.Engine
	logger    *slog.Logger
	limits    pagination.Config
}

// New creates a run repository implementing the System interface.
func New(db *sql.DB, wf workflows.System, eng *engine.Engine, limits pagination.Config, logger *slog.Logger) System {
	return &repo{
		db:        db,
		workflows: wf,
		engine:    eng,
		logger:    logger.With("system", "runs"),
		limits:    limits,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.limits, r.logger)
}

// Execute resolves the workflow, runs its steps against the input, and
// persists the completed ledger. A run that fails mid-pipeline is never
// persisted; execution errors surface without touching storage.
func (r *repo) Execute(ctx context.Context, cmd ExecuteCommand) (*Run, error) {
	normalized, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	workflowID, err := uuid.Parse(normalized.WorkflowID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid workflow id %q", workflows.ErrNotFound, normalized.WorkflowID)
	}

	detail, err := r.workflows.Find(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	results, err := r.engine.Execute(ctx, detail.Steps, normalized.InputText)
	if err != nil {
		return nil, fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}

	outputsJSON, err := marshalOutputs(results)
	if err != nil {
		return nil, err
	}

	insertQ := `
		INSERT INTO runs(workflow_id, workflow_name, input_text, step_outputs)
		VALUES ($1, $2, $3, $4)
		RETURNING id, workflow_id, workflow_name, input_text, step_outputs, created_at`

	run, err := repository.QueryOne(
		ctx, r.db, insertQ,
		[]any{workflowID, detail.Name, normalized.InputText, outputsJSON},
		scanRun,
	)
	if err != nil {
		return nil, repository.MapError(fmt.Errorf("insert run: %w", err), ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("workflow executed",
		"run", run.ID,
		"workflow", run.WorkflowID,
		"steps", len(run.StepOutputs),
		"total_ms", run.TotalExecutionTimeMs,
	)
	return &run, nil
}

// List returns the most recent runs, newest first, with input text truncated
// to a preview. limit is clamped to the configured window.
func (r *repo) List(ctx context.Context, limit int) ([]Run, error) {
	listQ := `
		SELECT id, workflow_id, workflow_name, input_text, step_outputs, created_at
		FROM runs
		ORDER BY created_at DESC
		LIMIT $1`

	history, err := repository.QueryMany(ctx, r.db, listQ, []any{r.limits.Normalize(limit)}, scanRun)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	for i := range history {
		history[i].InputText = truncateInput(history[i].InputText)
	}
	return history, nil
}

// Find returns a single run with its full input text.
func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Run, error) {
	findQ := `
		SELECT id, workflow_id, workflow_name, input_text, step_outputs, created_at
		FROM runs
		WHERE id = $1`

	run, err := repository.QueryOne(ctx, r.db, findQ, []any{id}, scanRun)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &run, nil
}
