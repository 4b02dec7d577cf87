package workflows

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a workflow repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "workflows"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Workflow, error) {
	normalized, err := cmd.Validate()
	if err != nil {
		return nil, err
	}

	stepsJSON, err := marshalSteps(normalized.Steps)
	if err != nil {
		return nil, err
	}

	insertQ := `
		INSERT INTO workflows(name, steps)
		VALUES ($1, $2)
		RETURNING id, name, steps, created_at`

	w, err := repository.QueryOne(ctx, r.db, insertQ, []any{normalized.Name, stepsJSON}, scanWorkflow)
	if err != nil {
		return nil, repository.MapError(fmt.Errorf("insert workflow: %w", err), ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("workflow created",
		"id", w.ID,
		"name", w.Name,
		"steps", len(w.Steps),
	)
	return &w, nil
}

func (r *repo) List(ctx context.Context) ([]Summary, error) {
	listQ := `
		SELECT w.id, w.name, w.steps, w.created_at, COUNT(r.id)
		FROM workflows w
		LEFT JOIN runs r ON r.workflow_id = w.id
		GROUP BY w.id, w.name, w.steps, w.created_at
		ORDER BY w.created_at DESC`

	summaries, err := repository.QueryMany(ctx, r.db, listQ, nil, scanSummary)
	if err != nil {
		return nil, fmt.Errorf("query workflows: %w", err)
	}

	return summaries, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Detail, error) {
	findQ := `
		SELECT id, name, steps, created_at
		FROM workflows
		WHERE id = $1`

	w, err := repository.QueryOne(ctx, r.db, findQ, []any{id}, scanWorkflow)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	runsQ := `
		SELECT id, input_text, step_outputs, created_at
		FROM runs
		WHERE workflow_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	recent, err := repository.QueryMany(ctx, r.db, runsQ, []any{id, recentRunLimit}, scanRunSummary)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}

	return &Detail{Workflow: w, Runs: recent}, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		// runs cascade via the workflow_id foreign key
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM workflows WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("workflow deleted", "id", id)
	return nil
}
