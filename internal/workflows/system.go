package workflows

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for workflow definition operations.
type System interface {
	Handler() *Handler

	Create(ctx context.Context, cmd CreateCommand) (*Workflow, error)
	List(ctx context.Context) ([]Summary, error)
	Find(ctx context.Context, id uuid.UUID) (*Detail, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
