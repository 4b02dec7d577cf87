package runs

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for run execution and history.
type System interface {
	Handler() *Handler

	Execute(ctx context.Context, cmd ExecuteCommand) (*Run, error)
	List(ctx context.Context, limit int) ([]Run, error)
	Find(ctx context.Context, id uuid.UUID) (*Run, error)
}
