package store

import (
	"context"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every lookup and mutation is scoped by owner: a task owned by someone else
// is reported exactly like a task that does not exist.
type TaskStore interface {
	// Create inserts a new task and sets task.ID.
	// Returns store.ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// ListByOwner returns every task owned by ownerID, in no particular order.
	// Returns an empty slice when the owner has no tasks.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)

	// Update overwrites title, description, deadline and status of the task
	// identified by both task.ID and task.OwnerID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task identified by id and ownerID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	Delete(ctx context.Context, id, ownerID int64) error

	// WithDB returns a TaskStore that runs its queries on db.
	WithDB(db DBTX) TaskStore
}
