package store

import (
	"context"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create inserts a new user and sets user.ID.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithDB returns a UserStore that runs its queries on db.
	// Used to bind the store to a request-scoped connection or a transaction.
	WithDB(db DBTX) UserStore
}
