package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// Resolver turns a bearer token into the user it was issued for.
type Resolver struct {
	tokens TokenService
	users  store.UserStore
}

// NewResolver creates a Resolver.
func NewResolver(tokens TokenService, users store.UserStore) *Resolver {
	if tokens == nil || users == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("tokens and users cannot be nil")
	}
	return &Resolver{tokens: tokens, users: users}
}

// Resolve parses token once and looks up its subject on db at most once.
// A bad token or an unknown subject is ErrUnauthorized; a failed lookup is
// returned wrapped so callers can tell an outage from bad credentials.
func (r *Resolver) Resolve(ctx context.Context, db store.DBTX, token string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	email, err := r.tokens.ParseToken(ctx, token)
	if err != nil {
		log.Debug("rejecting bearer token", slog.String("error", err.Error()))
		return nil, ErrUnauthorized
	}

	user, err := r.users.WithDB(db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("token subject has no matching user")
			return nil, ErrUnauthorized
		}
		log.Error("failed to look up token subject", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up token subject: %w", err)
	}

	return user, nil
}
