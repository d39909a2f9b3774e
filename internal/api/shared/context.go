package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// ContextKey is the type for request context keys set by this package.
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// UserContextKey holds the *domain.User resolved from the bearer token
	UserContextKey ContextKey = "user"

	// DBContextKey holds the request-scoped store.DBTX
	DBContextKey ContextKey = "db"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a new trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// UserFromContext returns the authenticated user, if any.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*domain.User)
	return user, ok && user != nil
}

// WithDB returns a copy of ctx carrying the request-scoped database handle.
func WithDB(ctx context.Context, db store.DBTX) context.Context {
	return context.WithValue(ctx, DBContextKey, db)
}

// DBFromContext returns the request-scoped database handle, if any.
func DBFromContext(ctx context.Context) (store.DBTX, bool) {
	db, ok := ctx.Value(DBContextKey).(store.DBTX)
	return db, ok && db != nil
}

// generateTraceID returns 32 random hex characters, falling back to a
// random UUID without dashes if crypto/rand fails.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		id := uuid.New()
		return hex.EncodeToString(id[:])
	}
	return hex.EncodeToString(b)
}
