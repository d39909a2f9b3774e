package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// Pool hands out request-scoped connections from a *sql.DB.
type Pool struct {
	db *sql.DB
}

// NewPool wraps an initialized connection pool.
func NewPool(db *sql.DB) *Pool {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	return &Pool{db: db}
}

// Ensure Pool implements store.Acquirer interface
var _ store.Acquirer = (*Pool)(nil)

// Acquire reserves a single connection for the caller until it is closed.
func (p *Pool) Acquire(ctx context.Context) (store.Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire database connection: %w", err)
	}
	return conn, nil
}
