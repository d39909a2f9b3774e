package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by *sql.DB, *sql.Conn and *sql.Tx, allowing our code
// to work with a pool, a request-scoped connection, or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn is a database handle scoped to one request. *sql.Conn satisfies it.
type Conn interface {
	DBTX
	Close() error
}

// Acquirer hands out request-scoped connections.
// Every acquired Conn must be closed by the caller.
type Acquirer interface {
	Acquire(ctx context.Context) (Conn, error)
}
