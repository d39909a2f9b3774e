package mocks

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// ErrMockConn is returned by every query method of MockConn.
var ErrMockConn = errors.New("mock connection does not execute queries")

// MockConn is a store.Conn that records whether it was closed.
// Queries are not supported; pair it with the in-memory stores.
type MockConn struct {
	ID     int
	closed atomic.Bool
}

// Ensure MockConn implements store.Conn interface
var _ store.Conn = (*MockConn)(nil)

// ExecContext implements store.DBTX
func (c *MockConn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, ErrMockConn
}

// PrepareContext implements store.DBTX
func (c *MockConn) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, ErrMockConn
}

// QueryContext implements store.DBTX
func (c *MockConn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, ErrMockConn
}

// QueryRowContext implements store.DBTX. It returns nil.
func (c *MockConn) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

// Close implements store.Conn
func (c *MockConn) Close() error {
	c.closed.Store(true)
	return nil
}

// Closed reports whether Close was called.
func (c *MockConn) Closed() bool {
	return c.closed.Load()
}

// MockAcquirer implements store.Acquirer and keeps every connection it hands out.
type MockAcquirer struct {
	// AcquireFn, when set, replaces the default behavior.
	AcquireFn func(ctx context.Context) (store.Conn, error)

	// Err is returned by the default behavior when set.
	Err error

	mu    sync.Mutex
	conns []*MockConn
}

// Ensure MockAcquirer implements store.Acquirer interface
var _ store.Acquirer = (*MockAcquirer)(nil)

// Acquire implements store.Acquirer
func (a *MockAcquirer) Acquire(ctx context.Context) (store.Conn, error) {
	if a.AcquireFn != nil {
		return a.AcquireFn(ctx)
	}
	if a.Err != nil {
		return nil, a.Err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	conn := &MockConn{ID: len(a.conns) + 1}
	a.conns = append(a.conns, conn)
	return conn, nil
}

// Conns returns every connection handed out so far.
func (a *MockAcquirer) Conns() []*MockConn {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*MockConn(nil), a.conns...)
}

// OpenConns returns the number of acquired connections not yet closed.
func (a *MockAcquirer) OpenConns() int {
	open := 0
	for _, c := range a.Conns() {
		if !c.Closed() {
			open++
		}
	}
	return open
}
