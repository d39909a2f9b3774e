package mocks

import (
	"context"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

// Ensure TestifyMockUserStore implements store.UserStore interface
var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByEmail is a mock implementation of store.UserStore.GetByEmail
func (m *TestifyMockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithDB is a mock implementation of store.UserStore.WithDB.
// Without an explicit expectation it returns the receiver.
func (m *TestifyMockUserStore) WithDB(db store.DBTX) store.UserStore {
	for _, call := range m.ExpectedCalls {
		if call.Method == "WithDB" {
			args := m.Called(db)
			if ret, ok := args.Get(0).(store.UserStore); ok {
				return ret
			}
			return m
		}
	}
	return m
}
