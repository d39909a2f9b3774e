package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// MemoryStore holds users and tasks in memory. Its Users and Tasks views
// implement store.UserStore and store.TaskStore over the same data.
type MemoryStore struct {
	mu         sync.Mutex
	users      map[int64]domain.User
	tasks      map[int64]domain.Task
	nextUserID int64
	nextTaskID int64
	lastDB     store.DBTX

	// Err, when set, is returned by every store call. Use SetErr once the
	// store is shared with running handlers.
	Err error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[int64]domain.User),
		tasks: make(map[int64]domain.Task),
	}
}

// Users returns a store.UserStore view.
func (m *MemoryStore) Users() *MemoryUserStore {
	return &MemoryUserStore{state: m}
}

// Tasks returns a store.TaskStore view.
func (m *MemoryStore) Tasks() *MemoryTaskStore {
	return &MemoryTaskStore{state: m}
}

// SetErr sets Err under the store lock.
func (m *MemoryStore) SetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// LastDB returns the database handle used by the most recent store call.
func (m *MemoryStore) LastDB() store.DBTX {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastDB
}

// TaskCount returns the number of stored tasks.
func (m *MemoryStore) TaskCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (m *MemoryStore) enter(db store.DBTX) error {
	m.mu.Lock()
	m.lastDB = db
	if m.Err != nil {
		err := m.Err
		m.mu.Unlock()
		return err
	}
	return nil
}

// MemoryUserStore implements store.UserStore over a MemoryStore.
type MemoryUserStore struct {
	state *MemoryStore
	db    store.DBTX
}

// Ensure MemoryUserStore implements store.UserStore interface
var _ store.UserStore = (*MemoryUserStore)(nil)

// Create implements store.UserStore.Create
func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if err := s.state.enter(s.db); err != nil {
		return err
	}
	defer s.state.mu.Unlock()

	for _, u := range s.state.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	s.state.nextUserID++
	user.ID = s.state.nextUserID
	s.state.users[user.ID] = *user
	return nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := s.state.enter(s.db); err != nil {
		return nil, err
	}
	defer s.state.mu.Unlock()

	for _, u := range s.state.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// WithDB implements store.UserStore.WithDB
func (s *MemoryUserStore) WithDB(db store.DBTX) store.UserStore {
	return &MemoryUserStore{state: s.state, db: db}
}

// MemoryTaskStore implements store.TaskStore over a MemoryStore.
type MemoryTaskStore struct {
	state *MemoryStore
	db    store.DBTX
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *MemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := s.state.enter(s.db); err != nil {
		return err
	}
	defer s.state.mu.Unlock()

	if _, ok := s.state.users[task.OwnerID]; !ok {
		return store.ErrInvalidEntity
	}
	s.state.nextTaskID++
	task.ID = s.state.nextTaskID
	s.state.tasks[task.ID] = cloneTask(*task)
	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner
func (s *MemoryTaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	if err := s.state.enter(s.db); err != nil {
		return nil, err
	}
	defer s.state.mu.Unlock()

	tasks := make([]domain.Task, 0)
	for _, t := range s.state.tasks {
		if t.OwnerID == ownerID {
			tasks = append(tasks, cloneTask(t))
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Update implements store.TaskStore.Update
func (s *MemoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := s.state.enter(s.db); err != nil {
		return err
	}
	defer s.state.mu.Unlock()

	existing, ok := s.state.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return store.ErrTaskNotFound
	}
	s.state.tasks[task.ID] = cloneTask(*task)
	return nil
}

// Delete implements store.TaskStore.Delete
func (s *MemoryTaskStore) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.state.enter(s.db); err != nil {
		return err
	}
	defer s.state.mu.Unlock()

	existing, ok := s.state.tasks[id]
	if !ok || existing.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(s.state.tasks, id)
	return nil
}

// WithDB implements store.TaskStore.WithDB
func (s *MemoryTaskStore) WithDB(db store.DBTX) store.TaskStore {
	return &MemoryTaskStore{state: s.state, db: db}
}

func cloneTask(t domain.Task) domain.Task {
	if t.Description != nil {
		d := *t.Description
		t.Description = &d
	}
	return t
}
