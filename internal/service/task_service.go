package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// TaskInput carries the writable fields of a task.
// An empty Status means domain.TaskStatusPending.
type TaskInput struct {
	Title       string
	Description *string
	Deadline    time.Time
	Status      domain.TaskStatus
}

// TaskService manages tasks on behalf of their owner.
// A task owned by another user is reported as store.ErrTaskNotFound.
type TaskService interface {
	List(ctx context.Context, db store.DBTX, user *domain.User) ([]domain.Task, error)
	Create(ctx context.Context, db store.DBTX, user *domain.User, input TaskInput) (*domain.Task, error)
	// Update overwrites every writable field; an omitted status resets to Pendiente.
	Update(ctx context.Context, db store.DBTX, user *domain.User, id int64, input TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, db store.DBTX, user *domain.User, id int64) error
}

type taskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, fmt.Errorf("tasks cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		tasks:  tasks,
		logger: logger.With("component", "task_service"),
	}, nil
}

// List implements TaskService.List
func (s *taskService) List(ctx context.Context, db store.DBTX, user *domain.User) ([]domain.Task, error) {
	tasks, err := s.tasks.WithDB(db).ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create implements TaskService.Create
func (s *taskService) Create(
	ctx context.Context,
	db store.DBTX,
	user *domain.User,
	input TaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(user.ID, input.Title, input.Description, input.Deadline, input.Status)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.WithDB(db).Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Debug("task created", slog.Int64("task_id", task.ID), slog.Int64("user_id", user.ID))
	return task, nil
}

// Update implements TaskService.Update
func (s *taskService) Update(
	ctx context.Context,
	db store.DBTX,
	user *domain.User,
	id int64,
	input TaskInput,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(user.ID, input.Title, input.Description, input.Deadline, input.Status)
	if err != nil {
		return nil, err
	}
	task.ID = id

	if err := s.tasks.WithDB(db).Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	log.Debug("task updated", slog.Int64("task_id", id), slog.Int64("user_id", user.ID))
	return task, nil
}

// Delete implements TaskService.Delete
func (s *taskService) Delete(ctx context.Context, db store.DBTX, user *domain.User, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.WithDB(db).Delete(ctx, id, user.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	log.Debug("task deleted", slog.Int64("task_id", id), slog.Int64("user_id", user.ID))
	return nil
}
