package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// TaskStatus is the progress state of a task. Any status may change to any other.
type TaskStatus string

// Known task statuses. The values are part of the wire format.
const (
	TaskStatusPending    TaskStatus = "Pendiente"
	TaskStatusInProgress TaskStatus = "En Progreso"
	TaskStatusCompleted  TaskStatus = "Completada"
)

// TaskStatuses lists every valid status.
var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// MaxTitleLength matches the width of the tasks.title column.
const MaxTitleLength = 100

// DateLayout is the wire format for task deadlines.
const DateLayout = time.DateOnly

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	return slices.Contains(TaskStatuses, s)
}

// ParseTaskStatus converts a wire value into a TaskStatus.
// The empty string yields TaskStatusPending.
func ParseTaskStatus(value string) (TaskStatus, error) {
	if value == "" {
		return TaskStatusPending, nil
	}
	status := TaskStatus(value)
	if !status.Valid() {
		return "", NewValidationError("status", "debe ser uno de "+statusList(), ErrInvalidTaskStatus)
	}
	return status, nil
}

// statusList renders TaskStatuses as a quoted, comma separated list.
func statusList() string {
	quoted := make([]string, len(TaskStatuses))
	for i, s := range TaskStatuses {
		quoted[i] = strconv.Quote(string(s))
	}
	return strings.Join(quoted, ", ")
}

// ParseDate parses a YYYY-MM-DD calendar date into midnight UTC.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError("deadline", "debe ser una fecha en formato YYYY-MM-DD", ErrInvalidFormat)
	}
	return d, nil
}

// Task is a unit of work owned by a single user.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Deadline    time.Time
	Status      TaskStatus
	OwnerID     int64
}

// NewTask creates a validated task for the given owner. An empty status
// defaults to TaskStatusPending.
func NewTask(ownerID int64, title string, description *string, deadline time.Time, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}

	task := &Task{
		Title:       title,
		Description: description,
		Deadline:    truncateToDate(deadline),
		Status:      status,
		OwnerID:     ownerID,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "no puede estar vacío", ErrValidation)
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return NewValidationError("title", fmt.Sprintf("debe tener como máximo %d caracteres", MaxTitleLength), ErrValidation)
	}
	if t.Deadline.IsZero() {
		return NewValidationError("deadline", "es obligatorio", ErrValidation)
	}
	if !t.Status.Valid() {
		return NewValidationError("status", "no es un estado conocido", ErrInvalidTaskStatus)
	}
	if t.OwnerID <= 0 {
		return NewValidationError("owner_id", "debe referenciar un usuario", ErrInvalidID)
	}
	return nil
}

// DeadlineString returns the deadline in wire format.
func (t *Task) DeadlineString() string {
	return t.Deadline.Format(DateLayout)
}

func truncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
