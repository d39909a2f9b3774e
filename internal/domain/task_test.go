package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskDefaultsToPending(t *testing.T) {
	t.Parallel()

	deadline, err := ParseDate("2025-01-01")
	require.NoError(t, err)

	task, err := NewTask(7, "Write report", nil, deadline, "")
	require.NoError(t, err)
	assert.Equal(t, TaskStatusPending, task.Status)
	assert.Equal(t, int64(7), task.OwnerID)
	assert.Nil(t, task.Description)
	assert.Equal(t, "2025-01-01", task.DeadlineString())
}

func TestNewTaskTruncatesDeadline(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-5", -5*3600)
	task, err := NewTask(1, "x", nil, time.Date(2025, 6, 1, 22, 30, 0, 0, loc), TaskStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", task.DeadlineString())
	assert.Equal(t, time.UTC, task.Deadline.Location())
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{"empty title", Task{Title: "  ", Deadline: deadline, Status: TaskStatusPending, OwnerID: 1}, ErrValidation},
		{"title too long", Task{Title: strings.Repeat("á", 101), Deadline: deadline, Status: TaskStatusPending, OwnerID: 1}, ErrValidation},
		{"missing deadline", Task{Title: "x", Status: TaskStatusPending, OwnerID: 1}, ErrValidation},
		{"unknown status", Task{Title: "x", Deadline: deadline, Status: "Done", OwnerID: 1}, ErrInvalidTaskStatus},
		{"missing owner", Task{Title: "x", Deadline: deadline, Status: TaskStatusPending}, ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	ok := Task{Title: strings.Repeat("á", 100), Deadline: deadline, Status: TaskStatusInProgress, OwnerID: 1}
	assert.NoError(t, ok.Validate(), "100 multibyte characters fit the column")
}

func TestParseTaskStatus(t *testing.T) {
	t.Parallel()

	for _, s := range TaskStatuses {
		got, err := ParseTaskStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseTaskStatus("")
	require.NoError(t, err)
	assert.Equal(t, TaskStatusPending, got)

	_, err = ParseTaskStatus("pendiente")
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2025-13-01", "01/06/2025", "2025-06-01T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidFormat, bad)
	}
}

func TestParseTaskStatus_MessageListsEveryStatus(t *testing.T) {
	t.Parallel()

	_, err := ParseTaskStatus("Done")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	for _, s := range TaskStatuses {
		assert.Contains(t, vErr.Message, string(s))
	}
	assert.False(t, TaskStatus("Done").Valid())
}
