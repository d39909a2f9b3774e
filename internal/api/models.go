package api

import (
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
)

// CredentialsRequest is the payload of both /register and /login.
type CredentialsRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TaskRequest is the payload of task create and update.
// Status is parsed with domain.ParseTaskStatus after decoding; empty means Pendiente.
type TaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=100"`
	Description *string `json:"description"`
	Deadline    string  `json:"deadline"    validate:"required,datetime=2006-01-02"`
	Status      string  `json:"status"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Deadline    string  `json:"deadline"`
	Status      string  `json:"status"`
	OwnerID     int64   `json:"owner_id"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuggestRequest is the payload of /tasks/suggest.
type SuggestRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

// SuggestionResponse is the wire form of a task suggestion.
type SuggestionResponse struct {
	Description string   `json:"description"`
	Subtasks    []string `json:"subtasks"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

func newTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Deadline:    t.DeadlineString(),
		Status:      string(t.Status),
		OwnerID:     t.OwnerID,
	}
}

func newTaskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, newTaskResponse(&tasks[i]))
	}
	return out
}
