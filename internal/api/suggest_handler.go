package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/gestor-tareas-api/internal/api/shared"
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
)

// Suggester produces task suggestions. *service.SuggestionService satisfies it.
type Suggester interface {
	Suggest(ctx context.Context, title string) (*domain.TaskSuggestion, error)
}

// SuggestHandler handles POST /tasks/suggest.
type SuggestHandler struct {
	suggester Suggester
}

// NewSuggestHandler creates a new SuggestHandler with the given dependencies.
func NewSuggestHandler(suggester Suggester) *SuggestHandler {
	return &SuggestHandler{suggester: suggester}
}

// Suggest returns a generated description and subtasks for a task title.
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	suggestion, err := h.suggester.Suggest(r.Context(), req.Title)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	subtasks := suggestion.Subtasks
	if subtasks == nil {
		subtasks = []string{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SuggestionResponse{
		Description: suggestion.Description,
		Subtasks:    subtasks,
	})
}
