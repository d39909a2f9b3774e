package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
	"github.com/phrazzld/gestor-tareas-api/internal/redact"
)

// TaskSuggester generates a description and subtasks for a task title.
type TaskSuggester interface {
	Suggest(ctx context.Context, title string) (*domain.TaskSuggestion, error)
}

// SuggestionService wraps an optional TaskSuggester.
type SuggestionService struct {
	suggester TaskSuggester
	logger    *slog.Logger
}

// NewSuggestionService creates a SuggestionService. A nil suggester disables
// suggestions and makes Suggest return ErrSuggestionsDisabled.
func NewSuggestionService(suggester TaskSuggester, logger *slog.Logger) *SuggestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SuggestionService{
		suggester: suggester,
		logger:    logger.With("component", "suggestion_service"),
	}
}

// Enabled reports whether a suggester is configured.
func (s *SuggestionService) Enabled() bool {
	return s.suggester != nil
}

// Suggest asks the suggester about title. Generation failures are logged and
// replaced by domain.FallbackSuggestion.
func (s *SuggestionService) Suggest(ctx context.Context, title string) (*domain.TaskSuggestion, error) {
	if s.suggester == nil {
		return nil, ErrSuggestionsDisabled
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewValidationError("title", "no puede estar vacío", domain.ErrValidation)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	suggestion, err := s.suggester.Suggest(ctx, title)
	if err != nil || suggestion == nil {
		if err != nil {
			log.Warn("task suggestion failed, serving fallback", redact.ErrorAttr(err))
		}
		return domain.FallbackSuggestion(), nil
	}

	if suggestion.Subtasks == nil {
		suggestion.Subtasks = []string{}
	}
	return suggestion, nil
}
