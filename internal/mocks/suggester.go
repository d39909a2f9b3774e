package mocks

import (
	"context"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
)

// MockSuggester implements service.TaskSuggester for testing
type MockSuggester struct {
	SuggestFn func(ctx context.Context, title string) (*domain.TaskSuggestion, error)

	// Suggestion and Err are returned when SuggestFn is nil.
	Suggestion *domain.TaskSuggestion
	Err        error

	// Titles records every title passed to Suggest.
	Titles []string
}

// Suggest implements service.TaskSuggester
func (m *MockSuggester) Suggest(ctx context.Context, title string) (*domain.TaskSuggestion, error) {
	m.Titles = append(m.Titles, title)
	if m.SuggestFn != nil {
		return m.SuggestFn(ctx, title)
	}
	return m.Suggestion, m.Err
}
