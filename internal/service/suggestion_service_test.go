package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/mocks"
	"github.com/phrazzld/gestor-tareas-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionService_Disabled(t *testing.T) {
	t.Parallel()

	svc := service.NewSuggestionService(nil, nil)
	assert.False(t, svc.Enabled())

	_, err := svc.Suggest(context.Background(), "Plan trip")
	assert.ErrorIs(t, err, service.ErrSuggestionsDisabled)
}

func TestSuggestionService_Suggest(t *testing.T) {
	t.Parallel()

	suggester := &mocks.MockSuggester{
		Suggestion: &domain.TaskSuggestion{
			Description: "Organizar el viaje",
			Subtasks:    []string{"Reservar vuelo", "Reservar hotel", "Hacer maleta"},
		},
	}
	svc := service.NewSuggestionService(suggester, nil)
	require.True(t, svc.Enabled())

	got, err := svc.Suggest(context.Background(), "  Plan trip ")
	require.NoError(t, err)
	assert.Equal(t, "Organizar el viaje", got.Description)
	assert.Len(t, got.Subtasks, 3)
	assert.Equal(t, []string{"Plan trip"}, suggester.Titles)
}

func TestSuggestionService_FallbackOnFailure(t *testing.T) {
	t.Parallel()

	svc := service.NewSuggestionService(&mocks.MockSuggester{Err: errors.New("quota exceeded")}, nil)

	got, err := svc.Suggest(context.Background(), "Plan trip")
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionFallbackDescription, got.Description)
	assert.NotNil(t, got.Subtasks)
	assert.Empty(t, got.Subtasks)
}

func TestSuggestionService_EmptyTitle(t *testing.T) {
	t.Parallel()

	suggester := &mocks.MockSuggester{}
	svc := service.NewSuggestionService(suggester, nil)

	_, err := svc.Suggest(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, suggester.Titles)
}
