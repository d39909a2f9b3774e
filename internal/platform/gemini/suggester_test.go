package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	responses []*genai.GenerateContentResponse
	errs      []error
	calls     int
	prompts   []string
	configs   []*genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	i := f.calls
	f.calls++
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompts = append(f.prompts, contents[0].Parts[0].Text)
	}
	f.configs = append(f.configs, config)

	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp *genai.GenerateContentResponse
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestSuggester(t *testing.T, models *fakeModels) *Suggester {
	t.Helper()
	s, err := newSuggester(models, "test-model", nil)
	require.NoError(t, err)
	s.retryDelay = time.Millisecond
	return s
}

func TestSuggest_Success(t *testing.T) {
	t.Parallel()

	models := &fakeModels{responses: []*genai.GenerateContentResponse{
		textResponse(`{"description":" Preparar la mudanza ","subtasks":["Empacar","", "Contratar camión","Limpiar"]}`),
	}}
	s := newTestSuggester(t, models)

	got, err := s.Suggest(context.Background(), "Mudanza")
	require.NoError(t, err)
	assert.Equal(t, "Preparar la mudanza", got.Description)
	assert.Equal(t, []string{"Empacar", "Contratar camión", "Limpiar"}, got.Subtasks)

	require.Len(t, models.prompts, 1)
	assert.True(t, strings.Contains(models.prompts[0], `"Mudanza"`))
	require.Len(t, models.configs, 1)
	assert.Equal(t, "application/json", models.configs[0].ResponseMIMEType)
	assert.Equal(t, []string{"description", "subtasks"}, models.configs[0].ResponseSchema.Required)
}

func TestSuggest_RetriesTransientErrors(t *testing.T) {
	t.Parallel()

	models := &fakeModels{
		errs:      []error{errors.New("503"), nil},
		responses: []*genai.GenerateContentResponse{nil, textResponse(`{"description":"ok","subtasks":[]}`)},
	}
	s := newTestSuggester(t, models)

	got, err := s.Suggest(context.Background(), "Algo")
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Description)
	assert.Equal(t, 2, models.calls)
}

func TestSuggest_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	boom := errors.New("unavailable")
	models := &fakeModels{errs: []error{boom, boom, boom, boom}}
	s := newTestSuggester(t, models)

	_, err := s.Suggest(context.Background(), "Algo")
	assert.ErrorIs(t, err, ErrTransientFailure)
	assert.Equal(t, DefaultMaxRetries+1, models.calls)
}

func TestSuggest_PermanentErrors(t *testing.T) {
	t.Parallel()

	blocked := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		FinishReason: genai.FinishReasonSafety,
	}}}

	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		wantErr error
	}{
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: ErrInvalidResponse},
		{name: "blocked", resp: blocked, wantErr: ErrContentBlocked},
		{name: "not json", resp: textResponse("sure! here it is"), wantErr: ErrInvalidResponse},
		{name: "missing description", resp: textResponse(`{"subtasks":["a"]}`), wantErr: ErrInvalidResponse},
		{name: "empty text", resp: textResponse(""), wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			models := &fakeModels{responses: []*genai.GenerateContentResponse{tt.resp}}
			_, err := newTestSuggester(t, models).Suggest(context.Background(), "Algo")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, models.calls)
		})
	}
}

func TestSuggest_EmptyTitle(t *testing.T) {
	t.Parallel()

	models := &fakeModels{}
	_, err := newTestSuggester(t, models).Suggest(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Zero(t, models.calls)
}

func TestNewSuggester_Validation(t *testing.T) {
	t.Parallel()

	_, err := newSuggester(nil, "m", nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = newSuggester(&fakeModels{}, "", nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
