package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/phrazzld/gestor-tareas-api/internal/config"
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
	"google.golang.org/genai"
)

// contentGenerator is the subset of genai.Models used by Suggester.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Default retry settings.
const (
	DefaultMaxRetries = 2
	DefaultRetryDelay = 500 * time.Millisecond
)

// Suggester generates task suggestions with a Gemini model.
type Suggester struct {
	models     contentGenerator
	model      string
	logger     *slog.Logger
	maxRetries int
	retryDelay time.Duration
}

// NewSuggester creates a Suggester backed by the Gemini API.
func NewSuggester(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Suggester, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrInvalidConfig, err)
	}

	return newSuggester(client.Models, cfg.ModelName, logger)
}

func newSuggester(models contentGenerator, model string, logger *slog.Logger) (*Suggester, error) {
	if models == nil {
		return nil, fmt.Errorf("%w: client cannot be nil", ErrInvalidConfig)
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Suggester{
		models:     models,
		model:      model,
		logger:     logger.With(slog.String("component", "gemini_suggester")),
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}, nil
}

// Suggest asks the model for a description and subtasks for title.
func (s *Suggester) Suggest(ctx context.Context, title string) (*domain.TaskSuggestion, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	prompt, err := renderPrompt(title)
	if err != nil {
		return nil, err
	}

	resp, err := s.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	subtasks := make([]string, 0, len(resp.Subtasks))
	for _, st := range resp.Subtasks {
		if st = strings.TrimSpace(st); st != "" {
			subtasks = append(subtasks, st)
		}
	}

	return &domain.TaskSuggestion{
		Description: strings.TrimSpace(resp.Description),
		Subtasks:    subtasks,
	}, nil
}

// callWithRetry calls the model, retrying API errors with exponential
// backoff and jitter. Blocked or unparsable answers are returned immediately.
func (s *Suggester) callWithRetry(ctx context.Context, prompt string) (*suggestionResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	}

	for attempt := 0; ; attempt++ {
		resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(prompt), genConfig)
		if err == nil {
			parsed, perr := parseResponse(resp)
			if perr != nil {
				log.WarnContext(ctx, "unusable gemini response", "error", perr)
				return nil, perr
			}
			log.DebugContext(ctx, "gemini call successful", "attempt", attempt+1)
			return parsed, nil
		}

		log.WarnContext(ctx, "gemini call failed", "attempt", attempt+1, "error", err)

		if attempt >= s.maxRetries {
			return nil, fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				ErrTransientFailure, s.maxRetries, err)
		}

		// delay = base * 2^attempt * [0.5, 1.0)
		backoff := float64(s.retryDelay) * math.Pow(2, float64(attempt))
		delay := time.Duration(backoff * (0.5 + rng.Float64()*0.5))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrTransientFailure, ctx.Err())
		}
	}
}

func parseResponse(resp *genai.GenerateContentResponse) (*suggestionResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, ErrContentBlocked
	}
	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: empty content in response", ErrInvalidResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: empty text in response", ErrInvalidResponse)
	}

	var parsed suggestionResponse
	if err := json.Unmarshal([]byte(text.String()), &parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidResponse, err)
	}
	if strings.TrimSpace(parsed.Description) == "" {
		return nil, errors.Join(ErrInvalidResponse, errors.New("missing description"))
	}

	return &parsed, nil
}
