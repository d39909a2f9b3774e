package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrInvalidConfig is returned when the suggester cannot be configured.
	ErrInvalidConfig = errors.New("invalid gemini configuration")

	// ErrEmptyTitle is returned when a suggestion is requested for an empty title.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrInvalidResponse is returned when the model answer cannot be used.
	ErrInvalidResponse = errors.New("invalid response from gemini")

	// ErrContentBlocked is returned when safety filters blocked the answer.
	ErrContentBlocked = errors.New("content blocked by gemini safety filters")

	// ErrTransientFailure is returned after retries are exhausted.
	ErrTransientFailure = errors.New("transient gemini failure")
)
