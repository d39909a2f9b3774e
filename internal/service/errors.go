package service

import "errors"

// Common service errors. Callers check them with errors.Is; the API layer
// maps them to HTTP status codes.
var (
	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrSuggestionsDisabled indicates no task suggester is configured.
	ErrSuggestionsDisabled = errors.New("task suggestions are not configured")
)
