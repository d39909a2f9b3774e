// Package service contains the application use cases: account registration
// and login, owner-scoped task management, and task suggestions.
//
// Services receive their dependencies through constructor injection and never
// depend on infrastructure implementations. Operations that touch the database
// take the request-scoped handle (store.DBTX) and, when they act for a user,
// the resolved *domain.User as explicit parameters. Every mutation is a single
// store call, so no transaction management happens here.
//
// Expected conditions are reported as sentinel errors (ErrInvalidCredentials,
// ErrSuggestionsDisabled, and the store and domain sentinels passed through);
// the API layer maps them to HTTP status codes.
package service
