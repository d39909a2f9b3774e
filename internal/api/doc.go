// Package api implements the HTTP/JSON surface of the task service: handlers
// for registration, login, task CRUD and task suggestions, the mapping from
// internal errors to status codes, and the chi router that wires them
// together with middleware.
//
// Handlers are thin. They decode and validate the request, take the
// request-scoped database handle and the authenticated user from the context,
// call a service, and encode the result. Error responses use the
// {"detail": ..., "trace_id": ...} shape from package shared.
package api
