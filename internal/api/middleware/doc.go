// Package middleware holds the HTTP middleware of the task API: trace IDs,
// request-scoped database connections and bearer-token authentication.
package middleware
