package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/gestor-tareas-api/internal/api/shared"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// DBConn acquires one connection per request, stores it in the request
// context and releases it after the handler returns, even on panic.
func DBConn(pool store.Acquirer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			conn, err := pool.Acquire(r.Context())
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
					shared.MsgServiceUnavailable, err)
				return
			}
			defer func() {
				if cerr := conn.Close(); cerr != nil {
					log.Warn("failed to release database connection", slog.String("error", cerr.Error()))
				}
			}()

			next.ServeHTTP(w, r.WithContext(shared.WithDB(r.Context(), conn)))
		})
	}
}
