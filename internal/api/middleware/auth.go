package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/gestor-tareas-api/internal/api/shared"
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/service/auth"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// UserResolver resolves a bearer token to a user.
type UserResolver interface {
	Resolve(ctx context.Context, db store.DBTX, token string) (*domain.User, error)
}

// AuthMiddleware authenticates requests with a bearer token.
type AuthMiddleware struct {
	resolver UserResolver
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(resolver UserResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Authenticate resolves the bearer token on the request-scoped connection and
// adds the user to the request context. Authentication failures are a 401
// carrying a WWW-Authenticate: Bearer challenge; lookup failures are a 500.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			unauthorized(w, r, shared.MsgNotAuthenticated, auth.ErrMissingToken)
			return
		}

		db, ok := shared.DBFromContext(r.Context())
		if !ok {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				shared.MsgUnexpected, errors.New("no database connection in request context"))
			return
		}

		user, err := m.resolver.Resolve(r.Context(), db, token)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				unauthorized(w, r, shared.MsgUnauthorized, err)
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.MsgUnexpected, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), user)))
	})
}

// AuthenticateAndRelease authenticates on a connection acquired from pool and
// releases it before calling next. The downstream handler gets the user but
// no database connection.
func (m *AuthMiddleware) AuthenticateAndRelease(pool store.Acquirer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var user *domain.User
			capture := http.HandlerFunc(func(_ http.ResponseWriter, ar *http.Request) {
				user, _ = shared.UserFromContext(ar.Context())
			})

			// writes the error response itself when authentication fails
			DBConn(pool)(m.Authenticate(capture)).ServeHTTP(w, r)
			if user == nil {
				return
			}

			next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), user)))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, message, err,
		shared.WithHeader("WWW-Authenticate", "Bearer"),
		shared.WithElevatedLogLevel())
}
