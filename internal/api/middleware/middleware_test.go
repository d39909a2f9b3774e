package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/gestor-tareas-api/internal/api/middleware"
	"github.com/phrazzld/gestor-tareas-api/internal/api/shared"
	"github.com/phrazzld/gestor-tareas-api/internal/domain"
	"github.com/phrazzld/gestor-tareas-api/internal/mocks"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
	"github.com/phrazzld/gestor-tareas-api/internal/service/auth"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	user  *domain.User
	err   error
	calls int
	token string
	db    store.DBTX
}

func (s *stubResolver) Resolve(ctx context.Context, db store.DBTX, token string) (*domain.User, error) {
	s.calls++
	s.token = token
	s.db = db
	return s.user, s.err
}

func okHandler(t *testing.T, seen **domain.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := shared.UserFromContext(r.Context())
		require.True(t, ok)
		*seen = user
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: 1, Email: "a@example.com"}
	conn := &mocks.MockConn{}

	tests := []struct {
		name         string
		header       string
		resolver     *stubResolver
		wantStatus   int
		wantDetail   string
		wantResolves int
	}{
		{
			name:         "valid token",
			header:       "Bearer good",
			resolver:     &stubResolver{user: user},
			wantStatus:   http.StatusOK,
			wantResolves: 1,
		},
		{
			name:         "lowercase scheme",
			header:       "bearer good",
			resolver:     &stubResolver{user: user},
			wantStatus:   http.StatusOK,
			wantResolves: 1,
		},
		{
			name:       "missing header",
			resolver:   &stubResolver{user: user},
			wantStatus: http.StatusUnauthorized,
			wantDetail: shared.MsgNotAuthenticated,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			resolver:   &stubResolver{user: user},
			wantStatus: http.StatusUnauthorized,
			wantDetail: shared.MsgNotAuthenticated,
		},
		{
			name:       "empty token",
			header:     "Bearer ",
			resolver:   &stubResolver{user: user},
			wantStatus: http.StatusUnauthorized,
			wantDetail: shared.MsgNotAuthenticated,
		},
		{
			name:         "resolver rejects",
			header:       "Bearer bad",
			resolver:     &stubResolver{err: auth.ErrUnauthorized},
			wantStatus:   http.StatusUnauthorized,
			wantDetail:   shared.MsgUnauthorized,
			wantResolves: 1,
		},
		{
			name:         "lookup failure",
			header:       "Bearer good",
			resolver:     &stubResolver{err: errors.New("failed to look up token subject: connection refused")},
			wantStatus:   http.StatusInternalServerError,
			wantDetail:   shared.MsgUnexpected,
			wantResolves: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen *domain.User
			h := middleware.NewAuthMiddleware(tt.resolver).Authenticate(okHandler(t, &seen))

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			req = req.WithContext(shared.WithDB(req.Context(), conn))
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantResolves, tt.resolver.calls)
			if tt.wantStatus == http.StatusOK {
				assert.Same(t, user, seen)
				assert.Same(t, conn, tt.resolver.db)
				return
			}

			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, w.Header().Get("WWW-Authenticate"))
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body["detail"])
		})
	}
}

func TestAuthenticateAndRelease(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: 3, Email: "c@example.com"}

	t.Run("connection is released before the handler runs", func(t *testing.T) {
		t.Parallel()

		pool := &mocks.MockAcquirer{}
		resolver := &stubResolver{user: user}
		var seen *domain.User
		var openDuringHandler int
		var hasDB bool
		h := middleware.NewAuthMiddleware(resolver).AuthenticateAndRelease(pool)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = shared.UserFromContext(r.Context())
				_, hasDB = shared.DBFromContext(r.Context())
				openDuringHandler = pool.OpenConns()
				w.WriteHeader(http.StatusOK)
			}))

		req := httptest.NewRequest(http.MethodPost, "/tasks/suggest", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Same(t, user, seen)
		assert.False(t, hasDB)
		assert.Zero(t, openDuringHandler)
		require.Len(t, pool.Conns(), 1)
		assert.Same(t, pool.Conns()[0], resolver.db)
	})

	t.Run("rejected token never reaches the handler", func(t *testing.T) {
		t.Parallel()

		pool := &mocks.MockAcquirer{}
		called := false
		h := middleware.NewAuthMiddleware(&stubResolver{err: auth.ErrUnauthorized}).AuthenticateAndRelease(pool)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

		req := httptest.NewRequest(http.MethodPost, "/tasks/suggest", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Zero(t, pool.OpenConns())
	})
}

func TestDBConn_ReleasesConnection(t *testing.T) {
	t.Parallel()

	pool := &mocks.MockAcquirer{}
	var seen store.DBTX
	h := middleware.DBConn(pool)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		db, ok := shared.DBFromContext(r.Context())
		require.True(t, ok)
		seen = db
		assert.Equal(t, 1, pool.OpenConns())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, pool.Conns(), 1)
	assert.Same(t, pool.Conns()[0], seen)
	assert.Zero(t, pool.OpenConns())
}

func TestDBConn_ReleasesOnPanic(t *testing.T) {
	t.Parallel()

	pool := &mocks.MockAcquirer{}
	h := middleware.DBConn(pool)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	assert.Panics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Zero(t, pool.OpenConns())
}

func TestDBConn_AcquireFailure(t *testing.T) {
	t.Parallel()

	pool := &mocks.MockAcquirer{Err: errors.New("too many connections")}
	called := false
	h := middleware.DBConn(pool)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var traceID string
	var hasLogger bool
	h := middleware.TraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		hasLogger = logger.FromContextOrDefault(r.Context(), nil) != nil
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, traceID)
	assert.True(t, hasLogger)
}
