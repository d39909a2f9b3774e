package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	apiMiddleware "github.com/phrazzld/gestor-tareas-api/internal/api/middleware"
	"github.com/phrazzld/gestor-tareas-api/internal/api/shared"
	"github.com/phrazzld/gestor-tareas-api/internal/service"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// RouterDeps are the dependencies of NewRouter.
type RouterDeps struct {
	Logger         *slog.Logger
	Pool           store.Acquirer
	Resolver       apiMiddleware.UserResolver
	Accounts       service.AccountService
	Tasks          service.TaskService
	Suggestions    Suggester
	AllowedOrigins []string
}

// NewRouter creates the application router with all routes and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(log))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := NewAuthHandler(deps.Accounts)
	taskHandler := NewTaskHandler(deps.Tasks)
	suggestHandler := NewSuggestHandler(deps.Suggestions)
	authMiddleware := apiMiddleware.NewAuthMiddleware(deps.Resolver)

	r.Group(func(r chi.Router) {
		r.Use(apiMiddleware.DBConn(deps.Pool))

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/tasks", taskHandler.List)
			r.Post("/tasks", taskHandler.Create)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
		})
	})

	// Suggestions wait on the model, so they must not hold a pooled connection.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.AuthenticateAndRelease(deps.Pool))

		r.Post("/tasks/suggest", suggestHandler.Suggest)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, shared.MsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, shared.MsgMethodNotAllowed)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

// Ensure SuggestionService can back the suggest endpoint
var _ Suggester = (*service.SuggestionService)(nil)
