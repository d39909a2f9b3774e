package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/gestor-tareas-api/internal/api"
	"github.com/phrazzld/gestor-tareas-api/internal/config"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/gemini"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/postgres"
	"github.com/phrazzld/gestor-tareas-api/internal/service"
	"github.com/phrazzld/gestor-tareas-api/internal/service/auth"
	"github.com/phrazzld/gestor-tareas-api/internal/store"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	tokens      auth.TokenService
	resolver    *auth.Resolver
	accounts    service.AccountService
	tasks       service.TaskService
	suggestions *service.SuggestionService
}

// newApplication wires stores, services and the optional suggestion
// generator around an established database pool.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		"algorithm", cfg.Auth.Algorithm,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Stores are bound to a request connection through WithDB.
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	app.resolver = auth.NewResolver(app.tokens, app.userStore)

	app.accounts, err = service.NewAccountService(
		app.userStore,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		app.tokens,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	app.tasks, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	var suggester service.TaskSuggester
	if cfg.LLM.GeminiAPIKey != "" {
		generator, err := gemini.NewSuggester(ctx, cfg.LLM, logger.With("component", "llm_suggester"))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize suggestion generator: %w", err)
		}
		suggester = generator
		logger.Info("Suggestion generator initialized", "model", cfg.LLM.ModelName)
	} else {
		logger.Warn("No Gemini API key configured, task suggestions are disabled")
	}
	app.suggestions = service.NewSuggestionService(suggester, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// router builds the HTTP handler for the application.
func (app *application) router() http.Handler {
	return api.NewRouter(api.RouterDeps{
		Logger:         app.logger,
		Pool:           postgres.NewPool(app.db),
		Resolver:       app.resolver,
		Accounts:       app.accounts,
		Tasks:          app.tasks,
		Suggestions:    app.suggestions,
		AllowedOrigins: app.config.Server.AllowedOrigins,
	})
}

// Run serves HTTP until the context is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.router()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
