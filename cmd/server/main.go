// Package main implements the entry point for the task manager API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/gestor-tareas-api/internal/config"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/logger"
	"github.com/phrazzld/gestor-tareas-api/internal/platform/postgres"
)

type options struct {
	migrateCmd string
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	var opts options
	fs.StringVar(&opts.migrateCmd, "migrate", "",
		"Run a migration command (up, down, reset, status, version) and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.migrateCmd {
	case "", postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateReset,
		postgres.MigrateStatus, postgres.MigrateVersion:
		return opts, nil
	default:
		return options{}, fmt.Errorf("unknown migrate command %q", opts.migrateCmd)
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(context.Background(), opts); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", maskDatabaseURL(cfg.Database.URL),
		"suggestions_enabled", cfg.LLM.GeminiAPIKey != "")

	db, err := setupDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	if opts.migrateCmd != "" {
		return postgres.Migrate(ctx, db, opts.migrateCmd, log)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db, postgres.MigrateUp, log); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
