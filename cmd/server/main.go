// Package main implements the entry point for the flashcards API server,
// which serves card sets and generates multiple-choice questions from them.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/phrazzld/flashcards-api/internal/config"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
	"github.com/phrazzld/flashcards-api/internal/platform/postgres"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run parses args, loads configuration and either applies a migration
// command or serves HTTP until the process is signalled.
func run(args []string) error {
	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	config.RegisterFlags(flags)
	migrateCmd := flags.String("migrate", "", "run a migration command (up, down, status, version, reset, redo) and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadWithFlags(flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("option_count", cfg.Learning.OptionCount),
		slog.Bool("rate_limit_enabled", cfg.RateLimit.Enabled))

	ctx := context.Background()

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	if *migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return postgres.Migrate(ctx, db, *migrateCmd, log, flags.Args()...)
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
