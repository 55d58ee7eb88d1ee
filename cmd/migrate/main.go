package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/talenttrack-backend-go/internal/config"
	"github.com/cmlabs-hris/talenttrack-backend-go/internal/pkg/database"
)

const usage = `usage: migrate [-dsn URL] [-steps N] <up|down|status>

  up      apply all pending migrations
  down    roll back the last N migrations (default 1)
  status  print the current schema version

Without -dsn the connection is built from DB_* variables (.env is honoured).
`

func main() {
	dsn := flag.String("dsn", "", "PostgreSQL connection URL")
	steps := flag.Int("steps", 1, "number of migrations to roll back")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Arg(0), *dsn, *steps); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command, dsn string, steps int) error {
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dsn = cfg.DatabaseURL()
	}

	switch command {
	case "up":
		if err := database.RunMigrations(ctx, dsn); err != nil {
			return err
		}
		slog.Info("migrations applied")
	case "down":
		if steps < 1 {
			return fmt.Errorf("steps must be at least 1, got %d", steps)
		}
		if err := database.RollbackMigrations(ctx, dsn, steps); err != nil {
			return err
		}
		slog.Info("migrations rolled back", "steps", steps)
	case "status":
		version, err := database.MigrationVersion(ctx, dsn)
		if err != nil {
			return err
		}
		fmt.Printf("schema version: %d\n", version)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
	return nil
}
