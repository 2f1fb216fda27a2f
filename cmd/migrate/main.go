package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/graphicoglobal/atelier/migrations/catalog"
	"github.com/graphicoglobal/atelier/pkg/config"
	"github.com/graphicoglobal/atelier/pkg/database"
	"github.com/graphicoglobal/atelier/pkg/logger"
	"github.com/graphicoglobal/atelier/pkg/migrator"
)

// migrate applies the catalog schema to the configured SQL backend and exits.
// The API also migrates on startup; this is for deploys that run schema
// changes as a separate step.
func main() {
	dialect := flag.String("dialect", "", "sqlite or postgres (defaults to STORAGE_BACKEND)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	ctx := context.Background()

	target := *dialect
	if target == "" {
		target = cfg.StorageBackend
	}

	var db *database.Database
	switch target {
	case config.StorageSQLite:
		db, err = database.NewSQLite(ctx, cfg.SQLitePath, log)
	case config.StoragePostgres:
		db, err = database.NewPool(ctx, cfg.DatabaseURL, log)
	default:
		log.Error("no SQL schema for backend", "backend", target)
		os.Exit(2)
	}
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close() //nolint:errcheck

	if err := migrator.RunMigrations(ctx, db, catalog.FS(db.Dialect())); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("migrations applied", "dialect", db.Dialect())
}
