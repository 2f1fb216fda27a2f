package migrator

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/graphicoglobal/atelier/pkg/database"
)

// RunMigrations applies all pending goose migrations found at the root of
// files against db, using the goose dialect that matches the connection.
func RunMigrations(ctx context.Context, db *database.Database, files fs.FS) error {
	dialect := goose.DialectPostgres
	if db.Dialect() == database.SQLite {
		dialect = goose.DialectSQLite3
	}

	provider, err := goose.NewProvider(dialect, db.DB(), files)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}
