// Package catalog embeds the goose migrations for the catalog blob table,
// one directory per SQL dialect.
package catalog

import (
	"embed"
	"io/fs"

	"github.com/graphicoglobal/atelier/pkg/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

// FS returns the migration set for dialect, rooted so goose sees the .sql
// files at the top level.
func FS(dialect database.Dialect) fs.FS {
	dir := "postgres"
	if dialect == database.SQLite {
		dir = "sqlite"
	}
	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
