// Package database opens the SQL connection used by the catalog blob store and
// the SQL event transport. Two dialects are supported: PostgreSQL through the
// pgx stdlib driver and SQLite through the pure-Go modernc driver.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "modernc.org/sqlite"             // registers "sqlite"

	"github.com/graphicoglobal/atelier/pkg/logger"
)

// Dialect identifies the SQL flavour behind a Database.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == SQLite {
		return "sqlite"
	}
	return "pgx"
}

// DBTX is the subset of database/sql used by repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Database wraps *sql.DB together with its dialect.
type Database struct {
	db      *sql.DB
	dialect Dialect
}

// NewPool opens a PostgreSQL connection pool and verifies connectivity.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	db, err := open(ctx, Postgres, url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	log.Info("database opened", "dialect", Postgres)
	return &Database{db: db, dialect: Postgres}, nil
}

// NewSQLite opens (creating if needed) the SQLite file at path.
// Pass ":memory:" for a throwaway in-process database.
func NewSQLite(ctx context.Context, path string, log logger.Logger) (*Database, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := open(ctx, SQLite, dsn)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; one connection also keeps :memory: databases alive.
	db.SetMaxOpenConns(1)
	log.Info("database opened", "dialect", SQLite, "path", path)
	return &Database{db: db, dialect: SQLite}, nil
}

func open(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}
	return db, nil
}

// DB returns the underlying *sql.DB.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Dialect returns the SQL dialect of the connection.
func (d *Database) Dialect() Dialect {
	return d.dialect
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}
