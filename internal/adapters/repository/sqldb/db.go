// Package sqldb implements the quote repository on a relational database.
//
// Quotes live in two tables: quote holds one row per quote and
// quote_subject one row per subject, numbered by position so the subject
// order survives a round trip. Three read strategies are offered; they
// share the write path and differ only in how a quote is reassembled.
package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver
	_ "modernc.org/sqlite"             // registers the sqlite driver
)

//go:embed migrations
var migrations embed.FS

var (
	ErrConnectionFailed = errors.New("connection failed")
	ErrMigrationFailed  = errors.New("migration failed")
)

// Config holds the values used to open the quote database.
type Config struct {
	Driver       string
	DSN          string
	Migrate      bool
	MaxOpenConns int
}

// DB is an open quote database together with its dialect.
type DB struct {
	sql     *sql.DB
	dialect dialect
}

// Open connects to the database, verifies the connection and, when
// cfg.Migrate is set, brings the schema up to date.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.name, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err) //nolint:errorlint // keep driver error out of the chain
	}

	switch {
	case d.name == DriverSQLite:
		// one writer at a time; also keeps a shared in-process database alive
		db.SetMaxOpenConns(1)
	case cfg.MaxOpenConns > 0:
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: could not ping db: %v", ErrConnectionFailed, err) //nolint:errorlint // see above
	}

	h := &DB{sql: db, dialect: d}

	if cfg.Migrate {
		if err := h.migrateUp(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return h, nil
}

func (h *DB) migrateUp() error {
	src, err := iofs.New(migrations, h.dialect.migrationsDir)
	if err != nil {
		return fmt.Errorf("%w: could not read migrations: %v", ErrMigrationFailed, err) //nolint:errorlint // see above
	}

	driver, err := h.dialect.migrationDriver(h.sql)
	if err != nil {
		return fmt.Errorf("%w: could not get database driver: %v", ErrMigrationFailed, err) //nolint:errorlint // see above
	}

	m, err := migrate.NewWithInstance("iofs", src, h.dialect.name, driver)
	if err != nil {
		return fmt.Errorf("%w: could not create migration instance: %v", ErrMigrationFailed, err) //nolint:errorlint // see above
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: could not migrate up: %v", ErrMigrationFailed, err) //nolint:errorlint // see above
	}

	return nil
}

// Name implements ports.HealthChecker.
func (h *DB) Name() string {
	return "quote-store"
}

// Check implements ports.HealthChecker.
func (h *DB) Check(ctx context.Context) error {
	return h.sql.PingContext(ctx)
}

// Close releases all connections.
func (h *DB) Close() error {
	return h.sql.Close()
}

// Truncate removes every quote. Used to reset state between tests.
func (h *DB) Truncate(ctx context.Context) error {
	for _, table := range []string{"quote_subject", "quote"} {
		if _, err := h.sql.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("truncating %s: %w", table, err)
		}
	}

	return nil
}

func (h *DB) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(h.dialect.placeholder)
}
