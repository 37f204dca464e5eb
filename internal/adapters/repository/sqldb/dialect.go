package sqldb

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
)

// Supported driver names, as registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// dialect holds the SQL that differs between engines.
type dialect struct {
	name          string
	migrationsDir string
	placeholder   squirrel.PlaceholderFormat
	readOnlyTx    bool

	// subjectsArray aggregates a quote's subjects, in position order, into a
	// JSON array. It expects the quote table aliased as q.
	subjectsArray string

	// quoteObject builds one JSON object per quote with the wire field names.
	quoteObject string

	migrationDriver func(db *sql.DB) (database.Driver, error)
}

var sqliteDialect = dialect{
	name:          DriverSQLite,
	migrationsDir: "migrations/sqlite",
	placeholder:   squirrel.Question,
	subjectsArray: `(SELECT json_group_array(s.subject ORDER BY s.position)
		FROM quote_subject s WHERE s.quote_id = q.id)`,
	quoteObject: `json_object('id', q.id, 'text', q.text, 'attributedTo', q.attributed_to,
		'subjects', json((SELECT json_group_array(s.subject ORDER BY s.position)
			FROM quote_subject s WHERE s.quote_id = q.id)))`,
	migrationDriver: func(db *sql.DB) (database.Driver, error) {
		return migratesqlite.WithInstance(db, &migratesqlite.Config{})
	},
}

var postgresDialect = dialect{
	name:          DriverPostgres,
	migrationsDir: "migrations/postgres",
	placeholder:   squirrel.Dollar,
	readOnlyTx:    true,
	subjectsArray: `(SELECT coalesce(json_agg(s.subject ORDER BY s.position), '[]'::json)::text
		FROM quote_subject s WHERE s.quote_id = q.id)`,
	quoteObject: `json_build_object('id', q.id, 'text', q.text, 'attributedTo', q.attributed_to,
		'subjects', (SELECT coalesce(json_agg(s.subject ORDER BY s.position), '[]'::json)
			FROM quote_subject s WHERE s.quote_id = q.id))::text`,
	migrationDriver: func(db *sql.DB) (database.Driver, error) {
		return migratepgx.WithInstance(db, &migratepgx.Config{})
	},
}

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case DriverSQLite:
		return sqliteDialect, nil
	case DriverPostgres:
		return postgresDialect, nil
	default:
		return dialect{}, fmt.Errorf("%w: unsupported driver %q", ErrConnectionFailed, driver)
	}
}
