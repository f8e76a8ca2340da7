package database

import (
	"database/sql"
	"fmt"

	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // register goqu sqlite dialect
	_ "modernc.org/sqlite"
)

const DialectSQLite = "sqlite3"

// NewSQLiteConnection opens an SQLite database; an empty DSN means in-memory.
// Used by the demo mode so the service runs without a PostgreSQL instance.
func NewSQLiteConnection(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}
	if dsn == ":memory:" {
		// Every connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping the database: %w", err)
	}

	return db, nil
}
