package database

import (
	"database/sql"
	"fmt"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // register goqu postgres dialect
	_ "github.com/lib/pq"
)

const DialectPostgres = "postgres"

func NewPostgresConnection(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("could not connect to postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping the database: %w", err)
	}

	return db, nil
}
