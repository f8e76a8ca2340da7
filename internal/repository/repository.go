package repository

import (
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

// Repository bundles the raw connection with its goqu wrapper so feature
// repositories can compose datasets and execute them against one database.
type Repository struct {
	DB      *sql.DB
	Goqu    *goqu.Database
	dialect string
}

func NewRepository(db *sql.DB, dialect string) *Repository {
	return &Repository{
		DB:      db,
		Goqu:    goqu.New(dialect, db),
		dialect: dialect,
	}
}

func (r *Repository) Dialect() string {
	return r.dialect
}

func (r *Repository) WithTransaction(fn func(tx *goqu.TxDatabase) error) (err error) {
	rawTx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	tx := goqu.NewTx(r.dialect, rawTx)
	defer func() {
		if p := recover(); p != nil {
			rawTx.Rollback()
			panic(p)
		} else if err != nil {
			rawTx.Rollback()
		} else {
			err = rawTx.Commit()
		}
	}()

	err = fn(tx)
	return
}
