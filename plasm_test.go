package plasm

import (
	"database/sql"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/require"

	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite database seeded with a small pets
// relation. Timestamps are written through goqu so stored values use the same
// format the dialect interpolates into comparisons.
func newTestDB(t *testing.T) *goqu.Database {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A second connection would see its own empty in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE pets (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		species TEXT NOT NULL,
		age INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`)
	require.NoError(t, err)

	gdb := goqu.New("sqlite3", db)
	seed := []goqu.Record{
		{"id": 1, "name": "Fluffy", "species": "cat", "age": 3, "created_at": testTime(2024, time.January, 10, 9, 0)},
		{"id": 2, "name": "Rex", "species": "dog", "age": 5, "created_at": testTime(2024, time.February, 15, 12, 30)},
		{"id": 3, "name": "Whiskers", "species": "cat", "age": 7, "created_at": testTime(2024, time.March, 1, 8, 15)},
		{"id": 4, "name": "Bubbles", "species": "fish", "age": 1, "created_at": testTime(2024, time.March, 20, 17, 45)},
		{"id": 5, "name": "Fluffy", "species": "rabbit", "age": 10, "created_at": testTime(2024, time.April, 5, 11, 0)},
	}
	_, err = gdb.Insert("pets").Rows(seed).Executor().Exec()
	require.NoError(t, err)

	return gdb
}

func testTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// petIDs executes ds projected onto the id column and returns the matched ids
// in ascending order.
func petIDs(t *testing.T, ds *goqu.SelectDataset) []int {
	t.Helper()

	var ids []int
	err := ds.Select("id").Order(goqu.C("id").Asc()).Executor().ScanVals(&ids)
	require.NoError(t, err)
	return ids
}

func toSQL(t *testing.T, ds *goqu.SelectDataset) string {
	t.Helper()

	sqlStr, _, err := ds.ToSQL()
	require.NoError(t, err)
	return sqlStr
}
