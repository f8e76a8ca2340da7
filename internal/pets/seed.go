package pets

import (
	"time"

	"github.com/codeodor/plasm/pkg/models"
)

// DemoSchema mirrors the postgres migration closely enough for the in-memory
// demo mode. TIMESTAMP decltypes let the sqlite driver hand back time values.
const DemoSchema = `CREATE TABLE IF NOT EXISTS pets (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	species TEXT NOT NULL,
	age INTEGER NOT NULL DEFAULT 0,
	tag TEXT NOT NULL UNIQUE,
	adopted_at TIMESTAMP,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// DemoPets is the sample catalog loaded by the seed command and demo mode.
func DemoPets() []models.Pet {
	adopted := time.Date(2024, time.May, 2, 14, 0, 0, 0, time.UTC)
	return []models.Pet{
		{Name: "Fluffy", Species: "cat", Age: 3, Tag: "CAT-001", CreatedAt: time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)},
		{Name: "Rex", Species: "dog", Age: 5, Tag: "DOG-001", AdoptedAt: &adopted, CreatedAt: time.Date(2024, time.February, 15, 12, 30, 0, 0, time.UTC)},
		{Name: "Whiskers", Species: "cat", Age: 7, Tag: "CAT-002", CreatedAt: time.Date(2024, time.March, 1, 8, 15, 0, 0, time.UTC)},
		{Name: "Bubbles", Species: "fish", Age: 1, Tag: "FSH-001", CreatedAt: time.Date(2024, time.March, 20, 17, 45, 0, 0, time.UTC)},
		{Name: "Fluffy", Species: "rabbit", Age: 10, Tag: "RBT-001", CreatedAt: time.Date(2024, time.April, 5, 11, 0, 0, 0, time.UTC)},
		{Name: "Ziggy", Species: "parrot", Age: 2, Tag: "PRT-001", CreatedAt: time.Date(2024, time.April, 22, 16, 20, 0, 0, time.UTC)},
	}
}
