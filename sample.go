package plasm

import (
	"github.com/doug-martin/goqu/v9"

	custom_error "github.com/codeodor/plasm/pkg/errors"
)

// Native random-ordering functions per dialect. Dialects missing here fail
// fast instead of emitting SQL the backend cannot run.
var randomOrderFuncs = map[string]string{
	"postgres": "RANDOM()",
	"sqlite3":  "RANDOM()",
	"mysql":    "RAND()",
}

// Sample restricts ds to n rows picked in random order, using the native
// random-ordering primitive of the dataset's dialect. n defaults to 1 when
// unspecified. Dialects without such a primitive (including goqu's default
// dialect) fail with an UnsupportedDialectError.
func Sample(ds *goqu.SelectDataset, n ...uint) (*goqu.SelectDataset, error) {
	dialect := ds.Dialect().Dialect()
	randomFn, ok := randomOrderFuncs[dialect]
	if !ok {
		return nil, &custom_error.UnsupportedDialectError{Dialect: dialect, Operation: "sample"}
	}
	return ds.Order(goqu.L(randomFn).Asc()).Limit(pageSize(n)), nil
}
