package plasm

import (
	"sort"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// Value is one entry of a filter specification: either a single scalar or a
// collection of candidate values. The two shapes compare differently (equality
// vs. set membership), so the distinction is carried as an explicit tag
// instead of being sniffed from the value at build time.
type Value struct {
	collection bool
	scalar     interface{}
	values     []interface{}
}

// Scalar wraps a single value; it compares with equality.
func Scalar(v interface{}) Value {
	return Value{scalar: v}
}

// Set wraps a collection of candidate values; it compares with membership.
// An empty Set matches no row at all on the MatchAll path.
func Set(vs ...interface{}) Value {
	return Value{collection: true, values: vs}
}

func (v Value) IsCollection() bool {
	return v.collection
}

// Filters maps column names to filter values. Entries are applied in sorted
// key order so the same specification always builds the same predicate chain.
type Filters map[string]Value

func (f Filters) sortedColumns() []string {
	columns := make([]string, 0, len(f))
	for column := range f {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

func (f Filters) allScalar() bool {
	for _, v := range f {
		if v.IsCollection() {
			return false
		}
	}
	return true
}

// contradiction matches no row; used for membership tests over an empty set.
func contradiction() exp.LiteralExpression {
	return goqu.L("(1 = 0)")
}

// MatchAll restricts ds to rows matching every entry of filters: equality for
// scalar entries, membership for collection entries, all conjoined with any
// restriction already present on ds. An empty specification is the identity.
//
// When every entry is scalar the restriction is delegated to goqu's native
// multi-field match (goqu.Ex); the result set is the same either way.
func MatchAll(ds *goqu.SelectDataset, filters Filters) *goqu.SelectDataset {
	if len(filters) == 0 {
		return ds
	}
	if filters.allScalar() {
		return ds.Where(matchAllEx(filters))
	}
	return ds.Where(matchAllConditions(filters)...)
}

func matchAllEx(filters Filters) goqu.Ex {
	conditions := goqu.Ex{}
	for column, v := range filters {
		conditions[column] = v.scalar
	}
	return conditions
}

func matchAllConditions(filters Filters) []exp.Expression {
	conditions := make([]exp.Expression, 0, len(filters))
	for _, column := range filters.sortedColumns() {
		v := filters[column]
		switch {
		case !v.IsCollection():
			conditions = append(conditions, goqu.C(column).Eq(v.scalar))
		case len(v.values) == 0:
			conditions = append(conditions, contradiction())
		default:
			conditions = append(conditions, goqu.C(column).In(v.values...))
		}
	}
	return conditions
}

// MatchNone restricts ds to rows matching none of the entries of filters:
// inequality for scalar entries, non-membership for collection entries. Every
// entry narrows the result set on its own — see the package documentation for
// the exact exclusion semantics. A collection entry with no values excludes
// nothing, and an empty specification is the identity.
func MatchNone(ds *goqu.SelectDataset, filters Filters) *goqu.SelectDataset {
	if len(filters) == 0 {
		return ds
	}
	conditions := make([]exp.Expression, 0, len(filters))
	for _, column := range filters.sortedColumns() {
		v := filters[column]
		switch {
		case !v.IsCollection():
			conditions = append(conditions, goqu.C(column).Neq(v.scalar))
		case len(v.values) == 0:
			// NOT IN over an empty set excludes nothing.
		default:
			conditions = append(conditions, goqu.C(column).NotIn(v.values...))
		}
	}
	if len(conditions) == 0 {
		return ds
	}
	return ds.Where(conditions...)
}
