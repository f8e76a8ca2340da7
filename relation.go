package plasm

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	custom_error "github.com/codeodor/plasm/pkg/errors"
)

// ColumnName normalizes a field reference to its canonical column name.
// References may be textual (a plain string) or symbolic (a goqu identifier
// such as goqu.C("age")); both resolve to the same name, so downstream code
// only ever deals with one representation.
func ColumnName(ref interface{}) (string, error) {
	switch r := ref.(type) {
	case string:
		if r == "" {
			return "", fmt.Errorf("empty field reference")
		}
		return r, nil
	case exp.IdentifierExpression:
		if column, ok := r.GetCol().(string); ok && column != "" {
			return column, nil
		}
		return "", fmt.Errorf("identifier %v does not reference a single column", r)
	default:
		return "", fmt.Errorf("unsupported field reference type %T", ref)
	}
}

// Relation describes the target relation of a query: its name and the declared
// primary-key column(s). It is read-only after construction and safe to share.
type Relation struct {
	name string
	keys []string
}

// NewRelation builds a relation descriptor. Primary-key references may be
// textual or symbolic; references that do not resolve to a column are dropped,
// which later surfaces as a NoPrimaryKeyError from key lookups.
func NewRelation(name string, primaryKey ...interface{}) Relation {
	keys := make([]string, 0, len(primaryKey))
	for _, ref := range primaryKey {
		column, err := ColumnName(ref)
		if err != nil {
			continue
		}
		keys = append(keys, column)
	}
	return Relation{name: name, keys: keys}
}

func (r Relation) Name() string {
	return r.name
}

// Dataset returns a fresh dataset over the relation, carrying no restriction.
func (r Relation) Dataset() *goqu.SelectDataset {
	return goqu.From(r.name)
}

// PrimaryKey returns the single primary-key column of the relation. Relations
// with zero or composite keys fail with a NoPrimaryKeyError.
func (r Relation) PrimaryKey() (string, error) {
	if len(r.keys) != 1 {
		return "", &custom_error.NoPrimaryKeyError{Relation: r.name, KeyCount: len(r.keys)}
	}
	return r.keys[0], nil
}

// FindByKey restricts ds to the row whose primary key equals key.
func (r Relation) FindByKey(ds *goqu.SelectDataset, key interface{}) (*goqu.SelectDataset, error) {
	pk, err := r.PrimaryKey()
	if err != nil {
		return nil, err
	}
	return MatchAll(ds, Filters{pk: Scalar(key)}), nil
}

// FindByKeys restricts ds to the rows whose primary key is one of keys. An
// empty key list selects no rows.
func (r Relation) FindByKeys(ds *goqu.SelectDataset, keys ...interface{}) (*goqu.SelectDataset, error) {
	pk, err := r.PrimaryKey()
	if err != nil {
		return nil, err
	}
	return MatchAll(ds, Filters{pk: Set(keys...)}), nil
}
