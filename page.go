package plasm

import (
	"github.com/doug-martin/goqu/v9"
)

// Ascending orders ds by a field in ascending order and limits the result.
// The limit defaults to 1 when unspecified.
func Ascending(ds *goqu.SelectDataset, field interface{}, limit ...uint) (*goqu.SelectDataset, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	return ds.Order(goqu.C(column).Asc()).Limit(pageSize(limit)), nil
}

// Descending orders ds by a field in descending order and limits the result.
// The limit defaults to 1 when unspecified.
func Descending(ds *goqu.SelectDataset, field interface{}, limit ...uint) (*goqu.SelectDataset, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	return ds.Order(goqu.C(column).Desc()).Limit(pageSize(limit)), nil
}

func pageSize(limit []uint) uint {
	if len(limit) == 0 {
		return 1
	}
	return limit[0]
}
