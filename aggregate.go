package plasm

import (
	"github.com/doug-martin/goqu/v9"
)

// CountRows replaces the projection of ds with a row count.
func CountRows(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.Select(goqu.COUNT(goqu.Star()))
}

// CountDistinct replaces the projection of ds with a count of the distinct
// values of one field.
func CountDistinct(ds *goqu.SelectDataset, field interface{}) (*goqu.SelectDataset, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	return ds.Select(goqu.COUNT(goqu.DISTINCT(column))), nil
}

// Sum replaces the projection of ds with the sum of one field.
func Sum(ds *goqu.SelectDataset, field interface{}) (*goqu.SelectDataset, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	return ds.Select(goqu.SUM(column)), nil
}

// Min replaces the projection of ds with the minimum of one field.
func Min(ds *goqu.SelectDataset, field interface{}) (*goqu.SelectDataset, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	return ds.Select(goqu.MIN(column)), nil
}

// Max replaces the projection of ds with the maximum of one field.
func Max(ds *goqu.SelectDataset, field interface{}) (*goqu.SelectDataset, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	return ds.Select(goqu.MAX(column)), nil
}

// Avg replaces the projection of ds with the average of one field.
func Avg(ds *goqu.SelectDataset, field interface{}) (*goqu.SelectDataset, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	return ds.Select(goqu.AVG(column)), nil
}

// DistinctBy projects ds onto the distinct values of one field.
func DistinctBy(ds *goqu.SelectDataset, field interface{}) (*goqu.SelectDataset, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	return ds.Select(column).Distinct(), nil
}
