package plasm

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	custom_error "github.com/codeodor/plasm/pkg/errors"
)

// Layouts tried in order when parsing textual timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp normalizes a timestamp value: time.Time values pass through
// untouched, text is parsed against RFC 3339 and the common date layouts.
// Anything else fails with a TimestampParseError.
func ParseTimestamp(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		var firstErr error
		for _, layout := range timestampLayouts {
			parsed, err := time.Parse(layout, t)
			if err == nil {
				return parsed, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		return time.Time{}, &custom_error.TimestampParseError{Value: t, Cause: firstErr}
	}
	return time.Time{}, &custom_error.TimestampParseError{
		Value: fmt.Sprint(v),
		Cause: fmt.Errorf("unsupported timestamp type %T", v),
	}
}

func timeCondition(field, ts interface{}, compare func(exp.IdentifierExpression, time.Time) exp.Expression) (exp.Expression, error) {
	column, err := ColumnName(field)
	if err != nil {
		return nil, err
	}
	parsed, err := ParseTimestamp(ts)
	if err != nil {
		return nil, err
	}
	return compare(goqu.C(column), parsed), nil
}

// Before restricts ds to rows whose field is strictly before ts.
func Before(ds *goqu.SelectDataset, field, ts interface{}) (*goqu.SelectDataset, error) {
	condition, err := timeCondition(field, ts, func(c exp.IdentifierExpression, t time.Time) exp.Expression {
		return c.Lt(t)
	})
	if err != nil {
		return nil, err
	}
	return ds.Where(condition), nil
}

// AtOrBefore restricts ds to rows whose field is at or before ts.
func AtOrBefore(ds *goqu.SelectDataset, field, ts interface{}) (*goqu.SelectDataset, error) {
	condition, err := timeCondition(field, ts, func(c exp.IdentifierExpression, t time.Time) exp.Expression {
		return c.Lte(t)
	})
	if err != nil {
		return nil, err
	}
	return ds.Where(condition), nil
}

// After restricts ds to rows whose field is strictly after ts.
func After(ds *goqu.SelectDataset, field, ts interface{}) (*goqu.SelectDataset, error) {
	condition, err := timeCondition(field, ts, func(c exp.IdentifierExpression, t time.Time) exp.Expression {
		return c.Gt(t)
	})
	if err != nil {
		return nil, err
	}
	return ds.Where(condition), nil
}

// AtOrAfter restricts ds to rows whose field is at or after ts.
func AtOrAfter(ds *goqu.SelectDataset, field, ts interface{}) (*goqu.SelectDataset, error) {
	condition, err := timeCondition(field, ts, func(c exp.IdentifierExpression, t time.Time) exp.Expression {
		return c.Gte(t)
	})
	if err != nil {
		return nil, err
	}
	return ds.Where(condition), nil
}

// Between restricts ds to rows whose field lies between from and to, both ends
// inclusive.
func Between(ds *goqu.SelectDataset, field, from, to interface{}) (*goqu.SelectDataset, error) {
	ds, err := AtOrAfter(ds, field, from)
	if err != nil {
		return nil, err
	}
	return AtOrBefore(ds, field, to)
}
