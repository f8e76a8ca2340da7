package custom_error

import "fmt"

type CustomError interface {
	Error() string
}

// UnknownFieldError is reported when a referenced field does not exist on the
// relation. Field validation is delegated to the database, so this error is
// usually produced by WrapDBError from a PostgreSQL 42703 (undefined column).
type UnknownFieldError struct {
	Field   string
	message string
}

func (e *UnknownFieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("unknown field %q: %s", e.Field, e.message)
	}
	return e.message
}

func NewUnknownFieldError(field, message string) *UnknownFieldError {
	return &UnknownFieldError{Field: field, message: message}
}

// NoPrimaryKeyError is reported when a relation declares zero or more than one
// primary-key column. Key lookups support single-column keys only.
type NoPrimaryKeyError struct {
	Relation string
	KeyCount int
}

func (e *NoPrimaryKeyError) Error() string {
	if e.KeyCount == 0 {
		return fmt.Sprintf("relation %q declares no primary key", e.Relation)
	}
	return fmt.Sprintf("relation %q declares a composite primary key (%d columns), single-column keys only", e.Relation, e.KeyCount)
}

// TimestampParseError is reported when a textual value cannot be parsed as a
// timestamp.
type TimestampParseError struct {
	Value string
	Cause error
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a timestamp: %v", e.Value, e.Cause)
}

func (e *TimestampParseError) Unwrap() error {
	return e.Cause
}

// UnsupportedDialectError is reported when an operation needs a native SQL
// primitive the current dialect does not offer.
type UnsupportedDialectError struct {
	Dialect   string
	Operation string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("operation %q is not supported for dialect %q", e.Operation, e.Dialect)
}

type UniqueViolationError struct {
	message string
	code    string // PostgreSQL error code (e.g., "23505")
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

type ForeignKeyViolationError struct {
	message string
	code    string // PostgreSQL error code (e.g., "23503")
}

func (f *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", f.message, f.code)
}

func WrapDBError(message, code string) CustomError {
	switch code {
	case "23505":
		return &UniqueViolationError{
			message: message,
			code:    code,
		}
	case "23503":
		return &ForeignKeyViolationError{
			message: "Value is already used by other resources " + message,
			code:    code,
		}
	case "42703":
		return &UnknownFieldError{
			message: message,
		}
	default:
		return fmt.Errorf("uncategorized error occurred with code %s: %s", code, message)
	}
}
