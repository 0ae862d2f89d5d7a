package deals

import (
	"errors"
	"fmt"
)

var (
	// ErrParse reports a malformed input, like a date or an amount that cannot be read.
	ErrParse = errors.New("parse error")
	// ErrValidation reports an input that was read but is not acceptable.
	ErrValidation = errors.New("validation error")
	// ErrNotFound reports that no deal matches a query.
	ErrNotFound = errors.New("not found")
	// ErrPersistence reports that the ledger could not be read or written.
	ErrPersistence = errors.New("persistence error")
)

// Field identifies one of the raw inputs of a deal, in prompt order.
type Field int

const (
	FieldDate Field = iota
	FieldName
	FieldAmount
	FieldFee
	FieldRate
	FieldMembers
)

// Fields lists all the fields in the order they are collected.
var Fields = []Field{FieldDate, FieldName, FieldAmount, FieldFee, FieldRate, FieldMembers}

func (f Field) String() string {
	switch f {
	case FieldDate:
		return "date"
	case FieldName:
		return "name"
	case FieldAmount:
		return "amount"
	case FieldFee:
		return "fee"
	case FieldRate:
		return "rate"
	case FieldMembers:
		return "members"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// FieldError is the error returned when a raw input is rejected.
// It unwraps to ErrParse or ErrValidation.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("invalid %s: %v", e.Field, e.Err) }

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(f Field, kind error, format string, args ...any) *FieldError {
	return &FieldError{Field: f, Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))}
}
