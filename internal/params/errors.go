package params

import (
	"errors"
	"fmt"
)

var (
	ErrMissingValue     = errors.New("a value must be provided")
	ErrNotANumber       = errors.New("not a valid number")
	ErrBelowLower       = errors.New("lower than the lower bound")
	ErrAboveUpper       = errors.New("higher than the upper bound")
	ErrInvalidOrder     = errors.New("not a valid order")
	ErrInvalidSort      = errors.New("not a valid sort method")
	ErrInvalidTimestamp = errors.New("could not be converted into a date or a timestamp")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, fmt.Sprint(e.Value), e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, value any, cause error, detail string) *ValidationError {
	reason := cause.Error()
	if detail != "" {
		reason = fmt.Sprintf("%s %s", reason, detail)
	}
	return &ValidationError{Field: field, Value: value, Reason: reason, Err: cause}
}
