package finance

import "fmt"

// Code is the machine-readable reason an input was rejected.
type Code string

const (
	InvalidNumber     Code = "InvalidNumber"
	NegativeValue     Code = "NegativeValue"
	InvalidPeriod     Code = "InvalidPeriod"
	InvalidFrequency  Code = "InvalidFrequency"
	DegenerateWeights Code = "DegenerateWeights"
)

// ValidationError reports a rejected input field. Field holds the JSON name
// of the offending field and may be empty for whole-request rejections.
type ValidationError struct {
	Code    Code
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

func reject(code Code, field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrResultOverflow is reported when valid inputs produce an amount that
// does not fit in a float64.
var ErrResultOverflow = &ValidationError{
	Code:    InvalidNumber,
	Message: "result is too large to represent; reduce the rate, term or amounts",
}
