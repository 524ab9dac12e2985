package risk

import (
	"errors"
	"fmt"
)

// ValidationError reports an input that cannot produce a position size.
// It is the only error Calculate returns.
type ValidationError struct {
	Field string
	Value float64
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field string, value float64, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Value: value, Msg: fmt.Sprintf(format, args...)}
}
