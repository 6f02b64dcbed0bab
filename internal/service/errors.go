package service

import (
	"errors"
	"fmt"
)

// ValidationError marks a precondition failure detected before any write.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a precondition failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
