package mazefile

import (
	"errors"
	"fmt"
)

// SpecificationViolationError reports a mazefile that does not follow the mazefile format.
type SpecificationViolationError struct {
	Msg string
}

func (e *SpecificationViolationError) Error() string {
	return "mazefile: specification violation: " + e.Msg
}

// violationf creates a SpecificationViolationError with a formatted message.
func violationf(format string, args ...any) error {
	return &SpecificationViolationError{Msg: fmt.Sprintf(format, args...)}
}

// IsSpecificationViolation returns true if err is, or wraps, a SpecificationViolationError.
func IsSpecificationViolation(err error) bool {
	var sv *SpecificationViolationError
	return errors.As(err, &sv)
}
