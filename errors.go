package cssns

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("cssns: validation failed")

// ValidationError reports malformed options or an element the tree
// rewriter cannot work with. It is never recovered internally.
type ValidationError struct {
	// Option names the offending option ("namespace", "include", ...),
	// "element" for tree input, or is empty when the whole value is rejected.
	Option  string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("cssns: %s, got: %#v", e.Message, e.Value)
	}
	return fmt.Sprintf("cssns: %q %s, got: %#v", e.Option, e.Message, e.Value)
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(option string, value any, message string) *ValidationError {
	return &ValidationError{Option: option, Value: value, Message: message}
}
