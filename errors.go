package chatwire

import (
	"errors"
	"fmt"
)

// Errors raised by the SDK before any network activity. Transport and
// backend errors pass through the returned call unchanged.
var (
	// ErrMissingField classifies pre-send validation failures. Match
	// with errors.Is; the concrete *MissingFieldError names the field.
	ErrMissingField = errors.New("missing required field")

	// ErrNotImplemented is returned by operations the backend does not
	// support. They fail loudly rather than silently doing nothing.
	ErrNotImplemented = errors.New("not implemented")
)

// MissingFieldError reports the first required field found absent
// during pre-send validation. The call carrying it was never sent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Is reports ErrMissingField as the error's class.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
