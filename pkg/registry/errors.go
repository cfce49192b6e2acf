package registry

import (
	"errors"
	"fmt"
)

// NotFoundError reports a lookup for a name that never registered.
type NotFoundError struct {
	Kind string // "story" or "enum"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: %s %q not found", e.Kind, e.Name)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// DecodeError scopes a payload decoding failure to a single render call.
type DecodeError struct {
	Story string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("registry: render %q: %v", e.Story, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
