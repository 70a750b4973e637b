package requestid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a generator is configured with a
	// length below one character.
	ErrInvalidLength = errors.New("request ID length must be greater than 0")

	// ErrInvalidHeader reports a header name or identifier that cannot be
	// written to an HTTP response.
	ErrInvalidHeader = errors.New("invalid request ID header")
)

// HeaderError carries the offending header field. It unwraps to
// ErrInvalidHeader.
type HeaderError struct {
	Name  string
	Value string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: %q: %q", ErrInvalidHeader, e.Name, e.Value)
}

func (e *HeaderError) Unwrap() error {
	return ErrInvalidHeader
}
