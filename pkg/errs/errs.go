package errs

import "errors"

// Err represents an error caused by the caller's input.
// Such errors are detected before any request leaves the client.
type Err struct { //nolint:errname
	Message string `json:"message"`
}

var _ error = (*Err)(nil)

// New creates a new caller error with the given message.
func New(message string) *Err {
	return &Err{Message: message}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error, or any error it wraps, is of Err type.
func IsExpected(err error) bool {
	var target *Err
	return errors.As(err, &target)
}
