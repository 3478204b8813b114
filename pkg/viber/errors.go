package viber

import (
	"fmt"

	"github.com/VladPetriv/viber_bot/pkg/errs"
)

// Caller errors are returned before any request is sent.
var (
	ErrReceiverRequired   = errs.New("receiver is required")
	ErrRecipientsRequired = errs.New("at least one broadcast recipient is required")
	ErrUserIDRequired     = errs.New("user id is required")
	ErrUserIDsRequired    = errs.New("at least one user id is required")
)

// TransportError represents a failure to deliver a request or read its response.
type TransportError struct {
	Endpoint Endpoint
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("send %s request: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError represents a non-2xx HTTP response.
type StatusError struct {
	Endpoint   Endpoint
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("could not %s(statusCode: %d, body:%s)", e.Endpoint, e.StatusCode, e.Body)
}

// DecodeError represents a response body that is not valid JSON.
type DecodeError struct {
	Endpoint Endpoint
	Body     string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
