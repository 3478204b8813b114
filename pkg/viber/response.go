package viber

import (
	"encoding/json"

	"resty.dev/v3"
)

// Response represents a Bot API response.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// RawBody is the response body as received.
	RawBody []byte
	// Body is the decoded JSON body. It is only set when the client parses response bodies.
	Body map[string]any

	raw *resty.Response
}

// Raw returns the underlying transport response.
func (r *Response) Raw() *resty.Response {
	return r.raw
}

// Status returns the API status code from the decoded body.
// Zero means success; the value is never interpreted by the client.
func (r *Response) Status() (int, bool) {
	if r == nil || r.Body == nil {
		return 0, false
	}

	switch status := r.Body["status"].(type) {
	case float64:
		return int(status), true
	case json.Number:
		n, err := status.Int64()
		if err != nil {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}

// StatusMessage returns the API status message from the decoded body.
func (r *Response) StatusMessage() string {
	if r == nil || r.Body == nil {
		return ""
	}

	message, _ := r.Body["status_message"].(string)
	return message
}
