package api

import "fmt"

// HTTPError is returned for any response outside the 2xx range. Body keeps
// the raw response text; Message is the server's "message" field when the
// body was well-formed JSON.
type HTTPError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// IsValidation reports whether the failure indicates bad input (any 4xx).
func (e *HTTPError) IsValidation() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// NetworkError is a transport-level failure: no response was received at all
// (DNS, connection refused, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RejectedError reports a response that came back 2xx but whose payload
// carries a non-success status. Some backend endpoints signal domain errors
// this way instead of via the HTTP status line.
type RejectedError struct {
	Status  string
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("server rejected request (%s): %s", e.Status, e.Message)
}
