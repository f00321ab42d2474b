package session

import (
	"errors"

	"github.com/wolfread/wolfread-go/internal/api"
)

var (
	ErrSessionExpired   = errors.New("session expired")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Messages shown to the user in Session.Err. The server's own message wins
// when the response carried one.
const (
	msgBadRequest   = "Bad request"
	msgAccessDenied = "Access denied"
	msgNotFound     = "Not found"
	msgServerError  = "Server error"
	msgNetworkError = "Network error — check your connection"
	msgFallback     = "Something went wrong"
)

// normalizeError flattens the api error taxonomy into a short user-facing
// string. Nothing structured leaks past the controller.
func normalizeError(err error) string {
	var rejErr *api.RejectedError
	if errors.As(err, &rejErr) && rejErr.Message != "" {
		return rejErr.Message
	}

	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Message != "" {
			return httpErr.Message
		}
		switch {
		case httpErr.StatusCode == 400:
			return msgBadRequest
		case httpErr.StatusCode == 403:
			return msgAccessDenied
		case httpErr.StatusCode == 404:
			return msgNotFound
		case httpErr.StatusCode >= 500:
			return msgServerError
		default:
			return msgFallback
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return msgNetworkError
	}

	return msgFallback
}
