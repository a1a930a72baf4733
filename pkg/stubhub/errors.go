package stubhub

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned by every operation other than Login when
	// the client holds no access token. No request is sent.
	ErrNotAuthenticated = errors.New("stubhub: not authenticated")

	// ErrInvalidCredentials is returned by Login when neither a
	// username/password pair nor a refresh token was supplied.
	ErrInvalidCredentials = errors.New("stubhub: username/password or refresh token required")

	// ErrMissingUserID is returned by seller-scoped queries when the session
	// carries no user GUID.
	ErrMissingUserID = errors.New("stubhub: session has no user id")

	// ErrTransport wraps network-level failures (DNS, TLS, timeouts, refused
	// connections) so callers can tell them apart from API rejections.
	ErrTransport = errors.New("stubhub: transport failure")
)

// APIError is returned whenever the marketplace answers with a status other
// than 200. Body holds the raw response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("stubhub API error (status %d): %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
