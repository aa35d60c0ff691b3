package buddypress

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
)

// ErrUnauthorized is returned when the server rejects the bearer
// token. By the time a caller sees it the local session has already
// been cleared; the only recovery is a fresh login.
var ErrUnauthorized = errors.New("buddypress: invalid or expired token")

// ErrNoID is returned by single-record operations called without a
// usable id. No request is issued.
var ErrNoID = errors.New("buddypress: no id")

// APIError is a non-2xx response from the server, carrying whatever
// the WordPress error payload contained. Message is suitable for
// showing to the user when present (e.g. "You are already a member of
// this group").
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("buddypress: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("buddypress: server returned status %d", e.StatusCode)
}

// ServerMessage returns the user-displayable message from err if it
// carries one.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// apiError decodes a WordPress error body. A body that is not the
// usual {code, message} object still yields a usable error.
func apiError(status int, body []byte) error {
	e := &APIError{StatusCode: status}
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		e.Code = payload.Code
		e.Message = payload.Message
	}
	return e
}
