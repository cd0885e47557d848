package api

import (
	"errors"
	"fmt"
)

// Error is a non-2xx response from the backend, carrying the HTTP status
// and the raw response body text.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Body)
}

// IsAPIError reports whether err is a backend response error and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
