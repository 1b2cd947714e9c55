package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork is returned when the finance backend cannot be reached or
	// responds with a non-2xx status.
	ErrNetwork = errors.New("finance backend request failed")

	// ErrInvalidPayload is returned when a response does not match the expected schema.
	ErrInvalidPayload = errors.New("invalid payload from finance backend")
)

// StatusError is returned for responses with a non-2xx status code.
// It wraps ErrNetwork.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Detail string // detail message sent by the backend, if any
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s %s returned %d: %s", ErrNetwork, e.Method, e.Path, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s: %s %s returned %d", ErrNetwork, e.Method, e.Path, e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrNetwork
}

// IsNotFound reports whether err is a StatusError for a 404 response.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}
