package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/billbreak/internal/common"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrMalformedResponse = common.ErrMalformedResponse
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	// Message is the server's "error" field, empty when the body carried none.
	Message string
	// Retried is set on 401 so the request is never handled as
	// unauthenticated twice. Nothing re-sends it.
	Retried bool
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, msg)
}

// Is maps status codes onto the package sentinels for errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrUnavailable:
		return e.StatusCode == http.StatusBadGateway ||
			e.StatusCode == http.StatusServiceUnavailable ||
			e.StatusCode == http.StatusGatewayTimeout
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// ServerMessage returns the backend's error text carried by err, or "" when
// err is not an APIError.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
