package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated means no access token is stored; nothing was sent.
	ErrUnauthenticated = errors.New("not authenticated")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrRequestFailed   = errors.New("request failed")
	ErrUnavailable     = errors.New("server unavailable")
)

// RequestFailedError is returned for any non-2xx response.
type RequestFailedError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s %s: request failed with status %d", e.Method, e.Path, e.StatusCode)
}

func (e *RequestFailedError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}
