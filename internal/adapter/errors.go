package adapter

import "errors"

// Sentinel errors mapped from server responses. Callers match against them
// with [errors.Is]; the wrapped error carries the server's message body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrConflict            = errors.New("conflict")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerUnavailable covers both transport-level failures (server not
	// reachable) and HTTP 503 responses.
	ErrServerUnavailable = errors.New("server unavailable")
)
