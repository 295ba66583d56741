package adapter

import "errors"

// Sentinel errors for non-2xx responses. The wrapped message is the "error"
// field of the server's envelope.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrUnexpectedResponse is returned for a 2xx body with "ok": false.
	ErrUnexpectedResponse = errors.New("unexpected response")
)
