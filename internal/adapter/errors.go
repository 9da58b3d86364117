package adapter

import "errors"

// Sentinel transport errors. mapHTTPError wraps one of these around the
// response body so call sites can branch with errors.Is regardless of
// which external service produced the status code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoToken indicates a login response that carried no access token
	// despite a success status.
	ErrNoToken = errors.New("no access token in login response")
)
