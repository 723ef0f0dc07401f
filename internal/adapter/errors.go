package adapter

import "errors"

// Errors mapped from backend HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrInvalidCredentials is returned when the backend rejects an email
	// and password pair.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrNoSession is returned by operations that need a signed-in user.
	ErrNoSession = errors.New("no active session")

	// ErrSessionExpired is returned when the backend rejects the refresh
	// token. The local session is dropped.
	ErrSessionExpired = errors.New("session expired")

	// ErrMultipleRows is returned by maybeSingle reads that match more than
	// one row.
	ErrMultipleRows = errors.New("multiple rows returned for a single-row read")

	// ErrEmptyBackendURL is returned when the adapter is built without a URL.
	ErrEmptyBackendURL = errors.New("backend url is empty")
)
