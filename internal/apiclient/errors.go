package apiclient

import "errors"

var (
	// ErrUnauthorized wraps every 401 response.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound wraps every 404 response.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest wraps every 400 response; the wrapped message carries
	// the server's explanation.
	ErrBadRequest = errors.New("bad request")
)
