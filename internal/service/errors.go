package service

import "errors"

// Errors backends wrap so commands can classify failures without importing
// a backend package.
var (
	// ErrUnauthorized means the server rejected the session token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the task does not exist on the server.
	ErrNotFound = errors.New("not found")

	// ErrRejected means the server refused the request itself (a 4xx
	// answer), as opposed to a transport or server failure.
	ErrRejected = errors.New("rejected")
)
