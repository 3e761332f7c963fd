package response

import "errors"

// Domain errors
var (
	// ErrUnknownBackend - Compose called with an unrecognized backend identifier
	ErrUnknownBackend = errors.New("response: unknown backend")
)
