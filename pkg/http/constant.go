package http

import "time"

const (
	// DefaultTimeout bounds a request when the caller sets none.
	DefaultTimeout = 30 * time.Second
	// DefaultRetryWait is the pause between retry attempts.
	DefaultRetryWait = 1 * time.Second
)
