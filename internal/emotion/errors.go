package emotion

import "errors"

// Domain errors
var (
	// ErrClassificationFailed - classification pipeline failed unexpectedly
	ErrClassificationFailed = errors.New("emotion: classification failed")
)
