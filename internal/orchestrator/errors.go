package orchestrator

import "errors"

// Domain errors
var (
	// ErrBackendUnavailable - backend cannot serve requests (circuit open or not implemented)
	ErrBackendUnavailable = errors.New("orchestrator: backend unavailable")

	// ErrExternalClassify - external generator returned an unusable classification
	ErrExternalClassify = errors.New("orchestrator: external classification failed")
)
