package gemini

import "errors"

var (
	// ErrTimeout - generation call exceeded its deadline
	ErrTimeout = errors.New("gemini: generation timed out")

	// ErrUnavailable - client has no API key configured
	ErrUnavailable = errors.New("gemini: client not available")

	// ErrNoContent - API returned no candidates
	ErrNoContent = errors.New("gemini: no content generated")
)
