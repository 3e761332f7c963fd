package mood

import "errors"

var (
	ErrInvalidMood      = errors.New("mood: unknown mood category")
	ErrInvalidIntensity = errors.New("mood: intensity out of range")
	ErrNoteTooLong      = errors.New("mood: note too long")
	ErrInvalidWindow    = errors.New("mood: window out of range")
)
