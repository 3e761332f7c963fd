package coping

import "errors"

// Domain errors
var (
	// ErrToolNotFound - no catalog entry with the given id
	ErrToolNotFound = errors.New("coping: tool not found")

	// ErrEmotionRequired - recommendation requires a target emotion
	ErrEmotionRequired = errors.New("coping: emotion is required")
)
