package repository

import "errors"

var (
	// ErrCacheMiss - No cached signal for the key
	ErrCacheMiss = errors.New("emotion repository: cache miss")
)
