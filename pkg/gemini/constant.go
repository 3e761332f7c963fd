package gemini

import "time"

const (
	// BaseURL is the Gemini generateContent endpoint root.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.0-flash"

	// DefaultGenerateTimeout bounds a single generation call.
	DefaultGenerateTimeout = 10 * time.Second

	// DefaultMaxOutputTokens bounds the reply length.
	DefaultMaxOutputTokens = 300

	// DefaultTemperature is the default sampling temperature.
	DefaultTemperature = 0.7
)
