package safety

import "companion-srv/internal/emotion"

// UseCase evaluates message safety. Always runs on the trusted local
// rule path, even when the signal came from an external backend.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Evaluate(text string, sig emotion.Signal) Assessment
}
