package emotion

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Classify(ctx context.Context, input ClassifyInput) (Signal, error)
	DetectCrisis(text string) (bool, []string)
}
