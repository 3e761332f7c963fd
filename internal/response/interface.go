package response

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Compose(ctx context.Context, input ComposeInput) (ComposeOutput, error)
}
