package http

import (
	"errors"

	"companion-srv/internal/coping"
	pkgErrors "companion-srv/pkg/errors"
)

var (
	errToolNotFound    = pkgErrors.NewHTTPError(404, "Coping tool not found")
	errEmotionRequired = pkgErrors.NewHTTPError(400, "Emotion is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, coping.ErrToolNotFound):
		return errToolNotFound
	case errors.Is(err, coping.ErrEmotionRequired):
		return errEmotionRequired
	default:
		panic(err)
	}
}
